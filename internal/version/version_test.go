package version

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{version: "dev", want: "vdev"},
		{version: "1.2.3", want: "v1.2.3"},
		{version: "v1.2.3", want: "v1.2.3"},
	}

	original := Version
	t.Cleanup(func() { Version = original })

	for _, tt := range tests {
		Version = tt.version
		if got := String(); got != tt.want {
			t.Errorf("String() with Version=%q = %q, want %q", tt.version, got, tt.want)
		}
	}
}
