package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MPLew-is/prompt-env/internal/entry"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `
prompts:
  - name: DB_USER
  - name: DB_PASSWORD
    prompt: "Database password"
    secure: true
  - name: ENDPOINT
    prompt: "URL (host:port)"
`)

	entries, err := Load(path)
	require.NoError(t, err)

	want := []entry.Entry{
		{Prompt: "DB_USER", Name: "DB_USER"},
		{Prompt: "Database password", Name: "DB_PASSWORD", Secure: true},
		{Prompt: "URL (host:port)", Name: "ENDPOINT"},
	}
	assert.Equal(t, want, entries)
}

func TestLoadEmptyManifest(t *testing.T) {
	path := writeManifest(t, "prompts: []\n")

	entries, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadMissingName(t *testing.T) {
	path := writeManifest(t, `
prompts:
  - prompt: "No name here"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeManifest(t, "prompts: [unclosed\n")

	_, err := Load(path)
	assert.Error(t, err)
}
