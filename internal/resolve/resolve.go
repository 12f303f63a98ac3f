// Package resolve determines the value of each requested variable,
// preferring the process environment over interactive prompting, and emits
// the collected assignments once all prompting is done.
package resolve

import (
	"fmt"
	"io"
	"os"

	"github.com/MPLew-is/prompt-env/internal/entry"
	"github.com/MPLew-is/prompt-env/internal/env"
	"github.com/MPLew-is/prompt-env/internal/prompt"
	"github.com/MPLew-is/prompt-env/internal/spool"
)

// Options wires the environment and streams used for a run. Nil fields fall
// back to the process defaults.
type Options struct {
	Env    env.Lookup
	Stdin  io.Reader // value input
	Stderr io.Writer // prompt text
	Stdout io.Writer // final assignments
}

// Resolver determines the value for one entry at a time.
type Resolver struct {
	env      env.Lookup
	prompter *prompt.Prompter
}

// NewResolver returns a Resolver using the given environment lookup and
// prompter.
func NewResolver(lookup env.Lookup, p *prompt.Prompter) *Resolver {
	return &Resolver{env: lookup, prompter: p}
}

// Resolve returns the value for e. A variable present in the environment,
// even as the empty string, wins without prompting; otherwise the user is
// prompted and any input, including none, is accepted as-is.
func (r *Resolver) Resolve(e entry.Entry) (string, error) {
	if v, ok := r.env.LookupEnv(e.Name); ok {
		return v, nil
	}
	if e.Secure {
		return r.prompter.Secret(e.Prompt)
	}
	return r.prompter.Line(e.Prompt)
}

// Run resolves every entry in order, spooling each assignment as soon as it
// is produced, and flushes the spool to stdout only after all prompting has
// finished. An empty entry list performs no I/O at all.
func Run(entries []entry.Entry, opts Options) error {
	if len(entries) == 0 {
		return nil
	}
	opts = withDefaults(opts)

	sp, err := spool.New()
	if err != nil {
		return fmt.Errorf("creating output spool: %w", err)
	}
	defer sp.Close()

	r := NewResolver(opts.Env, prompt.New(opts.Stdin, opts.Stderr))
	for _, e := range entries {
		value, err := r.Resolve(e)
		if err != nil {
			return fmt.Errorf("reading value for %s: %w", e.Name, err)
		}
		if err := sp.Append(e.Name, value); err != nil {
			return fmt.Errorf("spooling %s: %w", e.Name, err)
		}
	}

	if err := sp.Flush(opts.Stdout); err != nil {
		return fmt.Errorf("writing assignments: %w", err)
	}
	return nil
}

func withDefaults(o Options) Options {
	if o.Env == nil {
		o.Env = env.OS{}
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	return o
}
