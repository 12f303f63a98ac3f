// Package entry defines prompt entries and parses them from command-line
// arguments.
package entry

import (
	"fmt"
	"strings"
)

// Entry describes one requested variable: the prompt text shown to the user,
// the variable name used for environment lookup and output, and whether
// input should be hidden while typing.
type Entry struct {
	Prompt string
	Name   string
	Secure bool
}

// Parse converts command-line arguments into an ordered list of entries.
//
// Each argument is either VARNAME or PROMPT:VARNAME. An argument of exactly
// --secure or -s marks the immediately preceding entry as secure rather than
// starting a new one. Parsing is a single left-to-right pass; a secure flag
// with no preceding entry and an empty variable name are both rejected.
func Parse(args []string) ([]Entry, error) {
	var entries []Entry
	for _, arg := range args {
		if arg == "--secure" || arg == "-s" {
			if len(entries) == 0 {
				return nil, fmt.Errorf("%s must follow a variable entry", arg)
			}
			entries[len(entries)-1].Secure = true
			continue
		}

		e := split(arg)
		if e.Name == "" {
			return nil, fmt.Errorf("entry %q has an empty variable name", arg)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// split separates prompt text from the variable name on the last colon, so
// prompt text may itself contain colons. Without a colon, or with an empty
// prompt segment, the prompt falls back to the variable name.
func split(arg string) Entry {
	idx := strings.LastIndex(arg, ":")
	if idx < 0 {
		return Entry{Prompt: arg, Name: arg}
	}
	prompt, name := arg[:idx], arg[idx+1:]
	if prompt == "" {
		prompt = name
	}
	return Entry{Prompt: prompt, Name: name}
}
