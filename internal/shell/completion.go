package shell

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Completer implements readline.AutoCompleter for command names, matching
// builtins and executables on the search path. It owns the state that spans
// consecutive tab presses: candidates and the common extension stay valid
// only for the prefix they were computed for, and any prefix change throws
// them away.
type Completer struct {
	Dirs   func() []string // overrides the search path; defaults to $PATH
	Out    io.Writer
	Prompt string

	lastPrefix     string
	candidates     []string
	commonExt      string
	awaitingSecond bool
}

// completionResult is one decision of the disambiguation state machine,
// kept free of terminal I/O so it can be tested directly.
type completionResult struct {
	insert string
	bell   bool
	list   []string
}

func (c *Completer) collect(prefix string) []string {
	seen := make(map[string]bool)
	var matches []string
	for _, name := range builtinNames {
		if strings.HasPrefix(name, prefix) {
			seen[name] = true
			matches = append(matches, name)
		}
	}
	dirs := searchDirs()
	if c.Dirs != nil {
		dirs = c.Dirs()
	}
	for _, name := range executablesIn(dirs, prefix) {
		if !seen[name] {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches
}

// longestCommonExtension extends prefix one position at a time while every
// candidate agrees on the next character, stopping at the first mismatch or
// at the end of the shortest candidate.
func longestCommonExtension(prefix string, candidates []string) string {
	if len(candidates) == 0 {
		return prefix
	}
	i := len(prefix)
	for i < len(candidates[0]) {
		ch := candidates[0][i]
		agree := true
		for _, m := range candidates[1:] {
			if i >= len(m) || m[i] != ch {
				agree = false
				break
			}
		}
		if !agree {
			break
		}
		i++
	}
	return candidates[0][:i]
}

func (c *Completer) reset(prefix string) {
	c.lastPrefix = prefix
	c.candidates = c.collect(prefix)
	c.commonExt = longestCommonExtension(prefix, c.candidates)
	c.awaitingSecond = false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// advance runs one step of the completion protocol for the typed prefix.
func (c *Completer) advance(prefix string) completionResult {
	// An exact builtin name completes to itself plus a space even when
	// executables on the path share the prefix.
	if isBuiltin(prefix) {
		c.reset(prefix)
		return completionResult{insert: " "}
	}

	// A nil candidate slice also means nothing was computed yet, which
	// matters for the zero-value prefix.
	if prefix != c.lastPrefix || c.candidates == nil {
		c.reset(prefix)
	}

	switch {
	case len(c.candidates) == 0:
		return completionResult{bell: true}

	case len(c.candidates) == 1:
		return completionResult{insert: c.candidates[0][len(prefix):] + " "}

	case len(c.commonExt) > len(prefix):
		insert := c.commonExt[len(prefix):]
		if contains(c.candidates, c.commonExt) {
			insert += " "
		}
		return completionResult{insert: insert}
	}

	// Multiple candidates with nothing left in common: bell on the first
	// press, list everything on the second, then start over.
	if !c.awaitingSecond {
		c.awaitingSecond = true
		return completionResult{bell: true}
	}
	c.awaitingSecond = false
	return completionResult{list: c.candidates}
}

// Do renders an advance step for readline: the returned runes are the text
// to insert after the cursor, the bell and the candidate list go straight
// to the terminal.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])

	// Only the command word completes.
	if strings.ContainsAny(prefix, " \t") {
		fmt.Fprint(c.Out, "\a")
		return nil, 0
	}

	res := c.advance(prefix)

	if res.bell {
		fmt.Fprint(c.Out, "\a")
		return nil, 0
	}
	if len(res.list) > 0 {
		fmt.Fprintf(c.Out, "\n%s\n%s%s", strings.Join(res.list, "  "), c.Prompt, prefix)
		return nil, 0
	}
	return [][]rune{[]rune(res.insert)}, pos
}
