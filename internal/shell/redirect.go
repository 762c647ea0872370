package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

var ErrMissingRedirectTarget = errors.New("missing redirect target")

// redirect is one resolved output redirection for a line.
type redirect struct {
	path   string
	append bool
}

// parsedLine is a raw input line with its redirections stripped out.
// command keeps the original text (quoting intact) for the tokenizer.
type parsedLine struct {
	command string
	stdout  *redirect
	stderr  *redirect
}

// redirectOp classifies a whitespace-delimited word as one of the six
// operator spellings. A word must equal the spelling exactly, so a quoted
// `'>'` stays an ordinary argument.
func redirectOp(word string) (stderrStream, appendMode, ok bool) {
	switch word {
	case ">", "1>":
		return false, false, true
	case ">>", "1>>":
		return false, true, true
	case "2>":
		return true, false, true
	case "2>>":
		return true, true, true
	}
	return false, false, false
}

type wordSpan struct {
	start, end int
	text       string
}

func splitWords(line string) []wordSpan {
	var spans []wordSpan
	start := -1
	for i, r := range line {
		if unicode.IsSpace(r) {
			if start >= 0 {
				spans = append(spans, wordSpan{start, i, line[start:i]})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, wordSpan{start, len(line), line[start:len(line)]})
	}
	return spans
}

// extractRedirects scans a line left to right for redirection operators and
// returns the command text with every operator and target removed, plus the
// stdout and stderr targets. The target is everything after an operator up
// to the next operator or end of line, trimmed. The first operator per
// stream wins; a duplicate and its target are stripped but not honored. An
// operator with nothing after it is a syntax error.
func extractRedirects(line string) (parsedLine, error) {
	pl := parsedLine{}
	spans := splitWords(line)

	var command strings.Builder
	segStart := 0

	for i := 0; i < len(spans); i++ {
		toStderr, appendMode, ok := redirectOp(spans[i].text)
		if !ok {
			continue
		}

		command.WriteString(line[segStart:spans[i].start])

		// The target runs until the next operator word.
		j := i + 1
		for j < len(spans) {
			if _, _, isOp := redirectOp(spans[j].text); isOp {
				break
			}
			j++
		}

		targetEnd := len(line)
		if j < len(spans) {
			targetEnd = spans[j].start
		}
		target := strings.TrimSpace(line[spans[i].end:targetEnd])
		if target == "" {
			return parsedLine{}, ErrMissingRedirectTarget
		}

		r := &redirect{path: target, append: appendMode}
		if toStderr {
			if pl.stderr == nil {
				pl.stderr = r
			}
		} else {
			if pl.stdout == nil {
				pl.stdout = r
			}
		}

		segStart = targetEnd
		i = j - 1
	}

	command.WriteString(line[segStart:])
	pl.command = strings.TrimSpace(command.String())
	return pl, nil
}

// ensureParentDirs creates missing parent directories for every redirect
// target so the later open cannot fail just because the directory is absent.
// Failures are reported and the line carries on.
func ensureParentDirs(pl parsedLine, errw io.Writer) {
	for _, r := range []*redirect{pl.stdout, pl.stderr} {
		if r == nil {
			continue
		}
		dir := filepath.Dir(r.path)
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(errw, "Error creating directory %s: %v\n", dir, err)
		}
	}
}
