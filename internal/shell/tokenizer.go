package shell

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrUnclosedQuote      = errors.New("unclosed quote")
	ErrUnescapedCharacter = errors.New("unescaped character")
)

type tokenizeState int

const (
	stateOutside tokenizeState = iota
	stateSingleQuote
	stateDoubleQuote
)

type tokenBuffer struct {
	builder strings.Builder
}

func (tb *tokenBuffer) appendRune(r rune) {
	tb.builder.WriteRune(r)
}

func (tb *tokenBuffer) flushInto(args []string) []string {
	if tb.builder.Len() > 0 {
		args = append(args, tb.builder.String())
		tb.builder.Reset()
	}
	return args
}

// tokenize splits a command string into arguments using shell quoting rules:
// single quotes are fully literal, double quotes preserve whitespace and let
// backslash escape `\` and `"`, and a backslash outside quotes escapes the
// next rune. Whitespace outside quotes separates tokens.
func tokenize(line string) ([]string, error) {
	var tb tokenBuffer
	args := []string{}

	state := stateOutside
	escaping := false

	for _, ch := range line {
		switch state {
		case stateOutside:
			switch {
			case escaping:
				tb.appendRune(ch)
				escaping = false
			case unicode.IsSpace(ch):
				args = tb.flushInto(args)
			case ch == '\'':
				state = stateSingleQuote
			case ch == '"':
				state = stateDoubleQuote
			case ch == '\\':
				escaping = true
			default:
				tb.appendRune(ch)
			}

		case stateSingleQuote:
			if ch == '\'' {
				state = stateOutside
			} else {
				tb.appendRune(ch)
			}

		case stateDoubleQuote:
			switch {
			case escaping:
				// Only `\` and `"` are special inside double quotes;
				// anything else keeps the backslash.
				if ch != '\\' && ch != '"' {
					tb.appendRune('\\')
				}
				tb.appendRune(ch)
				escaping = false
			case ch == '"':
				state = stateOutside
			case ch == '\\':
				escaping = true
			default:
				tb.appendRune(ch)
			}
		}
	}

	if state != stateOutside {
		return nil, ErrUnclosedQuote
	}
	if escaping {
		return nil, ErrUnescapedCharacter
	}

	return tb.flushInto(args), nil
}
