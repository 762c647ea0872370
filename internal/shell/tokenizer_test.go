package shell

import (
	"errors"
	"testing"
)

func TestTokenize(t *testing.T) {

	tests := []struct {
		name        string
		input       string
		expected    []string
		expectedErr error
	}{
		{
			name:     "simple command",
			input:    "echo hello",
			expected: []string{"echo", "hello"},
		},
		{
			name:     "command with multiple arguments",
			input:    "ls -la /home/user",
			expected: []string{"ls", "-la", "/home/user"},
		},
		{
			name:     "single quoted string",
			input:    "echo 'hello world'",
			expected: []string{"echo", "hello world"},
		},
		{
			name:     "double quoted string",
			input:    `echo "hello world"`,
			expected: []string{"echo", "hello world"},
		},
		{
			name:     "mixed quotes",
			input:    `echo "hello" 'world'`,
			expected: []string{"echo", "hello", "world"},
		},
		{
			name:     "mixed quote kinds in one line",
			input:    `'a b' "c d" e`,
			expected: []string{"a b", "c d", "e"},
		},
		{
			name:     "escaped characters outside quotes",
			input:    `echo hello\ world`,
			expected: []string{"echo", "hello world"},
		},
		{
			name:     "escaped quote in double quotes",
			input:    `echo "hello \"world\""`,
			expected: []string{"echo", `hello "world"`},
		},
		{
			name:     "escaped backslash in double quotes",
			input:    `echo "hello\\world"`,
			expected: []string{"echo", `hello\world`},
		},
		{
			name:     "non-special escape kept in double quotes",
			input:    `echo "hello\nworld"`,
			expected: []string{"echo", `hello\nworld`},
		},
		{
			name:     "single quotes preserve everything literally",
			input:    `echo 'hello\nworld'`,
			expected: []string{"echo", `hello\nworld`},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "only whitespace",
			input:    "   \t  \n  ",
			expected: []string{},
		},
		{
			name:     "multiple spaces between arguments",
			input:    "echo    hello     world",
			expected: []string{"echo", "hello", "world"},
		},
		{
			name:        "unclosed single quote",
			input:       "echo 'hello",
			expectedErr: ErrUnclosedQuote,
		},
		{
			name:        "unclosed double quote",
			input:       `echo "hello`,
			expectedErr: ErrUnclosedQuote,
		},
		{
			name:        "trailing backslash",
			input:       `echo hello\`,
			expectedErr: ErrUnescapedCharacter,
		},
		{
			name:     "empty quotes",
			input:    `echo "" ''`,
			expected: []string{"echo"},
		},
		{
			name:     "adjacent quoted strings",
			input:    `echo "hello"'world'`,
			expected: []string{"echo", "helloworld"},
		},
		{
			name:     "command with special characters",
			input:    `grep "pattern" file.txt`,
			expected: []string{"grep", "pattern", "file.txt"},
		},
	}

	for _, tt := range tests {

		t.Run(tt.name, func(t *testing.T) {

			res, err := tokenize(tt.input)

			if tt.expectedErr != nil {
				if err == nil {
					t.Errorf("Expected error: %v got nil", tt.expectedErr)
				} else if !errors.Is(err, tt.expectedErr) {
					t.Errorf("Expected error: %v got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Errorf("Expected no error got %v", err)
				return
			}

			if !equalStringSlices(res, tt.expected) {
				t.Errorf("input:  %q\nexpected: %v\ngot:       %v", tt.input, tt.expected, res)
			}

		})

	}

}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
