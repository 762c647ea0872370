package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// LineReader yields one input line per call. Implementations own the prompt.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// terminalReader drives an interactive terminal through readline: line
// editing, a persisted history file, and tab completion.
type terminalReader struct {
	rl *readline.Instance
}

func NewTerminalReader(prompt, historyFile string, completer *Completer) (LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       prompt,
		HistoryFile:  historyFile,
		AutoComplete: completer,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing readline: %w", err)
	}
	return &terminalReader{rl: rl}, nil
}

func (t *terminalReader) ReadLine() (string, error) {
	for {
		line, err := t.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return "", io.EOF
			}
			continue
		}
		return line, err
	}
}

func (t *terminalReader) Close() error {
	return t.rl.Close()
}

// promptReader is the non-terminal fallback: print the prompt, read a line.
// Used when stdin is a pipe or file, where readline cannot run.
type promptReader struct {
	prompt string
	out    io.Writer
	in     *bufio.Reader
}

func NewPromptReader(prompt string, out io.Writer, in io.Reader) LineReader {
	return &promptReader{prompt: prompt, out: out, in: bufio.NewReader(in)}
}

func (p *promptReader) ReadLine() (string, error) {
	fmt.Fprint(p.out, p.prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

func (p *promptReader) Close() error {
	return nil
}
