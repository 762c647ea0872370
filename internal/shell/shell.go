package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ExitError carries the exit builtin's code up through the loop.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

type commandKind int

const (
	kindEmpty commandKind = iota
	kindEcho
	kindExit
	kindType
	kindPwd
	kindCd
	kindExternal
)

// classify maps argv to a command kind so dispatch is an exhaustive switch.
func classify(argv []string) commandKind {
	if len(argv) == 0 {
		return kindEmpty
	}
	switch argv[0] {
	case "echo":
		return kindEcho
	case "exit":
		return kindExit
	case "type":
		return kindType
	case "pwd":
		return kindPwd
	case "cd":
		return kindCd
	default:
		return kindExternal
	}
}

type Shell struct {
	in  LineReader
	Out io.Writer
	Err io.Writer

	dirs     func() []string
	executor Executor
}

func New(in LineReader, out, errw io.Writer) *Shell {
	s := &Shell{
		in:   in,
		Out:  out,
		Err:  errw,
		dirs: searchDirs,
	}
	s.executor = &DefaultExecutor{
		LookupFunc: func(name string) (string, bool) {
			return lookPath(s.dirs(), name)
		},
	}
	return s
}

// Run is the REPL: read, evaluate, repeat until exit or end of input.
// It returns the process exit code.
func (s *Shell) Run() (int, error) {
	defer s.in.Close()

	for {
		line, err := s.in.ReadLine()
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := s.Eval(line); err != nil {
			var exitErr *ExitError
			if errors.As(err, &exitErr) {
				return exitErr.Code, nil
			}
			return 0, err
		}
	}
}

// Eval processes one input line: redirect extraction, tokenizing,
// classification, dispatch. Syntax errors discard the line.
func (s *Shell) Eval(line string) error {
	pl, err := extractRedirects(line)
	if err != nil {
		fmt.Fprintf(s.Err, "gosh: syntax error: %v\n", err)
		return nil
	}
	ensureParentDirs(pl, s.Err)

	argv, err := tokenize(pl.command)
	if err != nil {
		fmt.Fprintf(s.Err, "gosh: syntax error: %v\n", err)
		return nil
	}

	switch classify(argv) {
	case kindEmpty:
	case kindEcho:
		s.runEcho(argv, pl)
	case kindExit:
		return s.runExit(argv)
	case kindType:
		s.runType(argv, pl)
	case kindPwd:
		s.runPwd(pl)
	case kindCd:
		s.runCd(argv, pl)
	case kindExternal:
		s.runExternal(argv, pl)
	}
	return nil
}

// executionResult is the captured output of one external command.
type executionResult struct {
	stdout   []byte
	stderr   []byte
	exitCode int
}

// runExternal launches argv. A stream is captured only when it has a
// redirect target; otherwise the child inherits the shell's stream so
// output interleaves live on the terminal.
func (s *Shell) runExternal(argv []string, pl parsedLine) {
	var outBuf, errBuf bytes.Buffer

	bind := IOBindings{Stdin: os.Stdin, Stdout: s.Out, Stderr: s.Err}
	if pl.stdout != nil {
		bind.Stdout = &outBuf
	}
	if pl.stderr != nil {
		bind.Stderr = &errBuf
	}

	code, err := s.executor.Execute(context.Background(), argv[0], argv[1:], bind)
	if errors.Is(err, ErrNotFound) {
		s.writeErrLine(pl, argv[0]+": command not found")
		return
	}
	if err != nil {
		s.writeErrLine(pl, "Error executing command: "+err.Error())
		return
	}

	res := executionResult{stdout: outBuf.Bytes(), stderr: errBuf.Bytes(), exitCode: code}
	if pl.stdout != nil {
		s.writeTo(pl.stdout, s.Out, string(res.stdout))
	}
	if pl.stderr != nil {
		s.writeTo(pl.stderr, s.Err, string(res.stderr))
	}
}
