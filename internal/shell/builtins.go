package shell

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// builtinNames is the fixed builtin registry, sorted.
var builtinNames = []string{"cd", "echo", "exit", "pwd", "type"}

func isBuiltin(name string) bool {
	for _, b := range builtinNames {
		if b == name {
			return true
		}
	}
	return false
}

func openTarget(r *redirect) (*os.File, error) {
	flag := os.O_CREATE | os.O_WRONLY
	if r.append {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}
	return os.OpenFile(r.path, flag, 0644)
}

// writeTo routes data to the redirect target when one is set, else to the
// fallback stream. Open failures are reported and the write is dropped.
func (s *Shell) writeTo(r *redirect, fallback io.Writer, data string) {
	if r == nil {
		fmt.Fprint(fallback, data)
		return
	}
	f, err := openTarget(r)
	if err != nil {
		fmt.Fprintf(s.Err, "Error opening %s: %v\n", r.path, err)
		return
	}
	defer f.Close()
	fmt.Fprint(f, data)
}

func (s *Shell) writeOutLine(pl parsedLine, text string) {
	s.writeTo(pl.stdout, s.Out, text+"\n")
}

func (s *Shell) writeErrLine(pl parsedLine, text string) {
	s.writeTo(pl.stderr, s.Err, text+"\n")
}

// touchStderr opens and closes the stderr target without writing. echo never
// produces stderr output but a `2>` alongside it must still create (or
// truncate) the file.
func (s *Shell) touchStderr(pl parsedLine) {
	if pl.stderr == nil {
		return
	}
	f, err := openTarget(pl.stderr)
	if err != nil {
		fmt.Fprintf(s.Err, "Error opening %s: %v\n", pl.stderr.path, err)
		return
	}
	f.Close()
}

func (s *Shell) runEcho(argv []string, pl parsedLine) {
	s.touchStderr(pl)
	s.writeOutLine(pl, strings.Join(argv[1:], " "))
}

func (s *Shell) runType(argv []string, pl parsedLine) {
	if len(argv) < 2 {
		s.writeOutLine(pl, "type: usage: type NAME")
		return
	}
	name := argv[1]

	if isBuiltin(name) {
		s.writeOutLine(pl, name+" is a shell builtin")
		return
	}
	if path, ok := lookPath(s.dirs(), name); ok {
		s.writeOutLine(pl, name+" is "+path)
		return
	}
	s.writeOutLine(pl, name+": not found")
}

func (s *Shell) runExit(argv []string) error {
	code := 0
	if len(argv) > 1 {
		if n, err := strconv.Atoi(argv[1]); err == nil {
			code = n
		}
	}
	return &ExitError{Code: code}
}

func (s *Shell) runPwd(pl parsedLine) {
	dir, err := os.Getwd()
	if err != nil {
		s.writeErrLine(pl, fmt.Sprintf("pwd: %v", err))
		return
	}
	s.writeOutLine(pl, dir)
}

func (s *Shell) runCd(argv []string, pl parsedLine) {
	var target string
	if len(argv) < 2 {
		target = os.Getenv("HOME")
		if target == "" {
			return
		}
	} else {
		target = argv[1]
	}

	if target == "~" {
		target = os.Getenv("HOME")
	} else if strings.HasPrefix(target, "~/") {
		target = filepath.Join(os.Getenv("HOME"), target[2:])
	}

	err := os.Chdir(target)
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.writeErrLine(pl, fmt.Sprintf("cd: %s: No such file or directory", target))
	case errors.Is(err, syscall.ENOTDIR):
		s.writeErrLine(pl, fmt.Sprintf("cd: %s: Not a directory", target))
	case errors.Is(err, fs.ErrPermission):
		s.writeErrLine(pl, fmt.Sprintf("cd: %s: Permission denied", target))
	default:
		s.writeErrLine(pl, fmt.Sprintf("cd: %s: %v", target, err))
	}
}
