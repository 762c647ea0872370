package main

import (
	"log"
	"os"

	"golang.org/x/term"

	"gosh/internal/config"
	"gosh/internal/shell"
)

func main() {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		log.Fatal(err)
	}

	var in shell.LineReader
	if term.IsTerminal(int(os.Stdin.Fd())) {
		completer := &shell.Completer{Out: os.Stdout, Prompt: cfg.Prompt}
		in, err = shell.NewTerminalReader(cfg.Prompt, cfg.HistoryFile, completer)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		in = shell.NewPromptReader(cfg.Prompt, os.Stdout, os.Stdin)
	}

	s := shell.New(in, os.Stdout, os.Stderr)

	code, err := s.Run()
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}
