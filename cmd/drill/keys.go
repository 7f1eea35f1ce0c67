package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"pokertrainer-server/pkg/action"
)

type keyKind int

const (
	keyUnknown keyKind = iota
	keyAction
	keyNext
	keyQuit
)

type key struct {
	kind   keyKind
	action action.Action
}

const ctrlC = 3

func parseKey(r rune) key {
	switch r {
	case 'n', 'N':
		return key{kind: keyNext}
	case 'q', 'Q', ctrlC:
		return key{kind: keyQuit}
	}

	if a, ok := action.FromHotkey(r); ok {
		return key{kind: keyAction, action: a}
	}

	if a, ok := action.FromHotkey(r + ('a' - 'A')); ok && r >= 'A' && r <= 'Z' {
		return key{kind: keyAction, action: a}
	}

	return key{kind: keyUnknown}
}

// readKey reads a single key press. When stdin is not a terminal, a line is read and its first character is used.
func readKey(in *os.File, lines *bufio.Reader) (key, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		str, err := lines.ReadString('\n')
		if err != nil && (err != io.EOF || str == "") {
			return key{}, err
		}

		str = strings.TrimSpace(str)
		if str == "" {
			return key{kind: keyUnknown}, nil
		}

		return parseKey([]rune(str)[0]), nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return key{}, err
	}
	defer func() {
		_ = term.Restore(fd, state)
	}()

	b := make([]byte, 1)
	if _, err := in.Read(b); err != nil {
		return key{}, err
	}

	return parseKey(rune(b[0])), nil
}
