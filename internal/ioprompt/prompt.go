// Package ioprompt asks the operator for values line by line. End of
// input while waiting for a value abandons the prompt.
package ioprompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gnames/gn"
	"github.com/root31/nursery/pkg/errcode"
	"github.com/root31/nursery/pkg/inventory"
)

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter. The reader is used as is, so several prompters
// can share buffered input.
func New(in *bufio.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// IsAbandoned is true for errors of abandoned input.
func IsAbandoned(err error) bool {
	return inventory.HasCode(err, errcode.InputAbandonedError)
}

// Line asks for one line of text and returns it without surrounding
// whitespace.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	s, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if s == "" {
			fmt.Fprintln(p.out)
			return "", AbandonedError(label)
		}
		err = nil
	}
	if err != nil {
		return "", ReadInputError(label, err)
	}
	return strings.TrimSpace(s), nil
}

// Ask repeats the question until check accepts the answer.
func (p *Prompter) Ask(label string, check func(string) error) (string, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return "", err
		}
		if err = check(s); err != nil {
			fmt.Fprintf(p.out, "Invalid input: %s\n", Message(err))
			continue
		}
		return s, nil
	}
}

// Default asks for text and returns def for an empty answer.
func (p *Prompter) Default(label, def string) (string, error) {
	s, err := p.Line(fmt.Sprintf("%s [%s]", label, def))
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

// Confirm asks a yes or no question.
func (p *Prompter) Confirm(label string) (bool, error) {
	var res bool
	_, err := p.Ask(label+" (yes/no)", func(s string) error {
		var err error
		res, err = parseYesNo(s)
		return err
	})
	return res, err
}

// Choose shows numbered options and returns the index of the selected
// one. An empty answer selects the first option, "q" abandons.
func (p *Prompter) Choose(label string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, AbandonedError(label)
	}
	for i, v := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, v)
	}

	idx := -1
	_, err := p.Ask(label+" [1, q to skip]", func(s string) error {
		switch strings.ToLower(s) {
		case "":
			idx = 0
			return nil
		case "q":
			idx = -1
			return nil
		}
		i, err := strconv.Atoi(s)
		if err != nil || i < 1 || i > len(options) {
			return fmt.Errorf("enter a number from 1 to %d", len(options))
		}
		idx = i - 1
		return nil
	})
	if err != nil {
		return -1, err
	}
	if idx < 0 {
		return -1, AbandonedError(label)
	}
	return idx, nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return false, errors.New("please enter 'yes' or 'no'")
}

// Message renders the user part of an error as plain text.
func Message(err error) string {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) && gnErr.Msg != "" {
		s := fmt.Sprintf(gnErr.Msg, gnErr.Vars...)
		return strings.NewReplacer("<em>", "", "</em>", "").Replace(s)
	}
	return err.Error()
}
