// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter asks for choices the user did not pass as flags.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// choose prints a numbered list and returns the option picked. A single
// option is picked without asking. Invalid input is asked again.
func (p *prompter) choose(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("%s: nothing to choose from", title)
	}
	if len(options) == 1 {
		fmt.Fprintf(p.out, "%s %s\n", title, options[0])
		return options[0], nil
	}

	fmt.Fprintf(p.out, "\n%s\n", title)
	for i, opt := range options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, opt)
	}

	for {
		fmt.Fprint(p.out, "Enter number: ")
		line, err := p.in.ReadString('\n')
		text := strings.TrimSpace(line)
		if text != "" {
			n, convErr := strconv.Atoi(text)
			if convErr == nil && n >= 1 && n <= len(options) {
				return options[n-1], nil
			}
			fmt.Fprintf(p.out, "invalid choice %q: enter 1-%d\n", text, len(options))
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%s: no selection made", title)
		}
		if err != nil {
			return "", fmt.Errorf("reading selection: %w", err)
		}
	}
}

// line asks for a single free-text value.
func (p *prompter) line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	text, err := p.in.ReadString('\n')
	text = strings.TrimSpace(text)
	if text == "" {
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading %s: %w", label, err)
		}
		return "", fmt.Errorf("%s is required", strings.ToLower(label))
	}
	return text, nil
}
