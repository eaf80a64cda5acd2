// Package console provides the user-facing reporting capability injected
// into each component: status lines, warnings, and interactive prompts.
//
// Components receive a Reporter instead of writing to process-wide output so
// their messaging can be captured in tests and so browser-driver code stays
// free of terminal concerns.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Reporter is the capability surface components use to talk to the human
// driving the run.
type Reporter interface {
	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Confirm(prompt string, defaultYes bool) (bool, error)
	Ask(prompt, defaultValue string) (string, error)
	AskSecret(prompt string) (string, error)
	Table(headers []string, rows [][]string)
}

// Terminal renders reporter output to a writer and reads prompt answers from
// a reader, colorizing only when the writer is an interactive terminal.
type Terminal struct {
	out      io.Writer
	in       *bufio.Reader
	rawIn    io.Reader
	colorize bool
}

// NewTerminal builds a Terminal reporter over the given streams.
func NewTerminal(out io.Writer, in io.Reader) *Terminal {
	return &Terminal{
		out:      out,
		in:       bufio.NewReader(in),
		rawIn:    in,
		colorize: shouldColorize(out),
	}
}

func (t *Terminal) Info(format string, args ...any) {
	t.println(text.Colors{}, format, args...)
}

func (t *Terminal) Success(format string, args ...any) {
	t.println(text.Colors{text.FgGreen}, format, args...)
}

func (t *Terminal) Warn(format string, args ...any) {
	t.println(text.Colors{text.FgYellow}, format, args...)
}

func (t *Terminal) Error(format string, args ...any) {
	t.println(text.Colors{text.FgRed}, format, args...)
}

// Confirm asks a yes/no question. An empty answer resolves to defaultYes;
// unrecognized answers re-prompt.
func (t *Terminal) Confirm(prompt string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(t.out, "%s [%s]: ", prompt, hint)
		line, err := t.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		t.Warn("Please answer y or n.")
	}
}

// Ask reads a line of input, returning defaultValue for an empty answer.
func (t *Terminal) Ask(prompt, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(t.out, "%s (%s): ", prompt, defaultValue)
	} else {
		fmt.Fprintf(t.out, "%s: ", prompt)
	}
	line, err := t.readLine()
	if err != nil {
		return "", err
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// AskSecret reads input without echoing when stdin is a terminal. It falls
// back to a plain line read on non-terminal input.
func (t *Terminal) AskSecret(prompt string) (string, error) {
	fmt.Fprintf(t.out, "%s: ", prompt)
	if file, ok := t.rawIn.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		raw, err := term.ReadPassword(int(file.Fd()))
		fmt.Fprintln(t.out)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}
	line, err := t.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Table renders a bordered table of the given headers and rows.
func (t *Terminal) Table(headers []string, rows [][]string) {
	fmt.Fprintln(t.out, renderTable(headers, rows))
}

func (t *Terminal) println(colors text.Colors, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	if t.colorize && len(colors) > 0 {
		message = colors.Sprint(message)
	}
	fmt.Fprintln(t.out, message)
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
