package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// readPassword and stdinIsTerminal are test seams over x/term.
var (
	readPassword    = term.ReadPassword
	stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// runSelect is a test seam for the huh picker.
var runSelect = func(title string, options []string, selected *string) error {
	field := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Height(12).
		Value(selected)

	return huh.NewForm(huh.NewGroup(field)).Run()
}

// ErrInvalidChoice is returned when a typed choice matches no option.
var ErrInvalidChoice = errors.New("invalid choice")

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return readLine(reader)
}

// GetTextWithDefault is GetSimpleText that returns current when the user
// just presses Enter.
func GetTextWithDefault(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}
	text, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return "", err
	}
	if text == "" {
		return current, nil
	}
	return text, nil
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints prompt to w and reads a password without echo when
// stdin is a terminal. Otherwise the line is read from reader.
func GetPassword(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	if !stdinIsTerminal() {
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// SelectOption lets the user pick one of options. On a terminal a huh
// picker is shown; otherwise the options are listed and the user types a
// number or the option text. Enter keeps current.
func SelectOption(reader *bufio.Reader, title string, options []string, current string, w io.Writer) (string, error) {
	if stdinIsTerminal() {
		selected := current
		if selected == "" && len(options) > 0 {
			selected = options[0]
		}
		if err := runSelect(title, options, &selected); err != nil {
			return "", fmt.Errorf("prompt failed: %w", err)
		}
		return selected, nil
	}

	for i, opt := range options {
		fmt.Fprintf(w, "%3d) %s\n", i+1, opt)
	}
	text, err := GetTextWithDefault(reader, title, current, w)
	if err != nil {
		return "", err
	}
	if n, err := strconv.Atoi(text); err == nil {
		if n < 1 || n > len(options) {
			return "", ErrInvalidChoice
		}
		return options[n-1], nil
	}
	if !slices.Contains(options, text) {
		return "", ErrInvalidChoice
	}
	return text, nil
}
