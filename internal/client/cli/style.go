package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 4)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
)

const bannerText = "PSPTechHub Thingworx Solutions"

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

func printError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}

func printMuted(w io.Writer, msg string) {
	fmt.Fprintln(w, mutedStyle.Render(msg))
}

func printModal(w io.Writer, msg string, ok bool) {
	style := modalStyle.BorderForeground(lipgloss.Color("196"))
	text := errorStyle.Render(msg)
	if ok {
		style = modalStyle.BorderForeground(lipgloss.Color("42"))
		text = successStyle.Render(msg)
	}
	fmt.Fprintln(w, style.Render(text))
}
