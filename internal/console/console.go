package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"studytrack/internal/apperrors"

	"github.com/charmbracelet/lipgloss"
)

// ReadLine reads one line without its terminator. eof reports that input ended;
// the partial line read before the end is still returned.
func ReadLine(r *bufio.Reader) (line string, eof bool, err error) {
	line, err = r.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if errors.Is(err, io.EOF) {
		return line, true, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: read input: %w", apperrors.ErrIO, err)
	}
	return line, false, nil
}

// Styles colour headings when the writer is a terminal and render plain text otherwise.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Notice lipgloss.Style
	Muted  lipgloss.Style
}

func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:  r.NewStyle().Foreground(lipgloss.Color("#b4befe")),
		Label:  r.NewStyle().Foreground(lipgloss.Color("#fab387")),
		Notice: r.NewStyle().Foreground(lipgloss.Color("#a6e3a1")),
		Muted:  r.NewStyle().Foreground(lipgloss.Color("#6c7086")),
	}
}
