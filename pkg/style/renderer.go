package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Renderer defines the interface for rendering CLI output
type Renderer interface {
	RenderFileResults(results []FileResult) string
	RenderError(err error) string
	RenderExplain(snapshot string) string
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct {
	width int
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{
		width: 80,
	}
}

// SetWidth updates the terminal width for rendering
func (r *TerminalRenderer) SetWidth(width int) {
	r.width = width
}

// RenderFileResults renders a formatting run, one line per file plus a
// summary line.
func (r *TerminalRenderer) RenderFileResults(results []FileResult) string {
	if len(results) == 0 {
		return MutedStyle.Render("No files to format")
	}

	var sb strings.Builder
	for _, fr := range results {
		sb.WriteString(RenderFileResult(fr) + "\n")
	}

	formatted, errored := 0, 0
	for _, fr := range results {
		switch fr.Status {
		case StatusFormatted:
			formatted++
		case StatusError:
			errored++
		}
	}
	summary := fmt.Sprintf("%d files, %d formatted, %d errors",
		len(results), formatted, errored)
	if errored > 0 {
		sb.WriteString(ErrorStyle.Render(summary))
	} else {
		sb.WriteString(MutedStyle.Render(summary))
	}

	return sb.String()
}

// RenderError renders an error message. Structured errors already
// carry their code in the message.
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// RenderExplain renders an options snapshot in a bordered box.
func (r *TerminalRenderer) RenderExplain(snapshot string) string {
	return BoxStyle.Width(r.width - 4).Render(snapshot)
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderFileResults renders plain result lines.
func (r *PlainRenderer) RenderFileResults(results []FileResult) string {
	if len(results) == 0 {
		return "No files to format"
	}

	var sb strings.Builder
	for _, fr := range results {
		line := fmt.Sprintf("%s: %s", fr.Status, fr.Path)
		if fr.Err != nil {
			line += ": " + fr.Err.Error()
		}
		sb.WriteString(line + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}

// RenderExplain returns the snapshot untouched.
func (r *PlainRenderer) RenderExplain(snapshot string) string {
	return snapshot
}
