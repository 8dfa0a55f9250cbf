package style

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Status of one file in a formatting run.
type Status string

const (
	StatusFormatted Status = "formatted" // Rewritten with changes
	StatusUnchanged Status = "unchanged" // Already formatted
	StatusError     Status = "error"     // Read, parse or write failed
	StatusSkipped   Status = "skipped"   // Not processed
)

// StatusStyle returns the pterm style for a status.
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusFormatted:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusUnchanged:
		return pterm.NewStyle(pterm.FgGray)
	case StatusError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgYellow)
	}
}

// FileResult is the outcome of formatting one file.
type FileResult struct {
	Path      string
	Status    Status
	Documents int   // Top-level forms printed
	Err       error // Set when Status is StatusError
}

// RenderFileResult renders a single result line.
func RenderFileResult(fr FileResult) string {
	var indicator string
	switch fr.Status {
	case StatusFormatted:
		indicator = SuccessIndicator
	case StatusError:
		indicator = ErrorIndicator
	case StatusSkipped:
		indicator = SkippedIndicator
	default:
		indicator = InfoIndicator
	}

	line := fmt.Sprintf("%s %s %s",
		indicator,
		StatusStyle(fr.Status).Sprintf("%-10s", string(fr.Status)),
		PathStyle.Render(fr.Path))

	if fr.Err != nil {
		line += " " + ErrorStyle.Render(fr.Err.Error())
	} else if fr.Documents > 0 {
		line += MutedStyle.Render(fmt.Sprintf(" (%d forms)", fr.Documents))
	}
	return line
}

// Summarize aggregates a run into an overall status: any error makes
// the run an error, any change makes it formatted, otherwise unchanged.
func Summarize(results []FileResult) Status {
	overall := StatusUnchanged
	for _, fr := range results {
		switch fr.Status {
		case StatusError:
			return StatusError
		case StatusFormatted:
			overall = StatusFormatted
		}
	}
	return overall
}
