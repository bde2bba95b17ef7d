package display

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sdoconnell/nrrdnote/internal/config"
)

// ansiColors maps the config file's color names to ANSI palette indexes.
var ansiColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright_black":   "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

// Styles is the resolved style set for one renderer.
type Styles struct {
	TableTitle  lipgloss.Style
	NoteTitle   lipgloss.Style
	Description lipgloss.Style
	Notebook    lipgloss.Style
	Alias       lipgloss.Style
	Tags        lipgloss.Style
	Label       lipgloss.Style
}

func newStyles(c config.Colors) Styles {
	style := func(name string, bold bool) lipgloss.Style {
		s := lipgloss.NewStyle()
		if c.DisableColors {
			return s
		}
		if code, ok := ansiColors[name]; ok {
			s = s.Foreground(lipgloss.Color(code))
		}
		if bold && !c.DisableBold {
			s = s.Bold(true)
		}
		return s
	}

	return Styles{
		TableTitle:  style(c.TableTitle, true),
		NoteTitle:   style(c.NoteTitle, true),
		Description: style(c.Description, false),
		Notebook:    style(c.Notebook, true),
		Alias:       style(c.Alias, false),
		Tags:        style(c.Tags, false),
		Label:       style(c.Label, true),
	}
}
