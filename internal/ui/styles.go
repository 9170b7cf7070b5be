package ui

import (
	"github.com/charmbracelet/lipgloss"

	"taskline/internal/app"
	"taskline/internal/task"
)

// styles is the palette for one theme. Rebuilt whenever the theme
// preference flips.
type styles struct {
	title    lipgloss.Style
	muted    lipgloss.Style
	done     lipgloss.Style
	overdue  lipgloss.Style
	dueSoon  lipgloss.Style
	upcoming lipgloss.Style
	tag      lipgloss.Style
	success  lipgloss.Style
	errorSt  lipgloss.Style
	warning  lipgloss.Style
}

func newStyles(dark bool) styles {
	if dark {
		return styles{
			title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
			muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
			done:     lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("243")),
			overdue:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
			dueSoon:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			upcoming: lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
			tag:      lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
			success:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
			errorSt:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		}
	}
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		done:     lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("245")),
		overdue:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
		dueSoon:  lipgloss.NewStyle().Foreground(lipgloss.Color("166")),
		upcoming: lipgloss.NewStyle().Foreground(lipgloss.Color("26")),
		tag:      lipgloss.NewStyle().Foreground(lipgloss.Color("91")),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		errorSt:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("166")),
	}
}

func (s styles) forStatusClass(class string) lipgloss.Style {
	switch class {
	case task.ClassOverdue:
		return s.overdue
	case task.ClassDueSoon:
		return s.dueSoon
	case task.ClassUpcoming:
		return s.upcoming
	default:
		return s.muted
	}
}

func (s styles) forSeverity(sev app.Severity) lipgloss.Style {
	switch sev {
	case app.SeveritySuccess:
		return s.success
	case app.SeverityError:
		return s.errorSt
	case app.SeverityWarning:
		return s.warning
	default:
		return s.muted
	}
}

func (s styles) forPriority(p task.Priority) lipgloss.Style {
	switch p {
	case task.PriorityOverdue:
		return s.overdue
	case task.PriorityHigh:
		return s.dueSoon
	case task.PriorityMedium:
		return s.upcoming
	default:
		return s.muted
	}
}
