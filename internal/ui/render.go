package ui

import (
	"fmt"
	"strings"

	"taskline/internal/config"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("taskline"))
	b.WriteString("\n\n")

	if len(m.view.Tasks) == 0 {
		if m.view.Filter != "" {
			b.WriteString(m.styles.muted.Render("No tasks match " + m.view.Filter + "."))
		} else {
			b.WriteString(m.styles.muted.Render("No tasks yet. Press 'a' to add one."))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList())
	}

	b.WriteString("\n")

	if m.form != nil {
		b.WriteString(m.renderForm())
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatsLine())
	b.WriteString("\n")
	b.WriteString(m.styles.forSeverity(m.statusSev).Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render(renderHelp(m.cfg.Keys)))

	return b.String()
}

func (m Model) renderTaskList() string {
	var b strings.Builder
	for i, t := range m.view.Tasks {
		cursor := " "
		if m.cursor == i && m.form == nil && !m.confirmDel {
			cursor = ">"
		}

		checkbox := "[ ]"
		if t.Completed {
			checkbox = "[x]"
		}

		text := t.Text
		if t.Completed {
			text = m.styles.done.Render(text)
		}

		b.WriteString(fmt.Sprintf("%s %s %s %s", cursor, checkbox,
			m.styles.forPriority(t.Priority).Render(string(t.Priority)), text))

		if len(t.Tags) > 0 {
			b.WriteString(" ")
			b.WriteString(m.styles.tag.Render(strings.Join(t.Tags, " ")))
		}
		if t.Status.Text != "" {
			b.WriteString(" ")
			b.WriteString(m.styles.forStatusClass(t.Status.Class).Render("(" + t.Status.Text + ")"))
		}
		if t.FormattedDate != "" {
			b.WriteString(" ")
			b.WriteString(m.styles.muted.Render(t.FormattedDate))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderForm() string {
	labels := formLabels()
	values := []string{m.form.text, m.form.due, m.form.tags}

	var b strings.Builder
	if m.form.taskID == "" {
		b.WriteString("Add task\n")
	} else {
		b.WriteString("Edit task\n")
	}
	for i, label := range labels {
		prefix := " "
		if i == m.form.index {
			prefix = ">"
		}
		val := values[i]
		if i == m.form.index {
			val = m.input.View()
		} else if strings.TrimSpace(val) == "" {
			val = m.styles.muted.Render("(empty)")
		}
		b.WriteString(fmt.Sprintf("%s %-22s : %s\n", prefix, label, val))
	}
	return b.String()
}

func (m Model) renderStatsLine() string {
	s := m.view.Stats
	line := fmt.Sprintf("%d tasks • %d done • %d pending • %d overdue • %d%% complete",
		s.Total, s.Completed, s.Pending, s.Overdue, s.CompletionRate)

	filter := "all"
	if m.view.Filter != "" {
		filter = m.view.Filter
	}
	line += fmt.Sprintf(" | filter: %s | sort: %s", filter, m.view.Sort)
	return m.styles.muted.Render(line)
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s add • %s edit • %s toggle • %s delete • %s clear done • %s filter • %s/%s/%s sort • %s theme • %s quit",
		k.Up, k.Down, k.Add, k.Edit, k.Toggle, k.Delete, k.ClearDone, k.Filter,
		k.SortCreated, k.SortDue, k.SortPriority, k.Theme, k.Quit)
}
