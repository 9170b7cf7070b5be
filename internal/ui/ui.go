// Package ui is the terminal front end. It renders the controller's
// view model and translates key presses into intents; it holds no task
// state of its own.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskline/internal/app"
	"taskline/internal/config"
	"taskline/internal/task"
)

// formState walks the three task fields through one shared text
// input: tab or enter advances, esc abandons the whole form.
type formState struct {
	taskID string // empty when adding
	text   string
	due    string
	tags   string
	index  int
}

type Model struct {
	ctrl       *app.Controller
	cfg        config.Config
	view       app.ViewModel
	styles     styles
	cursor     int
	input      textinput.Model
	status     string
	statusSev  app.Severity
	confirmDel bool
	pendingID  string
	form       *formState
}

func Run(ctrl *app.Controller, cfg config.Config) error {
	ti := textinput.New()
	ti.Placeholder = "Task text"
	ti.CharLimit = task.MaxTextLen
	ti.Width = 50

	m := Model{
		ctrl:   ctrl,
		cfg:    cfg,
		view:   ctrl.View(),
		styles: newStyles(ctrl.Dark()),
		input:  ti,
		status: "Press 'a' to add, space to toggle, 'd' to delete.",
	}

	program := tea.NewProgram(m)
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.form != nil {
			return m.updateFormMode(msg.String(), msg)
		}
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		return m.updateListMode(msg.String())
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

// refresh re-derives the view after any intent and keeps the cursor on
// a valid row.
func (m *Model) refresh() {
	m.view = m.ctrl.View()
	m.cursor = clampCursor(m.cursor, len(m.view.Tasks))
}

// applyNotice moves a controller notice into the status line. A nil
// notice leaves the line to the caller.
func (m *Model) applyNotice(n *app.Notice) bool {
	if n == nil {
		return false
	}
	m.status = n.Message
	m.statusSev = n.Severity
	return true
}

func (m *Model) setStatus(sev app.Severity, text string) {
	m.status = text
	m.statusSev = sev
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	k := m.cfg.Keys
	switch key {
	case "ctrl+c", k.Quit:
		return m, tea.Quit
	case k.Down, "down":
		if len(m.view.Tasks) > 0 {
			m.cursor = clampCursor(m.cursor+1, len(m.view.Tasks))
		}
	case k.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(m.view.Tasks))
		}
	case k.Add:
		m.form = &formState{}
		m.startFormField()
		m.setStatus("", "Add task: enter to advance, esc to cancel")
	case k.Edit:
		if len(m.view.Tasks) == 0 {
			m.setStatus(app.SeverityWarning, "No tasks to edit")
			return m, nil
		}
		t := m.view.Tasks[m.cursor]
		m.form = &formState{
			taskID: t.ID,
			text:   t.Text,
			due:    dueInput(t),
			tags:   strings.Join(t.Tags, " "),
		}
		m.startFormField()
		m.setStatus("", "Edit task: enter to advance, esc to cancel")
	case k.Toggle:
		if len(m.view.Tasks) == 0 {
			return m, nil
		}
		m.applyNotice(m.ctrl.Toggle(m.view.Tasks[m.cursor].ID))
		m.refresh()
	case k.Delete:
		if len(m.view.Tasks) == 0 {
			return m, nil
		}
		t := m.view.Tasks[m.cursor]
		m.confirmDel = true
		m.pendingID = t.ID
		m.setStatus(app.SeverityWarning, fmt.Sprintf("Delete %q? y/n", t.Text))
	case k.ClearDone:
		if m.applyNotice(m.ctrl.ClearCompleted()) {
			m.refresh()
		}
	case k.Filter:
		m.ctrl.SetFilter(nextFilter(m.view.Tags, m.view.Filter))
		m.refresh()
		if f := m.view.Filter; f == "" {
			m.setStatus("", "Filter: all tasks")
		} else {
			m.setStatus("", "Filter: "+f)
		}
	case k.Theme:
		m.ctrl.ToggleTheme()
		m.styles = newStyles(m.ctrl.Dark())
		m.refresh()
	case k.SortCreated:
		m.ctrl.SetSort(task.SortCreated)
		m.refresh()
		m.setStatus("", "Sorted by creation time")
	case k.SortDue:
		m.ctrl.SetSort(task.SortDueDate)
		m.refresh()
		m.setStatus("", "Sorted by due date")
	case k.SortPriority:
		m.ctrl.SetSort(task.SortPriority)
		m.refresh()
		m.setStatus("", "Sorted by priority")
	}
	return m, nil
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", m.cfg.Keys.Cancel:
		m.setStatus("", "Delete cancelled")
		m.confirmDel = false
		m.pendingID = ""
	case "y", "Y":
		m.applyNotice(m.ctrl.Delete(m.pendingID))
		m.refresh()
		m.confirmDel = false
		m.pendingID = ""
	}
	return m, nil
}

func (m Model) updateFormMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.form = nil
		m.input.Blur()
		m.setStatus("", "Cancelled")
		return m, nil
	case "tab", "down":
		if m.form == nil {
			return m, nil
		}
		m.form.setCurrent(m.input.Value())
		m.form.index = wrapIndex(m.form.index+1, len(formLabels()))
		m.startFormField()
		return m, nil
	case "shift+tab", "up":
		if m.form == nil {
			return m, nil
		}
		m.form.setCurrent(m.input.Value())
		m.form.index = wrapIndex(m.form.index-1, len(formLabels()))
		m.startFormField()
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		if m.form == nil {
			return m, nil
		}
		m.form.setCurrent(m.input.Value())
		if m.form.index < len(formLabels())-1 {
			m.form.index++
			m.startFormField()
			return m, nil
		}
		return m.submitForm()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// submitForm hands the form to the controller. A validation failure
// keeps the form open with the input intact so nothing typed is lost.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	in := task.Input{Text: m.form.text, DueDate: m.form.due, Tags: m.form.tags}

	var notice *app.Notice
	if m.form.taskID == "" {
		notice = m.ctrl.Submit(in)
	} else {
		notice = m.ctrl.Edit(m.form.taskID, in)
	}
	m.applyNotice(notice)

	if notice != nil && notice.Severity == app.SeverityError {
		m.form.index = 0
		m.startFormField()
		return m, nil
	}

	added := m.form.taskID == ""
	m.form = nil
	m.input.SetValue("")
	m.input.Blur()
	m.refresh()
	if added {
		m.cursor = 0
	}
	return m, nil
}

func (m *Model) startFormField() {
	m.input.SetValue(m.form.current())
	m.input.Placeholder = formLabels()[m.form.index]
	m.input.Focus()
}

func formLabels() []string {
	return []string{"task text", "due date (YYYY-MM-DD)", "tags (#tag ...)"}
}

func (fs formState) current() string {
	switch fs.index {
	case 0:
		return fs.text
	case 1:
		return fs.due
	default:
		return fs.tags
	}
}

func (fs *formState) setCurrent(v string) {
	switch fs.index {
	case 0:
		fs.text = v
	case 1:
		fs.due = v
	default:
		fs.tags = v
	}
}

func dueInput(t app.TaskView) string {
	if t.DueDate == nil {
		return ""
	}
	return t.DueDate.Format(task.DateLayout)
}

// nextFilter cycles all -> tags[0] -> ... -> tags[n-1] -> all.
func nextFilter(tags []string, current string) string {
	if len(tags) == 0 {
		return ""
	}
	if current == "" {
		return tags[0]
	}
	for i, tag := range tags {
		if strings.EqualFold(tag, current) {
			if i+1 < len(tags) {
				return tags[i+1]
			}
			return ""
		}
	}
	return ""
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
