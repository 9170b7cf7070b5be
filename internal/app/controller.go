// Package app owns the in-memory task collection and applies user
// intents to it. Every mutation funnels through persist-then-rederive;
// persistence failures are logged and never roll back the in-memory
// change.
package app

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"taskline/internal/task"
)

// TaskStore is the persistence collaborator. All methods are fail-soft
// from the controller's point of view: errors are logged, not surfaced.
type TaskStore interface {
	SaveTasks([]task.Task) error
	LoadTasks() ([]task.Task, error)
	SaveTheme(dark bool) error
	LoadTheme() (bool, error)
}

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Notice is a transient message for the presentation layer.
type Notice struct {
	Severity Severity
	Message  string
}

// Options tune a new Controller. Now defaults to time.Now and exists
// so tests can pin the clock.
type Options struct {
	Sort   task.SortCriterion
	Filter string
	Now    func() time.Time
}

// Controller is the single owner of the task collection for the
// session. It is not safe for concurrent use; the event loop is the
// only caller.
type Controller struct {
	store  TaskStore
	log    *zap.Logger
	now    func() time.Time
	tasks  []task.Task
	filter string
	sort   task.SortCriterion
	dark   bool
}

// New loads prior state from the store and recomputes every task's
// priority against the current clock, so a collection saved yesterday
// does not start the session with stale urgency. Load failures degrade
// to an empty collection.
func New(store TaskStore, log *zap.Logger, opts Options) *Controller {
	c := &Controller{
		store:  store,
		log:    log,
		now:    opts.Now,
		filter: opts.Filter,
		sort:   opts.Sort,
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.sort == "" {
		c.sort = task.SortCreated
	}

	tasks, err := store.LoadTasks()
	if err != nil {
		log.Warn("loading tasks failed, starting empty", zap.Error(err))
		tasks = nil
	}
	now := c.now()
	for i := range tasks {
		tasks[i].Priority = task.CalculatePriority(tasks[i].DueDate, now)
	}
	c.tasks = tasks

	dark, err := store.LoadTheme()
	if err != nil {
		log.Warn("loading theme failed, using light", zap.Error(err))
		dark = false
	}
	c.dark = dark

	return c
}

// Submit validates the form and, when it passes, prepends a new task.
// On failure nothing changes and the collected messages come back as
// one error notice.
func (c *Controller) Submit(in task.Input) *Notice {
	v := task.Validate(in)
	if !v.Valid {
		return &Notice{Severity: SeverityError, Message: strings.Join(v.Errors, "; ")}
	}
	t := task.New(v.Text, v.DueDate, in.Tags, c.now())
	c.tasks = append([]task.Task{t}, c.tasks...)
	c.persist()
	return &Notice{Severity: SeveritySuccess, Message: "Task added"}
}

// Toggle flips completion for the task with the given id. Unknown ids
// are a silent no-op.
func (c *Controller) Toggle(id string) *Notice {
	i := c.find(id)
	if i < 0 {
		return nil
	}
	c.tasks[i].Completed = !c.tasks[i].Completed
	c.tasks[i].Priority = task.CalculatePriority(c.tasks[i].DueDate, c.now())
	c.persist()
	return nil
}

// Edit overwrites text, due date, tags and priority in place. Identity
// and creation time are preserved. Unknown ids are a silent no-op.
func (c *Controller) Edit(id string, in task.Input) *Notice {
	v := task.Validate(in)
	if !v.Valid {
		return &Notice{Severity: SeverityError, Message: strings.Join(v.Errors, "; ")}
	}
	i := c.find(id)
	if i < 0 {
		return nil
	}
	c.tasks[i].Text = v.Text
	c.tasks[i].DueDate = v.DueDate
	c.tasks[i].Tags = v.Tags
	c.tasks[i].Priority = task.CalculatePriority(v.DueDate, c.now())
	c.persist()
	return &Notice{Severity: SeveritySuccess, Message: "Task updated"}
}

// Delete removes the task with the given id. Unknown ids are a silent
// no-op.
func (c *Controller) Delete(id string) *Notice {
	i := c.find(id)
	if i < 0 {
		return nil
	}
	c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
	c.persist()
	return &Notice{Severity: SeveritySuccess, Message: "Task deleted"}
}

// ClearCompleted drops every completed task. When nothing is completed
// it reports a warning and skips persistence.
func (c *Controller) ClearCompleted() *Notice {
	kept := c.tasks[:0:0]
	for _, t := range c.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(c.tasks) {
		return &Notice{Severity: SeverityWarning, Message: "No completed tasks to clear"}
	}
	c.tasks = kept
	c.persist()
	return &Notice{Severity: SeveritySuccess, Message: "Completed tasks cleared"}
}

// SetFilter and SetSort adjust the transient view parameters only;
// neither touches the store.
func (c *Controller) SetFilter(tag string) { c.filter = tag }

func (c *Controller) SetSort(criterion task.SortCriterion) { c.sort = criterion }

func (c *Controller) Filter() string { return c.filter }

func (c *Controller) Sort() task.SortCriterion { return c.sort }

func (c *Controller) Dark() bool { return c.dark }

// ToggleTheme flips the persisted dark-theme preference.
func (c *Controller) ToggleTheme() *Notice {
	c.dark = !c.dark
	if err := c.store.SaveTheme(c.dark); err != nil {
		c.log.Error("saving theme failed", zap.Error(err))
	}
	return nil
}

func (c *Controller) find(id string) int {
	for i, t := range c.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (c *Controller) persist() {
	if err := c.store.SaveTasks(c.tasks); err != nil {
		c.log.Error("saving tasks failed", zap.Error(err))
	}
}
