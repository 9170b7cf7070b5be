package app

import "taskline/internal/task"

// TaskView is a task augmented with its display-only derivations.
type TaskView struct {
	task.Task
	Status        task.Status
	FormattedDate string
}

// ViewModel is the full projection handed to the presentation layer.
// Tasks is filtered and sorted; Total, Tags and Stats always cover the
// whole collection.
type ViewModel struct {
	Tasks  []TaskView
	Total  int
	Tags   []string
	Stats  task.TaskStats
	Filter string
	Sort   task.SortCriterion
	Dark   bool
}

// View derives the current projection. It never mutates stored state;
// calling it repeatedly with an unchanged collection yields an equal
// result apart from the clock moving.
func (c *Controller) View() ViewModel {
	now := c.now()
	visible := task.Sort(task.FilterByTag(c.tasks, c.filter), c.sort)

	views := make([]TaskView, len(visible))
	for i, t := range visible {
		views[i] = TaskView{
			Task:          t,
			Status:        task.DueStatus(t.DueDate, now),
			FormattedDate: task.FormatDate(t.DueDate),
		}
	}

	return ViewModel{
		Tasks:  views,
		Total:  len(c.tasks),
		Tags:   task.AllTags(c.tasks),
		Stats:  task.Stats(c.tasks, now),
		Filter: c.filter,
		Sort:   c.sort,
		Dark:   c.dark,
	}
}
