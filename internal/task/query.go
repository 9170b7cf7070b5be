package task

import (
	"math"
	"sort"
	"strings"
	"time"
)

// SortCriterion selects the display ordering of the collection.
type SortCriterion string

const (
	SortCreated  SortCriterion = "created"
	SortDueDate  SortCriterion = "dueDate"
	SortPriority SortCriterion = "priority"
)

// Sort returns a new ordering of tasks by the given criterion. The
// input is never mutated and ties keep their input order.
func Sort(tasks []Task, criterion SortCriterion) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	switch criterion {
	case SortDueDate:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].DueDate, out[j].DueDate
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.Before(*b)
			}
		})
	case SortPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Priority.Rank() < out[j].Priority.Rank()
		})
	default: // SortCreated: most recent first
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}

// FilterByTag keeps tasks carrying the tag, case-insensitively. An
// empty tag returns the input unchanged.
func FilterByTag(tasks []Task, tag string) []Task {
	if tag == "" {
		return tasks
	}
	var out []Task
	for _, t := range tasks {
		if t.HasTag(tag) {
			out = append(out, t)
		}
	}
	return out
}

// AllTags returns the deduplicated union of every task's tags in
// ascending lexical order.
func AllTags(tasks []Task) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, t := range tasks {
		for _, tag := range t.Tags {
			key := strings.ToLower(tag)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			tags = append(tags, key)
		}
	}
	sort.Strings(tags)
	return tags
}

// TaskStats are aggregate counters over the whole collection.
type TaskStats struct {
	Total          int
	Completed      int
	Pending        int
	Overdue        int
	CompletionRate int
}

// Stats counts the collection. Overdue counts tasks whose due date
// lies strictly before now and which are not completed. CompletionRate
// is a rounded percentage, 0 for an empty collection.
func Stats(tasks []Task, now time.Time) TaskStats {
	s := TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
			continue
		}
		s.Pending++
		if t.DueDate != nil && t.DueDate.Before(now) {
			s.Overdue++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(100 * float64(s.Completed) / float64(s.Total)))
	}
	return s
}
