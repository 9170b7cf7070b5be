// Package task holds the task model and the pure derivation and query
// logic over it. Nothing in this package touches the clock, the
// terminal, or the database: every time-dependent function takes an
// explicit "now".
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Limits enforced by Validate before a Task is constructed.
const (
	MaxTextLen = 500
	MaxTags    = 10
)

// DateLayout is the wire format for due dates in user input.
const DateLayout = "2006-01-02"

type Priority string

const (
	PriorityOverdue Priority = "overdue"
	PriorityHigh    Priority = "high"
	PriorityMedium  Priority = "medium"
	PriorityLow     Priority = "low"
)

// Rank orders priorities for sorting: overdue first, low last.
func (p Priority) Rank() int {
	switch p {
	case PriorityOverdue:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

// Task is the sole entity. DueDate is a calendar date stored at
// midnight UTC; nil means no deadline. Priority is a cached derivation
// from DueDate, recomputed on every mutation and once at load time.
type Task struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	Priority  Priority   `json:"priority"`
}

// New builds a Task from already-validated input. It trims the text
// and normalizes the tags but does not enforce the length or tag-count
// limits; that is Validate's job.
func New(text string, dueDate *time.Time, tagsInput string, now time.Time) Task {
	return Task{
		ID:        NewID(now),
		Text:      strings.TrimSpace(text),
		Completed: false,
		DueDate:   dueDate,
		Tags:      ParseTags(tagsInput),
		CreatedAt: now,
		Priority:  CalculatePriority(dueDate, now),
	}
}

// NewID returns an identifier unique within a session with
// overwhelming probability: millisecond timestamp plus a random
// suffix. Monotonic increase is not guaranteed.
func NewID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

// ParseTags splits the input on whitespace, keeps only tokens starting
// with '#', lowercases them and drops duplicates preserving first-seen
// order. It never fails; junk input yields an empty set.
func ParseTags(input string) []string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(fields))
	var tags []string
	for _, f := range fields {
		if !strings.HasPrefix(f, "#") {
			continue
		}
		tag := strings.ToLower(f)
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// HasTag reports whether the task carries the tag, case-insensitively.
func (t Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if strings.EqualFold(have, tag) {
			return true
		}
	}
	return false
}
