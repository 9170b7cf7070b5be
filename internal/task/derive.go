package task

import (
	"fmt"
	"math"
	"time"
)

// Status is the presentational classification of a due date.
type Status struct {
	Class string
	Text  string
}

const (
	ClassOverdue  = "overdue"
	ClassDueSoon  = "due-soon"
	ClassUpcoming = "upcoming"
)

// daysUntil is the shared day-difference arithmetic: the number of
// whole days from now until the date's midnight, rounded up. "Due
// today" and anything earlier today is 0; yesterday is -1.
func daysUntil(date time.Time, now time.Time) int {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return int(math.Ceil(midnight.Sub(now).Hours() / 24))
}

// CalculatePriority derives urgency from the due date. No due date is
// low; overdue beats everything; due today or tomorrow is high; two to
// three days out is medium.
func CalculatePriority(dueDate *time.Time, now time.Time) Priority {
	if dueDate == nil {
		return PriorityLow
	}
	switch d := daysUntil(*dueDate, now); {
	case d < 0:
		return PriorityOverdue
	case d <= 1:
		return PriorityHigh
	case d <= 3:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// DueStatus classifies the due date for display. It shares daysUntil
// with CalculatePriority so the two can never disagree on boundaries.
func DueStatus(dueDate *time.Time, now time.Time) Status {
	if dueDate == nil {
		return Status{}
	}
	switch d := daysUntil(*dueDate, now); {
	case d < 0:
		return Status{Class: ClassOverdue, Text: fmt.Sprintf("overdue by %d %s", -d, dayWord(-d))}
	case d == 0:
		return Status{Class: ClassDueSoon, Text: "due today"}
	case d == 1:
		return Status{Class: ClassDueSoon, Text: "due tomorrow"}
	case d <= 3:
		return Status{Class: ClassUpcoming, Text: fmt.Sprintf("due in %d days", d)}
	default:
		return Status{Text: fmt.Sprintf("due %d days", d)}
	}
}

func dayWord(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

// FormatDate renders a due date as e.g. "Mar 5, 2026"; empty for nil.
func FormatDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format("Jan 2, 2006")
}
