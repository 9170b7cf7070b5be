package task

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Input is the raw form data for creating or editing a task.
type Input struct {
	Text    string
	DueDate string // DateLayout or empty
	Tags    string // free text, parsed by ParseTags
}

// Validation is the outcome of checking an Input. When Valid, it also
// carries the normalized values so the caller constructs the task from
// the same parse the validator saw.
type Validation struct {
	Valid   bool
	Errors  []string
	Text    string
	DueDate *time.Time
	Tags    []string
}

// Validate checks an Input and collects every applicable error, in a
// fixed order, instead of stopping at the first.
func Validate(in Input) Validation {
	v := Validation{
		Text: strings.TrimSpace(in.Text),
		Tags: ParseTags(in.Tags),
	}

	if v.Text == "" {
		v.Errors = append(v.Errors, "Task text is required")
	}
	if utf8.RuneCountInString(v.Text) > MaxTextLen {
		v.Errors = append(v.Errors, "Task text must be 500 characters or less")
	}
	if due := strings.TrimSpace(in.DueDate); due != "" {
		parsed, err := time.Parse(DateLayout, due)
		if err != nil {
			v.Errors = append(v.Errors, "Due date is not a valid date")
		} else {
			v.DueDate = &parsed
		}
	}
	if len(v.Tags) > MaxTags {
		v.Errors = append(v.Errors, "A task can have at most 10 tags")
	}

	v.Valid = len(v.Errors) == 0
	return v
}
