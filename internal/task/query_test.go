package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []Task {
	return []Task{
		{ID: "a", Text: "low no due", Priority: PriorityLow, CreatedAt: noon.Add(-3 * time.Hour), Tags: []string{"#home"}},
		{ID: "b", Text: "overdue", Priority: PriorityOverdue, DueDate: date(2026, time.March, 9), CreatedAt: noon.Add(-2 * time.Hour), Tags: []string{"#work"}},
		{ID: "c", Text: "high", Priority: PriorityHigh, DueDate: date(2026, time.March, 11), CreatedAt: noon.Add(-1 * time.Hour), Tags: []string{"#work", "#errands"}},
	}
}

func ids(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestSort(t *testing.T) {
	t.Run("created is most recent first", func(t *testing.T) {
		got := Sort(sample(), SortCreated)
		assert.Equal(t, []string{"c", "b", "a"}, ids(got))
	})

	t.Run("dueDate puts undated tasks last", func(t *testing.T) {
		got := Sort(sample(), SortDueDate)
		assert.Equal(t, []string{"b", "c", "a"}, ids(got))
	})

	t.Run("priority ranks overdue high medium low", func(t *testing.T) {
		got := Sort([]Task{
			{ID: "1", Priority: PriorityLow},
			{ID: "2", Priority: PriorityOverdue},
			{ID: "3", Priority: PriorityHigh},
		}, SortPriority)
		assert.Equal(t, []string{"2", "3", "1"}, ids(got))
	})

	t.Run("priority ties keep input order", func(t *testing.T) {
		got := Sort([]Task{
			{ID: "1", Priority: PriorityHigh},
			{ID: "2", Priority: PriorityHigh},
			{ID: "3", Priority: PriorityOverdue},
		}, SortPriority)
		assert.Equal(t, []string{"3", "1", "2"}, ids(got))
	})

	t.Run("never mutates input", func(t *testing.T) {
		in := sample()
		before := ids(in)
		_ = Sort(in, SortCreated)
		assert.Equal(t, before, ids(in))
	})

	t.Run("is a permutation and idempotent", func(t *testing.T) {
		for _, criterion := range []SortCriterion{SortCreated, SortDueDate, SortPriority} {
			once := Sort(sample(), criterion)
			require.ElementsMatch(t, ids(sample()), ids(once), "criterion %s", criterion)
			twice := Sort(once, criterion)
			assert.Equal(t, ids(once), ids(twice), "criterion %s", criterion)
		}
	})
}

func TestFilterByTag(t *testing.T) {
	tasks := sample()

	t.Run("empty tag returns input unchanged", func(t *testing.T) {
		assert.Equal(t, ids(tasks), ids(FilterByTag(tasks, "")))
	})

	t.Run("matches case-insensitively", func(t *testing.T) {
		got := FilterByTag(tasks, "#Work")
		assert.Equal(t, []string{"b", "c"}, ids(got))
	})

	t.Run("no match yields empty", func(t *testing.T) {
		assert.Empty(t, FilterByTag(tasks, "#nope"))
	})
}

func TestAllTags(t *testing.T) {
	assert.Equal(t, []string{"#errands", "#home", "#work"}, AllTags(sample()))
	assert.Empty(t, AllTags(nil))
}

func TestStats(t *testing.T) {
	t.Run("counts and completion rate", func(t *testing.T) {
		tasks := []Task{
			{ID: "1", Completed: true},
			{ID: "2", DueDate: date(2026, time.March, 9)}, // yesterday, pending
			{ID: "3"},
			{ID: "4"},
		}
		got := Stats(tasks, noon)
		assert.Equal(t, TaskStats{Total: 4, Completed: 1, Pending: 3, Overdue: 1, CompletionRate: 25}, got)
	})

	t.Run("completed tasks never count as overdue", func(t *testing.T) {
		tasks := []Task{{ID: "1", Completed: true, DueDate: date(2026, time.March, 1)}}
		assert.Equal(t, 0, Stats(tasks, noon).Overdue)
	})

	t.Run("empty collection", func(t *testing.T) {
		assert.Equal(t, TaskStats{}, Stats(nil, noon))
	})
}
