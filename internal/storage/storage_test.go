package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskline/internal/task"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "taskline.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestTaskRoundTrip(t *testing.T) {
	s := openTemp(t)

	due := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	tasks := []task.Task{
		{ID: "1", Text: "Buy milk", DueDate: &due, Tags: []string{"#home"}, CreatedAt: created, Priority: task.PriorityHigh},
		{ID: "2", Text: "Read", Completed: true, CreatedAt: created.Add(time.Minute), Priority: task.PriorityLow},
	}

	require.NoError(t, s.SaveTasks(tasks))

	got, err := s.LoadTasks()
	require.NoError(t, err)
	if diff := cmp.Diff(tasks, got); diff != "" {
		t.Errorf("round trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestSaveTasksOverwrites(t *testing.T) {
	s := openTemp(t)

	require.NoError(t, s.SaveTasks([]task.Task{{ID: "1", Text: "old"}}))
	require.NoError(t, s.SaveTasks([]task.Task{{ID: "2", Text: "new"}}))

	got, err := s.LoadTasks()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestLoadTasksDegradesSoftly(t *testing.T) {
	t.Run("absent key", func(t *testing.T) {
		s := openTemp(t)
		got, err := s.LoadTasks()
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("malformed blob", func(t *testing.T) {
		s := openTemp(t)
		require.NoError(t, s.put(tasksKey, []byte("{not json")))
		got, err := s.LoadTasks()
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestClearTasks(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.SaveTasks([]task.Task{{ID: "1", Text: "x"}}))
	require.NoError(t, s.ClearTasks())

	got, err := s.LoadTasks()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTheme(t *testing.T) {
	s := openTemp(t)

	dark, err := s.LoadTheme()
	require.NoError(t, err)
	assert.False(t, dark, "default theme is light")

	require.NoError(t, s.SaveTheme(true))
	dark, err = s.LoadTheme()
	require.NoError(t, err)
	assert.True(t, dark)

	require.NoError(t, s.SaveTheme(false))
	dark, err = s.LoadTheme()
	require.NoError(t, err)
	assert.False(t, dark)
}
