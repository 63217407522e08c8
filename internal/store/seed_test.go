package store_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/alexvidal/xptrack/internal/dateutil"
	"github.com/alexvidal/xptrack/internal/domain"
	"github.com/alexvidal/xptrack/internal/store"
	"github.com/alexvidal/xptrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_FirstRunPopulatesAllCollections(t *testing.T) {
	s := store.New(testutil.NewTestDB(t))
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.Seed(ctx, now, rand.New(rand.NewSource(1))))

	tasks, err := s.Tasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 5)

	habits, err := s.Habits(ctx)
	require.NoError(t, err)
	require.Len(t, habits, 10)
	for _, h := range habits {
		assert.Equal(t, domain.ScheduleDaily, h.Schedule)
		assert.Len(t, h.DailyRecords, 7, "habit %q should carry 7 days of history", h.Title)
		assert.GreaterOrEqual(t, h.Streak, 0)
	}

	budgets, err := s.Budgets(ctx)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Len(t, budgets[0].Items, 4)
	assert.Len(t, budgets[0].Transactions, 2)

	notes, err := s.Notes(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 3)
}

func TestSeed_TaskOrderIsSequential(t *testing.T) {
	s := store.New(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.Seed(ctx, time.Now(), rand.New(rand.NewSource(1))))
	tasks, err := s.Tasks(ctx)
	require.NoError(t, err)
	for i, task := range tasks {
		assert.Equal(t, i+1, task.Order)
		assert.NotEmpty(t, task.ID)
	}
}

func TestSeed_DoesNotOverwriteExistingCollections(t *testing.T) {
	s := store.New(testutil.NewTestDB(t))
	ctx := context.Background()

	mine := []domain.Task{{ID: "mine", Title: "Keep me", Order: 1}}
	require.NoError(t, s.SaveTasks(ctx, mine))

	require.NoError(t, s.Seed(ctx, time.Now(), rand.New(rand.NewSource(1))))

	tasks, err := s.Tasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, mine, tasks)

	// Absent collections are still seeded.
	habits, err := s.Habits(ctx)
	require.NoError(t, err)
	assert.Len(t, habits, 10)
}

func TestSeed_DemoRecordsCoverLast7Days(t *testing.T) {
	now := time.Now()
	habits := store.DemoHabits(now, rand.New(rand.NewSource(7)))
	days := dateutil.Last7Days(now)
	for _, h := range habits {
		for _, day := range days {
			_, ok := h.DailyRecords[day]
			assert.True(t, ok, "habit %q missing record for %s", h.Title, day)
		}
	}
}
