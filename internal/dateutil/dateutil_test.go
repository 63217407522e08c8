package dateutil

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anchor = time.Date(2026, 9, 1, 15, 4, 5, 0, time.Local)

func TestDateKey_ZeroPadded(t *testing.T) {
	assert.Equal(t, "2026-09-01", DateKey(anchor))
	assert.Equal(t, "2026-01-05", DateKey(time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)))
}

func TestLast7Days(t *testing.T) {
	days := Last7Days(anchor)
	require.Len(t, days, 7)
	assert.Equal(t, "2026-08-26", days[0])
	assert.Equal(t, "2026-09-01", days[6])
}

func TestLast7Days_CrossesMonthBoundary(t *testing.T) {
	days := Last7Days(time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local))
	assert.Equal(t, []string{
		"2026-02-24", "2026-02-25", "2026-02-26", "2026-02-27",
		"2026-02-28", "2026-03-01", "2026-03-02",
	}, days)
}

func TestRelativeTime(t *testing.T) {
	now := anchor
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{0, "Just now"},
		{59 * time.Second, "Just now"},
		{90 * time.Second, "1m ago"},
		{59 * time.Minute, "59m ago"},
		{60 * time.Minute, "1h ago"},
		{23*time.Hour + 59*time.Minute, "23h ago"},
		{24 * time.Hour, "1d ago"},
		{6*24*time.Hour + 12*time.Hour, "6d ago"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RelativeTime(now.Add(-tc.ago), now), "ago=%v", tc.ago)
	}
}

func TestRelativeTime_OlderThanAWeek(t *testing.T) {
	got := RelativeTime(anchor.AddDate(0, 0, -10), anchor)
	assert.Equal(t, "8/22/2026", got)
}

func TestPastRecords(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	records := PastRecords(anchor, 7, 1.0, rng)
	require.Len(t, records, 7)
	for _, day := range Last7Days(anchor) {
		assert.True(t, records[day], "day %s should be done at rate 1.0", day)
	}

	none := PastRecords(anchor, 7, 0.0, rng)
	for day, done := range none {
		assert.False(t, done, "day %s should be missed at rate 0.0", day)
	}
}
