package filtering_test

import (
	"testing"
	"time"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/PFTrackr/fin_tracker_app/internal/core/filtering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCycleWindow_NilCycleIsUnbounded(t *testing.T) {
	assert.Nil(t, filtering.ResolveCycleWindow(nil, time.Now()))
}

func TestResolveCycleWindow_AllSentinelIsUnbounded(t *testing.T) {
	cycle := &domain.BillingCycle{CycleID: domain.CycleAll, StartDate: time.Now()}
	assert.Nil(t, filtering.ResolveCycleWindow(cycle, time.Now()))
}

func TestResolveCycleWindow_ClosedCycle(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	cycle := &domain.BillingCycle{CycleID: "c1", StartDate: start, EndDate: &end}

	window := filtering.ResolveCycleWindow(cycle, time.Now())

	require.NotNil(t, window)
	assert.Equal(t, start, window.Start)
	assert.Equal(t, end, window.End)
}

func TestResolveCycleWindow_OpenCycleExtendsToNow(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
	cycle := &domain.BillingCycle{CycleID: "c1", StartDate: start}

	window := filtering.ResolveCycleWindow(cycle, now)

	require.NotNil(t, window)
	assert.Equal(t, start, window.Start)
	assert.Equal(t, now, window.End)
}

func TestDateWindow_ContainsIsHalfOpen(t *testing.T) {
	window := filtering.DateWindow{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, window.Contains(window.Start))
	assert.True(t, window.Contains(window.End.Add(-time.Second)))
	assert.False(t, window.Contains(window.End))
	assert.False(t, window.Contains(window.Start.Add(-time.Second)))
}
