package analytics_test

import (
	"testing"

	"github.com/PFTrackr/fin_tracker_app/internal/core/analytics"
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fund(id string, current, target float64) domain.SavingsFund {
	return domain.SavingsFund{
		FundID:        id,
		UserID:        "user-1",
		Name:          id,
		CurrentAmount: decimal.NewFromFloat(current),
		TargetAmount:  decimal.NewFromFloat(target),
	}
}

func TestRankFundProgress_RankedDescending(t *testing.T) {
	funds := []domain.SavingsFund{
		fund("quarter", 25, 100),
		fund("almost", 90, 100),
		fund("half", 50, 100),
	}

	result := analytics.RankFundProgress(funds)

	require.Len(t, result, 3)
	assert.Equal(t, "almost", result[0].FundID)
	assert.Equal(t, "half", result[1].FundID)
	assert.Equal(t, "quarter", result[2].FundID)
	assert.InDelta(t, 90, result[0].Progress, 0.001)
}

func TestRankFundProgress_ClampsOverfundedTo100(t *testing.T) {
	result := analytics.RankFundProgress([]domain.SavingsFund{fund("over", 250, 100)})

	require.Len(t, result, 1)
	assert.Equal(t, 100.0, result[0].Progress)
	assert.True(t, result[0].IsCompleted)
}

func TestRankFundProgress_ExcludesNonPositiveTargets(t *testing.T) {
	funds := []domain.SavingsFund{
		fund("zero-target", 100, 0),
		fund("negative-target", 100, -10),
		fund("ok", 10, 100),
	}

	result := analytics.RankFundProgress(funds)

	require.Len(t, result, 1)
	assert.Equal(t, "ok", result[0].FundID)
}

func TestRankFundProgress_ProgressStaysInRange(t *testing.T) {
	funds := []domain.SavingsFund{
		fund("empty", 0, 100),
		fund("tiny", 0.01, 1000),
		fund("done", 100, 100),
		fund("over", 9999, 1),
	}

	for _, p := range analytics.RankFundProgress(funds) {
		assert.GreaterOrEqual(t, p.Progress, 0.0)
		assert.LessOrEqual(t, p.Progress, 100.0)
	}
}

func TestRankFundProgress_CompletedAtExactTarget(t *testing.T) {
	result := analytics.RankFundProgress([]domain.SavingsFund{fund("exact", 100, 100)})

	require.Len(t, result, 1)
	assert.True(t, result[0].IsCompleted)
	assert.Equal(t, 100.0, result[0].Progress)
}
