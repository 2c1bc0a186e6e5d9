package analytics

import (
	"sort"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FundProgress is the display shape of one savings goal's progress bar.
type FundProgress struct {
	FundID        string          `json:"fundID"`
	Name          string          `json:"name"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	Progress      float64         `json:"progress"` // Percentage in [0, 100]
	IsCompleted   bool            `json:"isCompleted"`
}

// RankFundProgress computes progress ratios for savings funds and ranks them
// descending by progress for display. Funds with a non-positive target are
// silently excluded; no progress can be defined for them.
func RankFundProgress(funds []domain.SavingsFund) []FundProgress {
	result := make([]FundProgress, 0, len(funds))
	for _, fund := range funds {
		if !fund.TargetAmount.IsPositive() {
			continue
		}
		ratio := fund.CurrentAmount.Div(fund.TargetAmount).Mul(hundred)
		progress, _ := ratio.Float64()
		if progress > 100 {
			progress = 100
		}
		result = append(result, FundProgress{
			FundID:        fund.FundID,
			Name:          fund.Name,
			CurrentAmount: fund.CurrentAmount,
			TargetAmount:  fund.TargetAmount,
			Progress:      progress,
			IsCompleted:   fund.CurrentAmount.GreaterThanOrEqual(fund.TargetAmount),
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Progress > result[j].Progress
	})
	return result
}
