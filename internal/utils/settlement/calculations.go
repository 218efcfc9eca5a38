package settlement

import (
	"github.com/docmarket/docmarket_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Tunables of the marketplace economy. All amounts are integer points.
const (
	// feeRate is the platform's cut of every purchase.
	feeRatePercent = 10
	// MinPlatformFee is retained even when 10% of the price rounds to zero.
	MinPlatformFee int64 = 1
	// milestoneInterval is the read-count step at which an author bonus fires.
	milestoneInterval int64 = 100
	// bonusBase/bonusCap bound the milestone bonus.
	bonusBase int64 = 10
	bonusCap  int64 = 100
	// minApprovalReward/maxApprovalReward bound the moderation reward.
	minApprovalReward int64 = 10
	maxApprovalReward int64 = 100
)

// PlatformFee returns the fee retained by the platform for a purchase:
// 10% of the price, rounded down, but never below MinPlatformFee.
// This is used in both services and repositories so the split stays
// consistent wherever it is computed.
func PlatformFee(price int64) int64 {
	fee := decimal.NewFromInt(price).
		Mul(decimal.NewFromInt(feeRatePercent)).
		Div(decimal.NewFromInt(100)).
		Floor().
		IntPart()
	if fee < MinPlatformFee {
		return MinPlatformFee
	}
	return fee
}

// AuthorEarnings returns the author's share of a purchase price after the
// platform fee.
func AuthorEarnings(price int64) int64 {
	return price - PlatformFee(price)
}

// MilestoneDue reports whether a document's read counter has just crossed a
// bonus milestone.
func MilestoneDue(readCount int64) bool {
	return readCount > 0 && readCount%milestoneInterval == 0
}

// MilestoneBonus returns the author bonus for reaching the given read count:
// 10 plus one point per full hundred reads, capped at 100.
func MilestoneBonus(readCount int64) int64 {
	bonus := bonusBase + readCount/milestoneInterval
	if bonus > bonusCap {
		return bonusCap
	}
	return bonus
}

// ApprovalReward returns the moderation reward for approving a document and
// the source it must be funded from. The reward is a tenth of the collected
// fee pool, clamped to [10, 100]; when the clamped reward exceeds what the
// pool holds, it is minted instead of drawn from the pool.
func ApprovalReward(feesCollected int64) (int64, domain.RewardSource) {
	reward := feesCollected / 10
	if reward < minApprovalReward {
		reward = minApprovalReward
	}
	if reward > maxApprovalReward {
		reward = maxApprovalReward
	}
	if reward > feesCollected {
		return reward, domain.SourceMinted
	}
	return reward, domain.SourceFeePool
}

// DependencyRatio returns the percentage of reward funding that derives from
// fees rather than minted supply: fees / (created + fees) * 100. Returns 0
// when no points have entered either pool.
func DependencyRatio(pointsCreated, feesCollected int64) decimal.Decimal {
	denominator := pointsCreated + feesCollected
	if denominator <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(feesCollected).
		Div(decimal.NewFromInt(denominator)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
