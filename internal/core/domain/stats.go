package domain

// RewardSource names where an approval reward was funded from.
type RewardSource string

const (
	// SourceFeePool means the reward was paid out of collected platform fees.
	SourceFeePool RewardSource = "fee-pool"
	// SourceMinted means the reward was newly created supply because the fee
	// pool could not cover it.
	SourceMinted RewardSource = "system-minted"
)

// SystemStats is the singleton aggregate of system-wide ledger counters.
// It is created once at first boot and mutated only by settlement
// operations.
type SystemStats struct {
	// TotalPointsCreated is the total supply ever minted by the system,
	// not backed by a fee or user payment.
	TotalPointsCreated int64 `json:"totalPointsCreated"`
	// TotalFeesCollected is the platform fee pool currently available to
	// fund moderation rewards.
	TotalFeesCollected int64 `json:"totalFeesCollected"`
	// TotalRewardsGiven is the cumulative rewards paid out of the fee pool.
	TotalRewardsGiven int64 `json:"totalRewardsGiven"`
}

// PurchaseReceipt summarises one settled document purchase.
type PurchaseReceipt struct {
	DocumentID     string `json:"documentID"`
	PaidAmount     int64  `json:"paidAmount"`
	FeeAmount      int64  `json:"feeAmount"`
	AuthorEarnings int64  `json:"authorEarnings"`
	MilestoneBonus int64  `json:"milestoneBonus"` // 0 unless a milestone fired
	ReadCount      int64  `json:"readCount"`
	AlreadyOwned   bool   `json:"alreadyOwned"`
}

// ApprovalReceipt summarises one settled document approval.
type ApprovalReceipt struct {
	DocumentID   string       `json:"documentID"`
	RewardAmount int64        `json:"rewardAmount"`
	Source       RewardSource `json:"source"`
}
