package dto

import "github.com/docmarket/docmarket_backend/internal/core/domain"

// PurchaseResponse reports the outcome of a document purchase. When the
// buyer already owned the document no points move and AlreadyOwned is set.
type PurchaseResponse struct {
	DocumentID     string `json:"documentID"`
	PaidAmount     int64  `json:"paidAmount"`
	FeeAmount      int64  `json:"feeAmount"`
	MilestoneBonus int64  `json:"milestoneBonus,omitempty"`
	AlreadyOwned   bool   `json:"alreadyOwned"`
	Message        string `json:"message"`
}

// ApprovalResponse reports the outcome of a document approval.
type ApprovalResponse struct {
	DocumentID    string              `json:"documentID"`
	RewardAmount  int64               `json:"rewardAmount"`
	FundingSource domain.RewardSource `json:"fundingSource"`
	Message       string              `json:"message"`
}

// SystemStatsResponse is the system-wide ledger statistics view.
type SystemStatsResponse struct {
	TotalPointsCreated       int64  `json:"totalPointsCreated"`
	TotalFeesCollected       int64  `json:"totalFeesCollected"`
	TotalRewardsGiven        int64  `json:"totalRewardsGiven"`
	TotalPointsInCirculation int64  `json:"totalPointsInCirculation"`
	Users                    int64  `json:"users"`
	ApprovedDocuments        int64  `json:"approvedDocuments"`
	// DependencyRatio is the share of reward funding backed by fees rather
	// than minted supply, as a percentage with two decimals, e.g. "42.86".
	DependencyRatio string `json:"dependencyRatio"`
}
