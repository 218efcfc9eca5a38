package domain

import "time"

// DemandType classifies what a demand is asking for.
type DemandType string

const (
	DemandService DemandType = "service"
	DemandParts   DemandType = "parts"
)

// DemandStatus indicates whether a demand is still open.
type DemandStatus string

const (
	DemandActive    DemandStatus = "active"
	DemandCompleted DemandStatus = "completed"
)

// MinDemandPoints is the lowest points offer a demand may carry.
const MinDemandPoints int64 = 10

// DefaultDemandPoints is applied when a submitted points offer cannot be parsed.
const DefaultDemandPoints int64 = 100

// Demand is a want-ad for a service or part, settled off-platform. It has no
// ledger impact.
type Demand struct {
	DemandID       string       `json:"demandID"` // Primary Key (UUID)
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Type           DemandType   `json:"type"`
	PointsRequired int64        `json:"pointsRequired"`
	Status         DemandStatus `json:"status"`
	ContactInfo    string       `json:"contactInfo"`
	UserID         string       `json:"userID"` // FK -> User.userID
	CreatedAt      time.Time    `json:"createdAt"`
}
