package models

import (
	"time"

	"github.com/google/uuid"
)

// Rank tiers
type Rank string

const (
	RankUnranked Rank = "unranked"
	RankBronze   Rank = "bronze"
	RankSilver   Rank = "silver"
	RankGold     Rank = "gold"
)

// Rank points saturate here, they never roll over
const MaxRankPoints = 100

// Tier thresholds: unranked 0-24, bronze 25-49, silver 50-74, gold 75+.
// Single definition shared by the engine and the profile update path.
func CalculateRank(points int) Rank {
	switch {
	case points >= 75:
		return RankGold
	case points >= 50:
		return RankSilver
	case points >= 25:
		return RankBronze
	default:
		return RankUnranked
	}
}

// Award transaction, append-only.
// At most one record per (profile, event, reason) when the event is set -
// the unique index in postgres is the idempotency guard.
type AwardTransaction struct {
	UUID      uuid.UUID      `json:"id"`
	UserID    string         `json:"userId"`
	EventID   string         `json:"eventId,omitempty"`
	Amount    int            `json:"amount"`
	Reason    string         `json:"reason"` // = action type
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Audit record, append-only, best-effort
type AuditRecord struct {
	UserID         string         `json:"userId"`
	ActionType     string         `json:"actionType"`
	PointsDelta    int            `json:"pointsDelta"`
	PreviousPoints int            `json:"previousPoints"`
	NewPoints      int            `json:"newPoints"`
	PreviousRank   Rank           `json:"previousRank"`
	NewRank        Rank           `json:"newRank"`
	RankChanged    bool           `json:"rankChanged"`
	Metadata       map[string]any `json:"metadata,omitempty"` // snapshot incl. engine reasons
	CreatedAt      time.Time      `json:"createdAt"`
}

// Denormalized rank state, mutated only by the orchestrator
type Profile struct {
	UserID     string `json:"userId"`
	RankPoints int    `json:"rankPoints"`
	Rank       Rank   `json:"rank"`
}
