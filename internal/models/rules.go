package models

// Action types recognized by the rule set
const (
	ActionAttendance     = "attendance"
	ActionFeedback       = "feedback"
	ActionPhotoUpload    = "photo_upload"
	ActionRSVP           = "rsvp"
	ActionEarlyCheckin   = "early_checkin"
	ActionCommitteeSetup = "committee_setup"
	ActionVerified       = "verified"
	ActionCollegeYear    = "college_year"
)

// Versioned rule document, immutable once published.
// Exactly one document is active at a time, the store enforces it on publish.
type RuleDocument struct {
	Version string           `bson:"version" json:"version"`
	Active  bool             `bson:"active" json:"active"`
	Rules   []RuleDefinition `bson:"rules" json:"rules"`
}

type RuleDefinition struct {
	ActionType               string                `bson:"action_type" json:"action_type"`
	BasePoints               int                   `bson:"base_points" json:"base_points"`
	Multipliers              []MultiplierCondition `bson:"multipliers,omitempty" json:"multipliers,omitempty"`
	RequiresCommitteeForRank bool                  `bson:"requires_committee_for_rank,omitempty" json:"requires_committee_for_rank,omitempty"`
	MaxPoints                *int                  `bson:"max_points,omitempty" json:"max_points,omitempty"`
	Enabled                  *bool                 `bson:"enabled,omitempty" json:"enabled,omitempty"` // nil = enabled
}

// absent flag means enabled
func (r RuleDefinition) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// Condition operators
const (
	OpEq     = "eq"
	OpGt     = "gt"
	OpGte    = "gte"
	OpLt     = "lt"
	OpLte    = "lte"
	OpExists = "exists"
)

// One bonus condition, evaluated against the action metadata.
// A match adds floor(base_points * (multiplier - 1)) on top of the base.
type MultiplierCondition struct {
	Field      string  `bson:"field" json:"field"`
	Operator   string  `bson:"operator" json:"operator"`
	Value      any     `bson:"value,omitempty" json:"value,omitempty"` // absent for exists
	Multiplier float64 `bson:"multiplier" json:"multiplier"`
}

// Unit of work submitted for scoring, consumed once by the engine
type ActionPayload struct {
	ActionType string         `json:"actionType"`
	UserID     string         `json:"userId"`
	EventID    string         `json:"eventId,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// event id comes either top-level or in the metadata bag
func (p ActionPayload) EventRef() string {
	if p.EventID != "" {
		return p.EventID
	}
	if v, ok := p.Metadata["event_id"].(string); ok {
		return v
	}
	return ""
}

// Engine output. Reasons is the audit trail of every rule, bonus and cap
// applied, in evaluation order.
type ComputeResult struct {
	Points               int      `json:"points"`
	Reasons              []string `json:"reasons"`
	RankAffectingAllowed bool     `json:"rankAffectingAllowed"`
}
