package services

import (
	"fmt"
	"math"

	model "github.com/njitshpe/shpe-app-sub005/internal/models"
)

// Pure rules interpreter. No I/O, no clock, no randomness - the same
// (document, payload) pair always produces the same result, so policy
// changes ship as data, not code.

// ComputePoints finds the first enabled rule for the action type and applies
// base points, additive multiplier bonuses and the cap, in that order.
// A missing rule is a zero-point result, not an error: the caller decides
// whether that is user-facing.
func ComputePoints(doc model.RuleDocument, payload model.ActionPayload) model.ComputeResult {
	rule, ok := findRule(doc, payload.ActionType)
	if !ok {
		return model.ComputeResult{
			Points:               0,
			Reasons:              []string{fmt.Sprintf("No active rule found for action: %s", payload.ActionType)},
			RankAffectingAllowed: true,
		}
	}

	points := rule.BasePoints
	reasons := []string{fmt.Sprintf("Base points for %s: %d", rule.ActionType, rule.BasePoints)}

	// bonuses are additive relative to base, they do not compound
	for _, cond := range rule.Multipliers {
		if !matchCondition(cond, payload.Metadata) {
			continue
		}
		bonus := int(math.Floor(float64(rule.BasePoints) * (cond.Multiplier - 1)))
		points += bonus
		reasons = append(reasons, fmt.Sprintf("Multiplier x%v (%s): +%d", cond.Multiplier, describeCondition(cond), bonus))
	}

	if rule.MaxPoints != nil && points > *rule.MaxPoints {
		points = *rule.MaxPoints
		reasons = append(reasons, fmt.Sprintf("Capped at max points: %d", *rule.MaxPoints))
	}

	allowed := true
	if rule.RequiresCommitteeForRank {
		allowed = payload.Metadata["committee_member"] == true
		if !allowed {
			reasons = append(reasons, "Rank progression blocked: committee membership required")
		}
	}

	return model.ComputeResult{Points: points, Reasons: reasons, RankAffectingAllowed: allowed}
}

// first enabled match in document order wins
func findRule(doc model.RuleDocument, actionType string) (model.RuleDefinition, bool) {
	for _, rule := range doc.Rules {
		if rule.ActionType == actionType && rule.IsEnabled() {
			return rule, true
		}
	}
	return model.RuleDefinition{}, false
}

// One condition against the metadata bag. Numeric operators require both
// sides to already be numbers, there is no coercion.
func matchCondition(cond model.MultiplierCondition, metadata map[string]any) bool {
	field, present := metadata[cond.Field]
	switch cond.Operator {
	case model.OpExists:
		return present && field != nil
	case model.OpEq:
		if !present {
			return false
		}
		return equalValues(cond.Value, field)
	case model.OpGt, model.OpGte, model.OpLt, model.OpLte:
		if !present {
			return false
		}
		f, fok := toFloat64(field)
		c, cok := toFloat64(cond.Value)
		if !fok || !cok {
			return false
		}
		switch cond.Operator {
		case model.OpGt:
			return f > c
		case model.OpGte:
			return f >= c
		case model.OpLt:
			return f < c
		default:
			return f <= c
		}
	}
	return false
}

func describeCondition(cond model.MultiplierCondition) string {
	if cond.Operator == model.OpExists {
		return fmt.Sprintf("%s exists", cond.Field)
	}
	return fmt.Sprintf("%s %s %v", cond.Field, cond.Operator, cond.Value)
}

// numbers compare as numbers regardless of the decoded width,
// everything else compares by typed equality
func equalValues(cond any, field any) bool {
	cf, cok := toFloat64(cond)
	ff, fok := toFloat64(field)
	if cok && fok {
		return cf == ff
	}
	switch c := cond.(type) {
	case string:
		f, ok := field.(string)
		return ok && c == f
	case bool:
		f, ok := field.(bool)
		return ok && c == f
	case nil:
		return field == nil
	}
	return false
}

// JSON decodes numbers to float64, bson to int32/int64
func toFloat64(a any) (float64, bool) {
	switch val := a.(type) {
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case float32:
		return float64(val), true
	case float64:
		return val, true
	}
	return 0, false
}

type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ValidatePayload runs before any rule lookup or storage access
func ValidatePayload(payload model.ActionPayload) ValidationResult {
	var errs []string
	if payload.ActionType == "" {
		errs = append(errs, "actionType is required")
	}
	if payload.UserID == "" {
		errs = append(errs, "userId is required")
	}
	if payload.ActionType == model.ActionCommitteeSetup {
		if _, ok := payload.Metadata["committee_member"]; !ok {
			errs = append(errs, "committee_setup requires metadata.committee_member")
		}
	}
	switch payload.ActionType {
	case model.ActionAttendance, model.ActionEarlyCheckin, model.ActionRSVP, model.ActionFeedback:
		if payload.EventRef() == "" {
			errs = append(errs, fmt.Sprintf("%s requires an event id", payload.ActionType))
		}
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
