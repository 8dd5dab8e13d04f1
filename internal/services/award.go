package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	interf "github.com/njitshpe/shpe-app-sub005/internal/interfaces"
	model "github.com/njitshpe/shpe-app-sub005/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AwardService turns one action into a validated, idempotent, audited
// state transition. Each attempt is linear, failures are terminal - callers
// retry the whole request and the duplicate guard keeps that safe.
type AwardService struct {
	logger   *zap.Logger
	rules    interf.RuleStorage
	store    interf.AwardStorage
	events   interf.EventStorage
	cache    interf.CacheStorage
	identity interf.TokenVerifier
}

func NewAwardService(logger *zap.Logger, rules interf.RuleStorage, store interf.AwardStorage,
	events interf.EventStorage, cache interf.CacheStorage, identity interf.TokenVerifier) *AwardService {
	return &AwardService{logger, rules, store, events, cache, identity}
}

type AwardResult struct {
	Transaction model.AwardTransaction
	NewBalance  int
	Rank        model.Rank
	Reasons     []string
}

// Award: authenticate -> validate -> duplicate check -> preconditions ->
// load rules -> compute -> persist -> update profile.
// Writes happen in fixed order: award insert, audit insert (best-effort),
// profile update.
func (s *AwardService) Award(ctx context.Context, payload model.ActionPayload, token string) (AwardResult, error) {
	// authenticate: explicit userId from a trusted caller, else bearer token
	if payload.UserID == "" {
		if token == "" {
			return AwardResult{}, model.NewAwardError(model.CodeUnauthorized, "userId or bearer token is required")
		}
		userID, err := s.identity.Verify(ctx, token)
		if err != nil {
			return AwardResult{}, model.WrapAwardError(model.CodeUnauthorized, "invalid token", err)
		}
		payload.UserID = userID
	}

	// validate before any storage access
	if v := ValidatePayload(payload); !v.Valid {
		return AwardResult{}, model.NewAwardError(model.CodeInvalidActionType, strings.Join(v.Errors, "; "))
	}

	// duplicate early-exit; the unique index on the ledger is the real guard,
	// this check only produces the nicer error before hitting it
	eventID := payload.EventRef()
	if eventID != "" {
		exists, err := s.store.AwardExists(ctx, payload.UserID, eventID, payload.ActionType)
		if err != nil {
			return AwardResult{}, model.WrapAwardError(model.CodeDatabaseError, "duplicate check failed", err)
		}
		if exists {
			return AwardResult{}, model.NewAwardError(model.CodeAlreadyRewarded,
				fmt.Sprintf("user already rewarded for %s at event %s", payload.ActionType, eventID))
		}
	}

	if err := s.checkPreconditions(ctx, payload, eventID); err != nil {
		return AwardResult{}, err
	}

	// rules and profile are independent reads
	var doc model.RuleDocument
	var profile model.Profile
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		doc, err = s.loadRules(gctx)
		return err
	})
	g.Go(func() (err error) {
		profile, err = s.store.GetProfile(gctx, payload.UserID)
		if err != nil {
			return model.WrapAwardError(model.CodeDatabaseError, "profile load failed", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return AwardResult{}, err
	}

	// compute; zero points means no enabled rule matched
	result := ComputePoints(doc, payload)
	if result.Points == 0 {
		return AwardResult{}, model.NewAwardError(model.CodeInvalidActionType, strings.Join(result.Reasons, "; "))
	}

	tnx, err := s.store.AwardCreate(ctx, model.AwardTransaction{
		UserID:   payload.UserID,
		EventID:  eventID,
		Amount:   result.Points,
		Reason:   payload.ActionType,
		Metadata: payload.Metadata,
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			// lost the race to a concurrent identical request
			return AwardResult{}, model.WrapAwardError(model.CodeAlreadyRewarded,
				fmt.Sprintf("user already rewarded for %s at event %s", payload.ActionType, eventID), err)
		}
		return AwardResult{}, model.WrapAwardError(model.CodeDatabaseError, "award insert failed", err)
	}

	// audit is best-effort, the reward outranks the audit trail
	s.audit(ctx, payload, profile, result)

	updated, err := s.store.ProfileApplyDelta(ctx, payload.UserID, result.Points, result.RankAffectingAllowed)
	if err != nil {
		// the award record already exists; balance converges on recompute
		return AwardResult{}, model.WrapAwardError(model.CodeDatabaseError, "profile update failed", err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateBalance(ctx, payload.UserID); err != nil {
			s.logger.Error("balance cache invalidation", zap.String("user", payload.UserID), zap.Error(err))
		}
	}

	return AwardResult{
		Transaction: tnx,
		NewBalance:  updated.RankPoints,
		Rank:        updated.Rank,
		Reasons:     result.Reasons,
	}, nil
}

// Action-specific invariants against external state, checked concurrently
func (s *AwardService) checkPreconditions(ctx context.Context, payload model.ActionPayload, eventID string) error {
	if eventID == "" {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		exists, err := s.events.EventExists(gctx, eventID)
		if err != nil {
			return model.WrapAwardError(model.CodeDatabaseError, "event lookup failed", err)
		}
		if !exists {
			return model.NewAwardError(model.CodeInvalidEvent, fmt.Sprintf("event not found: %s", eventID))
		}
		return nil
	})
	if payload.ActionType == model.ActionPhotoUpload {
		g.Go(func() error {
			checked, err := s.events.HasCheckin(gctx, payload.UserID, eventID)
			if err != nil {
				return model.WrapAwardError(model.CodeDatabaseError, "check-in lookup failed", err)
			}
			if !checked {
				return model.NewAwardError(model.CodePreconditionFailed,
					fmt.Sprintf("photo_upload requires a prior check-in for event %s", eventID))
			}
			return nil
		})
	}
	return g.Wait()
}

// active document through the short-TTL cache
func (s *AwardService) loadRules(ctx context.Context) (model.RuleDocument, error) {
	if s.cache != nil {
		if doc, err := s.cache.GetRuleDocument(ctx); err == nil {
			return doc, nil
		}
	}
	doc, err := s.rules.GetActiveDocument(ctx)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.RuleDocument{}, model.WrapAwardError(model.CodeRulesNotFound, "no active rule document", err)
		}
		return model.RuleDocument{}, model.WrapAwardError(model.CodeDatabaseError, "rule document load failed", err)
	}
	if s.cache != nil {
		if err := s.cache.SetRuleDocument(ctx, doc); err != nil {
			s.logger.Error("rule cache set", zap.Error(err))
		}
	}
	return doc, nil
}

func (s *AwardService) audit(ctx context.Context, payload model.ActionPayload, before model.Profile, result model.ComputeResult) {
	newPoints := before.RankPoints + result.Points
	if newPoints > model.MaxRankPoints {
		newPoints = model.MaxRankPoints
	}
	newRank := before.Rank
	if result.RankAffectingAllowed {
		newRank = model.CalculateRank(newPoints)
	}
	meta := map[string]any{"reasons": result.Reasons}
	for k, v := range payload.Metadata {
		meta[k] = v
	}
	err := s.store.AuditCreate(ctx, model.AuditRecord{
		UserID:         payload.UserID,
		ActionType:     payload.ActionType,
		PointsDelta:    result.Points,
		PreviousPoints: before.RankPoints,
		NewPoints:      newPoints,
		PreviousRank:   before.Rank,
		NewRank:        newRank,
		RankChanged:    result.RankAffectingAllowed && newRank != before.Rank,
		Metadata:       meta,
	})
	if err != nil {
		s.logger.Error("audit insert", zap.String("user", payload.UserID), zap.Error(err))
	}
}

// Balance with read-through cache
func (s *AwardService) GetBalance(ctx context.Context, userID string) (model.Profile, error) {
	if s.cache != nil {
		profile, err := s.cache.GetBalance(ctx, userID)
		if err == nil {
			return profile, nil
		}
	}
	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return model.Profile{}, err
	}
	if s.cache != nil {
		_ = s.cache.SetBalance(ctx, userID, profile)
	}
	return profile, nil
}

// Award history for a user in a date range
func (s *AwardService) GetAwards(ctx context.Context, userID string, from, to string) ([]model.AwardTransaction, error) {
	fromTime, err := parseDay(from, " 00:00:00")
	if err != nil {
		return nil, err
	}
	toTime, err := parseDay(to, " 23:59:59")
	if err != nil {
		return nil, err
	}
	return s.store.GetAwards(ctx, userID, fromTime, toTime)
}

func parseDay(day string, suffix string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04:05", day+suffix)
}

func (s *AwardService) Log(err error) {
	s.logger.Error(err.Error())
}
