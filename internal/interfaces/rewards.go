package interfaces

import (
	"context"
	"time"

	model "github.com/njitshpe/shpe-app-sub005/internal/models"
)

//go:generate mockgen -destination=./../services/mock_rewards_test.go -package=services . RuleStorage,AwardStorage,EventStorage,CacheStorage,TokenVerifier,RulePublisher

type RuleStorage interface {
	GetActiveDocument(ctx context.Context) (model.RuleDocument, error)
	GetDocument(ctx context.Context, version string) (model.RuleDocument, error)
	GetAllDocuments(ctx context.Context) ([]model.RuleDocument, error)
	PublishDocument(ctx context.Context, doc model.RuleDocument) error
}

type AwardStorage interface {
	AwardExists(ctx context.Context, userID string, eventID string, reason string) (bool, error)
	AwardCreate(ctx context.Context, tnx model.AwardTransaction) (model.AwardTransaction, error)
	AuditCreate(ctx context.Context, rec model.AuditRecord) error
	GetAwards(ctx context.Context, userID string, from time.Time, to time.Time) ([]model.AwardTransaction, error)
	GetProfile(ctx context.Context, userID string) (model.Profile, error)
	ProfileApplyDelta(ctx context.Context, userID string, delta int, rankAffecting bool) (model.Profile, error)
}

// External collaborators, read-only existence checks
type EventStorage interface {
	EventExists(ctx context.Context, eventID string) (bool, error)
	HasCheckin(ctx context.Context, userID string, eventID string) (bool, error)
}

type CacheStorage interface {
	GetRuleDocument(ctx context.Context) (model.RuleDocument, error)
	SetRuleDocument(ctx context.Context, doc model.RuleDocument) error
	InvalidateRuleDocument(ctx context.Context) error
	GetBalance(ctx context.Context, userID string) (model.Profile, error)
	SetBalance(ctx context.Context, userID string, profile model.Profile) error
	InvalidateBalance(ctx context.Context, userID string) error
}

// Bearer credential -> user id
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (userID string, err error)
}

// Fanout after a new document goes live, so instances drop the cached one
type RulePublisher interface {
	Published(ctx context.Context, version string) error
}
