package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	model "github.com/njitshpe/shpe-app-sub005/internal/models"
	redis "github.com/redis/go-redis/v9"
)

const activeRulesKey = "rules:active"

// Rule documents get a short TTL so a publish converges even without the
// invalidation fanout; balances are invalidated on every award.
const (
	rulesTTL   = 1 * time.Minute
	balanceTTL = 5 * time.Minute
)

type CacheService struct {
	client *redis.Client
}

func NewCacheService() (serv *CacheService, err error) {
	// config
	addr := os.Getenv("REWARDS_CACHE_URL")
	if addr == "" {
		return nil, fmt.Errorf("env REWARDS_CACHE_URL is not set")
	}
	user := os.Getenv("REWARDS_CACHE_USER")
	pwd := os.Getenv("REWARDS_CACHE_PWD")

	// redis
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    pwd,
		Username:    user,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = client.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}

	return &CacheService{client}, nil
}

func (c *CacheService) GetRuleDocument(ctx context.Context) (model.RuleDocument, error) {
	val, err := c.client.Get(ctx, activeRulesKey).Result()
	if err == redis.Nil {
		return model.RuleDocument{}, fmt.Errorf("rule document cache %w", model.ErrNotFound)
	} else if err != nil {
		return model.RuleDocument{}, err
	}

	var doc model.RuleDocument
	err = json.Unmarshal([]byte(val), &doc)
	if err != nil {
		return model.RuleDocument{}, err
	}
	return doc, nil
}

func (c *CacheService) SetRuleDocument(ctx context.Context, doc model.RuleDocument) error {
	val, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, activeRulesKey, val, rulesTTL).Err()
}

func (c *CacheService) InvalidateRuleDocument(ctx context.Context) error {
	return c.client.Del(ctx, activeRulesKey).Err()
}

func (c *CacheService) GetBalance(ctx context.Context, userID string) (model.Profile, error) {
	val, err := c.client.Get(ctx, balanceKey(userID)).Result()
	if err == redis.Nil {
		return model.Profile{}, fmt.Errorf("balance cache %w", model.ErrNotFound)
	} else if err != nil {
		return model.Profile{}, err
	}

	var profile model.Profile
	err = json.Unmarshal([]byte(val), &profile)
	if err != nil {
		return model.Profile{}, err
	}
	return profile, nil
}

func (c *CacheService) SetBalance(ctx context.Context, userID string, profile model.Profile) error {
	val, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, balanceKey(userID), val, balanceTTL).Err()
}

func (c *CacheService) InvalidateBalance(ctx context.Context, userID string) error {
	return c.client.Del(ctx, balanceKey(userID)).Err()
}

func balanceKey(userID string) string {
	return "balance:" + userID
}
