// Job - award actions submitted by trusted internal producers.
// Polls Kafka -> runs each payload through the award orchestrator.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	db "github.com/njitshpe/shpe-app-sub005/internal/db"
	kafka "github.com/njitshpe/shpe-app-sub005/internal/external/kafka"
	interf "github.com/njitshpe/shpe-app-sub005/internal/interfaces"
	model "github.com/njitshpe/shpe-app-sub005/internal/models"
	services "github.com/njitshpe/shpe-app-sub005/internal/services"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// kafka
	reader, err := kafka.GetNewReader("actions")
	if err != nil {
		panic(err)
	}
	defer reader.CloseReader()

	// rule documents
	rules, err := db.NewRulesDB()
	if err != nil {
		panic(err)
	}

	// awards, audit, profiles
	store, err := db.NewRewardsDB(logger)
	if err != nil {
		panic(err)
	}

	// cache
	var cache interf.CacheStorage
	redis, err := db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
	} else {
		cache = redis
	}

	// kafka payloads carry an explicit userId, no token verification here
	serv := services.NewAwardService(logger, rules, store, store, cache, nil)

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var semcount int
	semenv := os.Getenv("REWARDS_ACTIONS_COUNT")
	if semenv == "" {
		semcount = 5
	} else {
		semcount, err = strconv.Atoi(semenv)
		if err != nil {
			semcount = 5
		}
	}
	if semcount == 0 {
		semcount = 1
	}

	wg := &sync.WaitGroup{}
	semaphore := make(chan struct{}, semcount)

loop:
	for {
		select {
		case <-interrupt:
			cancel()
			break loop
		case <-ctx.Done():
			break loop
		default:

			action, err := reader.GetNewMessage(ctx)
			if err != nil {
				logger.Error(err.Error())
				return
			}

			semaphore <- struct{}{}
			wg.Add(1)
			go func(action string) {
				defer wg.Done()
				defer func() { <-semaphore }()

				payload := model.ActionPayload{}
				if err := json.Unmarshal([]byte(action), &payload); err != nil {
					logger.Error("action unmarshal", zap.Error(err), zap.String("body", action))
					return
				}
				_, err := serv.Award(ctx, payload, "")
				if err != nil {
					// duplicates are expected on redelivery, not worth an error
					var aerr *model.AwardError
					if errors.As(err, &aerr) && aerr.Code == model.CodeAlreadyRewarded {
						logger.Info("already rewarded",
							zap.String("user", payload.UserID),
							zap.String("action", payload.ActionType))
						return
					}
					logger.Error(err.Error())
					return
				}
			}(action)
		}
	}
	wg.Wait()
}
