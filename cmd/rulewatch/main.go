// Job - rule cache invalidation.
// A publish notification from the admin API drops the cached active
// document, so every instance converges before the TTL would expire.
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	db "github.com/njitshpe/shpe-app-sub005/internal/db"
	rabbit "github.com/njitshpe/shpe-app-sub005/internal/external/rabbitmq"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// rabbitmq
	reader, err := rabbit.NewRabbitConsumer()
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer reader.Close()

	// cache
	cache, err := db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// os signals
	go func() {
		<-interrupt
		cancel()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-reader.Msg:
			if !ok {
				return
			}
			published := rabbit.RulesPublished{}
			if err := json.Unmarshal(msg.Body, &published); err != nil {
				logger.Error("notification unmarshal", zap.Error(err))
				continue
			}
			if err := cache.InvalidateRuleDocument(ctx); err != nil {
				logger.Error("invalidate rule cache", zap.Error(err))
				continue
			}
			logger.Info("rule cache invalidated", zap.String("version", published.Version))
		}
	}
}
