package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/njitshpe/shpe-app-sub005/internal/api"
	db "github.com/njitshpe/shpe-app-sub005/internal/db"
	"github.com/njitshpe/shpe-app-sub005/internal/external/identity"
	"github.com/njitshpe/shpe-app-sub005/internal/external/rabbitmq"
	interf "github.com/njitshpe/shpe-app-sub005/internal/interfaces"
	services "github.com/njitshpe/shpe-app-sub005/internal/services"
	obs "github.com/njitshpe/shpe-app-sub005/observability/otel"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	port := os.Getenv("REWARDS_PORT")
	if port == "" {
		panic("env REWARDS_PORT is not set")
	}

	// tracing
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown := obs.InitTracer(context.Background())
		defer shutdown()
	}

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

	// cache is optional, the service degrades to direct reads
	var cache interf.CacheStorage
	redis, err := db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
	} else {
		cache = redis
	}

	// identity
	verifier, err := identity.NewJWTVerifier()
	if err != nil {
		panic(err)
	}

	// publish fanout is optional, the rule cache TTL still converges
	var publisher interf.RulePublisher
	rabbit, err := rabbitmq.NewRabbitPublisher()
	if err != nil {
		logger.Error(err.Error())
	} else {
		publisher = rabbit
		defer rabbit.Close()
	}

	serv := services.NewAwardService(logger, rules, store, store, cache, verifier)

	// api handlers
	handler := api.NewHandler(serv, rules, cache, publisher, logger, rules, store)
	root := http.NewServeMux()
	root.Handle("/metrics", promhttp.Handler())
	root.Handle("/", otelhttp.NewHandler(handler, "rewards-api"))

	srv := &http.Server{
		Handler:      root,
		Addr:         ":" + port,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	go srv.ListenAndServe()

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
