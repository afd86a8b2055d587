package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/taxpadi/tax-service/internal/config"
	"github.com/taxpadi/tax-service/internal/handler"
	"github.com/taxpadi/tax-service/internal/integrations/llm"
	"github.com/taxpadi/tax-service/internal/middleware"
	"github.com/taxpadi/tax-service/internal/repository"
	"github.com/taxpadi/tax-service/internal/service"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize result store. The store is advisory: an unreachable
	// Redis degrades retrieval, it does not prevent startup.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warnf("Result store is unreachable at startup: %v", err)
	}
	cancelPing()

	store := repository.NewResultStore(rdb, cfg.ResultTTL)

	// Initialize chat client if a provider is configured
	var chatClient llm.Client
	if cfg.LLMAPIKey != "" {
		chatClient, err = llm.NewClient(llm.Config{
			Provider: cfg.LLMProvider,
			APIKey:   cfg.LLMAPIKey,
			Model:    cfg.LLMModel,
			BaseURL:  cfg.LLMBaseURL,
		})
		if err != nil {
			logger.Fatalf("Failed to initialize LLM client: %v", err)
		}
	} else {
		logger.Warn("LLM_API_KEY not set, chat endpoint disabled")
	}

	// Initialize layers
	svc := service.NewService(store, chatClient, logger)
	monitor := service.NewHealthMonitor(store, logger)
	if err := monitor.Start(); err != nil {
		logger.Fatalf("Failed to start health monitor: %v", err)
	}
	defer monitor.Stop()
	h := handler.NewHandler(svc, monitor, logger)

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders)
	r.HandleFunc("/health", h.Health).Methods("GET")

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.Use(middleware.NewRateLimiter(cfg.ChatRatePerMinute).Limit)
	chatRouter.HandleFunc("", h.Chat).Methods("POST")

	taxRouter := r.PathPrefix("/api/tax").Subrouter()
	taxRouter.Use(middleware.NewRateLimiter(cfg.RatePerMinute).Limit)
	taxRouter.HandleFunc("/calculate", h.Calculate).Methods("POST")
	taxRouter.HandleFunc("/calculations/{id}", h.GetCalculation).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 45 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Shutdown failed: %v", err)
	}
}
