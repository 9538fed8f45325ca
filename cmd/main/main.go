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
	"github.com/michael0127/starplan-matcher/internal/app/delivery"
	"github.com/michael0127/starplan-matcher/internal/app/repository"
	"github.com/michael0127/starplan-matcher/internal/app/usecase"
	"github.com/michael0127/starplan-matcher/internal/config"
	"github.com/michael0127/starplan-matcher/internal/middleware"
	"github.com/michael0127/starplan-matcher/internal/processor"
	"github.com/michael0127/starplan-matcher/internal/utils/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("error initializing config: %v\n", err)
		os.Exit(1)
	}

	err = logger.Init(cfg.LogMode)
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("configuration loaded successfully")
	logger.Debug("debug mode enabled",
		zap.String("log_mode", cfg.LogMode),
		zap.String("processor_url", cfg.ProcessorURL),
		zap.Int("max_tracked_tasks", cfg.MaxTrackedTasks),
	)

	processorClient := processor.CreateClient(cfg.ProcessorURL, cfg.ProcessorTimeout)
	taskRegistry := repository.CreateTaskRegistry(cfg.MaxTrackedTasks)
	taskUsecase := usecase.CreateTaskUsecase(processorClient, taskRegistry, usecase.TrackingConfig{
		PollInterval:      cfg.PollInterval,
		BatchPollInterval: cfg.BatchPollInterval,
		PollMaxAttempts:   cfg.PollMaxAttempts,
		SyncWaitBudget:    cfg.SyncWaitBudget,
	})
	taskDelivery := delivery.CreateTaskDelivery(taskUsecase)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	apiRouter := router.PathPrefix("/api/v1").Subrouter()

	rankingRouter := apiRouter.PathPrefix("/rankings").Subrouter()
	rankingRouter.HandleFunc("", taskDelivery.SubmitRanking).Methods("POST")
	rankingRouter.HandleFunc("/bulk", taskDelivery.SubmitRankingBulk).Methods("POST")
	rankingRouter.HandleFunc("/sync", taskDelivery.SubmitRankingSync).Methods("POST")

	apiRouter.HandleFunc("/uploads", taskDelivery.SubmitUpload).Methods("POST")

	taskRouter := apiRouter.PathPrefix("/tasks").Subrouter()
	taskRouter.HandleFunc("", taskDelivery.GetAllTasks).Methods("GET")
	taskRouter.HandleFunc("/{id}/status", taskDelivery.GetTaskStatus).Methods("GET")
	taskRouter.HandleFunc("/{id}/batch", taskDelivery.GetBatchStatus).Methods("GET")
	taskRouter.HandleFunc("/{id}", taskDelivery.CancelTask).Methods("DELETE")

	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.PanicMiddleware)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	serverErr := make(chan error, 1)

	go func() {
		logger.Info("starting HTTP server",
			zap.String("address", server.Addr),
			zap.Any("config", cfg),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("failed to start server", zap.Error(err))
		os.Exit(1)
	case sig := <-quit:
		logger.Info("server is shutting down",
			zap.String("signal", sig.String()),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", zap.Error(err))
			os.Exit(1)
		}

		logger.Info("server stopped")
	}
}
