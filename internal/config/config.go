package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	LogMode      string
	ServerPort   string
	ProcessorURL string

	// Per-session polling defaults; each call site passes them explicitly.
	PollInterval      time.Duration
	BatchPollInterval time.Duration
	PollMaxAttempts   int

	// Wall-clock ceiling for the bounded synchronous wait.
	SyncWaitBudget time.Duration

	MaxTrackedTasks  int
	ProcessorTimeout time.Duration
}

const (
	defaultPollIntervalMs      = 2000
	defaultBatchPollIntervalMs = 2500
	defaultPollMaxAttempts     = 150
	defaultSyncWaitSeconds     = 300
	defaultMaxTrackedTasks     = 100
	defaultProcessorTimeoutSec = 30
)

func checkEnv(envVars []string) error {
	var missingVars []string

	for _, envVar := range envVars {
		if value, exists := os.LookupEnv(envVar); !exists || value == "" {
			missingVars = append(missingVars, envVar)
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("error: this env vars are missing: %v", missingVars)
	}

	return nil
}

func validateEnv() error {
	err := checkEnv([]string{
		"LOG_MODE",
		"SERVER_PORT",
		"PROCESSOR_URL",
	})
	if err != nil {
		return err
	}

	return nil
}

func envInt(key string, fallback int) int {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}

	return value
}

func LoadConfig(envPath string) (*Config, error) {
	err := godotenv.Load(envPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration file: %w", err)
	}

	err = validateEnv()
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	return &Config{
		LogMode:           os.Getenv("LOG_MODE"),
		ServerPort:        os.Getenv("SERVER_PORT"),
		ProcessorURL:      os.Getenv("PROCESSOR_URL"),
		PollInterval:      time.Duration(envInt("POLL_INTERVAL_MS", defaultPollIntervalMs)) * time.Millisecond,
		BatchPollInterval: time.Duration(envInt("BATCH_POLL_INTERVAL_MS", defaultBatchPollIntervalMs)) * time.Millisecond,
		PollMaxAttempts:   envInt("POLL_MAX_ATTEMPTS", defaultPollMaxAttempts),
		SyncWaitBudget:    time.Duration(envInt("SYNC_WAIT_SECONDS", defaultSyncWaitSeconds)) * time.Second,
		MaxTrackedTasks:   envInt("MAX_TRACKED_TASKS", defaultMaxTrackedTasks),
		ProcessorTimeout:  time.Duration(envInt("PROCESSOR_TIMEOUT_SECONDS", defaultProcessorTimeoutSec)) * time.Second,
	}, nil
}
