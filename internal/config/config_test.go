package config

import (
	"os"
	"testing"
	"time"
)

func TestCheckEnv(t *testing.T) {
	tests := []struct {
		name      string
		envVars   []string
		setup     func()
		teardown  func()
		wantError bool
	}{
		{
			name:    "AllVariablesPresent",
			envVars: []string{"TEST_VAR_1", "TEST_VAR_2"},
			setup: func() {
				os.Setenv("TEST_VAR_1", "value1")
				os.Setenv("TEST_VAR_2", "value2")
			},
			teardown: func() {
				os.Unsetenv("TEST_VAR_1")
				os.Unsetenv("TEST_VAR_2")
			},
			wantError: false,
		},
		{
			name:    "OneVariableMissing",
			envVars: []string{"TEST_VAR_1", "TEST_VAR_2"},
			setup: func() {
				os.Setenv("TEST_VAR_1", "value1")
			},
			teardown: func() {
				os.Unsetenv("TEST_VAR_1")
			},
			wantError: true,
		},
		{
			name:    "VariablePresentButEmpty",
			envVars: []string{"TEST_VAR_1"},
			setup: func() {
				os.Setenv("TEST_VAR_1", "")
			},
			teardown: func() {
				os.Unsetenv("TEST_VAR_1")
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			defer func() {
				if tt.teardown != nil {
					tt.teardown()
				}
			}()

			err := checkEnv(tt.envVars)
			if (err != nil) != tt.wantError {
				t.Errorf("checkEnv() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidateEnv(t *testing.T) {
	tests := []struct {
		name      string
		setup     func()
		teardown  func()
		wantError bool
	}{
		{
			name: "AllRequiredVariablesPresent",
			setup: func() {
				os.Setenv("LOG_MODE", "debug")
				os.Setenv("SERVER_PORT", "8080")
				os.Setenv("PROCESSOR_URL", "http://localhost:9000")
			},
			teardown: func() {
				os.Unsetenv("LOG_MODE")
				os.Unsetenv("SERVER_PORT")
				os.Unsetenv("PROCESSOR_URL")
			},
			wantError: false,
		},
		{
			name: "MissingProcessorURL",
			setup: func() {
				os.Setenv("LOG_MODE", "debug")
				os.Setenv("SERVER_PORT", "8080")
			},
			teardown: func() {
				os.Unsetenv("LOG_MODE")
				os.Unsetenv("SERVER_PORT")
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			defer func() {
				if tt.teardown != nil {
					tt.teardown()
				}
			}()

			err := validateEnv()
			if (err != nil) != tt.wantError {
				t.Errorf("validateEnv() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		fallback int
		want     int
	}{
		{
			name:     "ValidNumber",
			value:    "42",
			set:      true,
			fallback: 10,
			want:     42,
		},
		{
			name:     "InvalidNumber",
			value:    "not_a_number",
			set:      true,
			fallback: 10,
			want:     10,
		},
		{
			name:     "NegativeNumber",
			value:    "-5",
			set:      true,
			fallback: 10,
			want:     10,
		},
		{
			name:     "Unset",
			set:      false,
			fallback: 10,
			want:     10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const key = "TEST_ENV_INT"
			if tt.set {
				os.Setenv(key, tt.value)
				defer os.Unsetenv(key)
			}

			got := envInt(key, tt.fallback)
			if got != tt.want {
				t.Errorf("envInt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	const testEnvContent = `LOG_MODE=debug
SERVER_PORT=8080
PROCESSOR_URL=http://localhost:9000
POLL_INTERVAL_MS=1500
POLL_MAX_ATTEMPTS=30
`

	envFile, err := os.CreateTemp("", ".env")
	if err != nil {
		t.Fatalf("Failed to create temp .env file: %v", err)
	}
	defer os.Remove(envFile.Name())

	if _, err := envFile.WriteString(testEnvContent); err != nil {
		t.Fatalf("Failed to write to temp .env file: %v", err)
	}
	if err := envFile.Close(); err != nil {
		t.Fatalf("Failed to close temp .env file: %v", err)
	}

	defer func() {
		for _, key := range []string{"LOG_MODE", "SERVER_PORT", "PROCESSOR_URL", "POLL_INTERVAL_MS", "POLL_MAX_ATTEMPTS"} {
			os.Unsetenv(key)
		}
	}()

	tests := []struct {
		name      string
		envFile   string
		want      *Config
		wantError bool
	}{
		{
			name:    "successful config load",
			envFile: envFile.Name(),
			want: &Config{
				LogMode:           "debug",
				ServerPort:        "8080",
				ProcessorURL:      "http://localhost:9000",
				PollInterval:      1500 * time.Millisecond,
				BatchPollInterval: 2500 * time.Millisecond,
				PollMaxAttempts:   30,
				SyncWaitBudget:    300 * time.Second,
				MaxTrackedTasks:   100,
				ProcessorTimeout:  30 * time.Second,
			},
			wantError: false,
		},
		{
			name:      "missing env file",
			envFile:   "nonexistent_file",
			want:      nil,
			wantError: true,
		},
		{
			name:      "empty env file path",
			envFile:   "",
			want:      nil,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadConfig(tt.envFile)
			if (err != nil) != tt.wantError {
				t.Errorf("LoadConfig() error = %v, wantError %v", err, tt.wantError)
				return
			}

			if !tt.wantError {
				if *got != *tt.want {
					t.Errorf("LoadConfig() = %+v, want %+v", got, tt.want)
				}
			}
		})
	}
}
