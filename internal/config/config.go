// Package config loads settings for the bootstrap tools from environment variables.
package config

import (
	"os"
	"time"

	"adacad/internal/credentials"

	"github.com/go-faster/errors"
)

const (
	defaultProbePath         = "/"
	defaultStatusRoot        = "pedals"
	defaultHeartbeatPath     = "pedals/pi-online"
	defaultHeartbeatInterval = 2 * time.Second
)

type Config struct {
	// CredentialsFile is the service account JSON, CREDENTIALS_FILE.
	CredentialsFile string
	// StorageBucket is passed to the app config when set, STORAGE_BUCKET.
	StorageBucket string
	// ProjectID overrides the record's project_id, PROJECT_ID.
	ProjectID string
	// Topic receives a bootstrap event when set, BOOTSTRAP_TOPIC.
	Topic string

	ProbePath     string
	ProbeDocument string

	// StatusRoot receives the default loom status on heartbeat start, STATUS_ROOT.
	StatusRoot string
	// HeartbeatPath is the online node, HEARTBEAT_PATH. It is read every
	// HeartbeatInterval, HEARTBEAT_INTERVAL.
	HeartbeatPath     string
	HeartbeatInterval time.Duration
}

// Load reads the configuration. Every variable is optional.
// HEARTBEAT_INTERVAL must parse as a positive duration when set.
func Load() (*Config, error) {
	cfg := &Config{
		CredentialsFile:   credentials.DefaultPath,
		StorageBucket:     os.Getenv("STORAGE_BUCKET"),
		ProjectID:         os.Getenv("PROJECT_ID"),
		Topic:             os.Getenv("BOOTSTRAP_TOPIC"),
		ProbePath:         defaultProbePath,
		ProbeDocument:     os.Getenv("PROBE_DOCUMENT"),
		StatusRoot:        defaultStatusRoot,
		HeartbeatPath:     defaultHeartbeatPath,
		HeartbeatInterval: defaultHeartbeatInterval,
	}

	if v := os.Getenv("CREDENTIALS_FILE"); v != "" {
		cfg.CredentialsFile = v
	}

	if v := os.Getenv("PROBE_PATH"); v != "" {
		cfg.ProbePath = v
	}

	if v := os.Getenv("STATUS_ROOT"); v != "" {
		cfg.StatusRoot = v
	}

	if v := os.Getenv("HEARTBEAT_PATH"); v != "" {
		cfg.HeartbeatPath = v
	}

	if v, ok := os.LookupEnv("HEARTBEAT_INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.Wrapf(err, "HEARTBEAT_INTERVAL has invalid duration %q", v)
		}
		if d <= 0 {
			return nil, errors.Errorf("HEARTBEAT_INTERVAL must be positive, got %s", d)
		}
		cfg.HeartbeatInterval = d
	}

	return cfg, nil
}
