package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allConfigKeys = []string{
	"CREDENTIALS_FILE",
	"STORAGE_BUCKET",
	"PROJECT_ID",
	"BOOTSTRAP_TOPIC",
	"PROBE_PATH",
	"PROBE_DOCUMENT",
	"STATUS_ROOT",
	"HEARTBEAT_PATH",
	"HEARTBEAT_INTERVAL",
}

// isolateConfigEnv unsets every variable Load reads for the duration of the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "secrets.json", cfg.CredentialsFile)
	assert.Empty(t, cfg.StorageBucket)
	assert.Empty(t, cfg.ProjectID)
	assert.Empty(t, cfg.Topic)
	assert.Equal(t, "/", cfg.ProbePath)
	assert.Empty(t, cfg.ProbeDocument)
	assert.Equal(t, "pedals", cfg.StatusRoot)
	assert.Equal(t, "pedals/pi-online", cfg.HeartbeatPath)
	assert.Equal(t, 2*time.Second, cfg.HeartbeatInterval)
}

func TestLoad_Overrides(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("CREDENTIALS_FILE", "/etc/adacad/sa.json")
	t.Setenv("STORAGE_BUCKET", "proj.appspot.com")
	t.Setenv("PROJECT_ID", "other-proj")
	t.Setenv("BOOTSTRAP_TOPIC", "bootstrapped")
	t.Setenv("PROBE_PATH", "pedals")
	t.Setenv("PROBE_DOCUMENT", "status/bootstrap")
	t.Setenv("STATUS_ROOT", "looms/7")
	t.Setenv("HEARTBEAT_PATH", "looms/7/online")
	t.Setenv("HEARTBEAT_INTERVAL", "5s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "/etc/adacad/sa.json", cfg.CredentialsFile)
	assert.Equal(t, "proj.appspot.com", cfg.StorageBucket)
	assert.Equal(t, "other-proj", cfg.ProjectID)
	assert.Equal(t, "bootstrapped", cfg.Topic)
	assert.Equal(t, "pedals", cfg.ProbePath)
	assert.Equal(t, "status/bootstrap", cfg.ProbeDocument)
	assert.Equal(t, "looms/7", cfg.StatusRoot)
	assert.Equal(t, "looms/7/online", cfg.HeartbeatPath)
	assert.Equal(t, 5*time.Second, cfg.HeartbeatInterval)
}

func TestLoad_InvalidHeartbeatInterval(t *testing.T) {
	for _, v := range []string{"soon", "", "-1s", "0s"} {
		t.Run(v, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv("HEARTBEAT_INTERVAL", v)

			_, err := Load()

			assert.Error(t, err)
		})
	}
}
