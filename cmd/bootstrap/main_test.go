package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"adacad/internal/credentials"
	"adacad/internal/credentials/credentialstest"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T, path string) {
	t.Helper()
	t.Setenv("CREDENTIALS_FILE", path)
	t.Setenv("BOOTSTRAP_TOPIC", "")
	t.Setenv("PROJECT_ID", "")
	t.Setenv("STORAGE_BUCKET", "")
	t.Setenv("HEARTBEAT_INTERVAL", "2s")
	t.Setenv("FIREBASE_DATABASE_EMULATOR_HOST", "")
}

func wantOutput(t *testing.T, path string) string {
	t.Helper()

	rec, err := credentials.Load(path)
	require.NoError(t, err)
	record, err := rec.MarshalJSON()
	require.NoError(t, err)

	return string(record) + "\n" +
		`firebase app (project "proj", database "https://proj.firebaseio.com", ` +
		`service account "firebase-adminsdk@proj.iam.gserviceaccount.com")` + "\n"
}

func TestRun_PrintsRecordThenHandle(t *testing.T) {
	path := credentialstest.WriteFile(t, credentialstest.Encode(credentialstest.Fields(t)))
	setupEnv(t, path)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out))

	assert.Equal(t, wantOutput(t, path), out.String())
}

func TestRun_MissingFilePrintsNothing(t *testing.T) {
	setupEnv(t, filepath.Join(t.TempDir(), "secrets.json"))

	var out bytes.Buffer
	err := run(context.Background(), &out)

	assert.True(t, errors.Is(err, credentials.ErrNotFound), "got %v", err)
	assert.Empty(t, out.String())
}

func TestBootstrap_WritesToStdout(t *testing.T) {
	path := credentialstest.WriteFile(t, credentialstest.Encode(credentialstest.Fields(t)))
	setupEnv(t, path)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = stdout })

	err = Bootstrap()
	require.NoError(t, w.Close())
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(got), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, wantOutput(t, path), string(got))
	assert.True(t, strings.HasPrefix(lines[0], "{"))
	assert.True(t, strings.HasPrefix(lines[1], "firebase app"))
}
