// Package credentialstest builds service account files for tests.
package credentialstest

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/require"
)

const DatabaseURL = "https://proj.firebaseio.com"

var privateKey = sync.OnceValues(func() (string, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return "", err
	}
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return "", err
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})), nil
})

// Fields returns the string fields of a well-formed credentials file.
func Fields(t *testing.T) map[string]string {
	t.Helper()

	key, err := privateKey()
	require.NoError(t, err)

	return map[string]string{
		"apiKey":         "AIzaSyTest",
		"databaseURL":    DatabaseURL,
		"type":           "service_account",
		"project_id":     "proj",
		"private_key_id": "0123456789abcdef",
		"private_key":    key,
		"client_email":   "firebase-adminsdk@proj.iam.gserviceaccount.com",
		"client_id":      "1234567890",
		"token_uri":      "https://oauth2.googleapis.com/token",
	}
}

// Encode renders fields as a JSON object with sorted keys.
func Encode(fields map[string]string) []byte {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var e jx.Encoder
	e.SetIdent(2)
	e.ObjStart()
	for _, k := range keys {
		e.FieldStart(k)
		e.Str(fields[k])
	}
	e.ObjEnd()
	return e.Bytes()
}

// WriteFile writes b to a file in a temp dir and returns its path.
func WriteFile(t *testing.T, b []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "secrets.json")
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}
