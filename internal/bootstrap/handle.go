package bootstrap

import (
	"context"
	"fmt"

	"adacad/internal/credentials"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"github.com/go-faster/errors"
	"google.golang.org/api/option"
)

// Handle is an initialized Firebase app together with what it was built from.
type Handle struct {
	App         *firebase.App
	Record      credentials.Record
	Certificate *credentials.Certificate
	// Config is the exact config passed to firebase.NewApp.
	Config firebase.Config

	database *db.Client
}

func (h *Handle) ProjectID() string { return h.Config.ProjectID }

func (h *Handle) DatabaseURL() string { return h.Config.DatabaseURL }

// Database returns the Realtime Database client created during initialization.
func (h *Handle) Database() *db.Client { return h.database }

func (h *Handle) Firestore(ctx context.Context) (*firestore.Client, error) {
	return h.App.Firestore(ctx)
}

// Storage returns a Cloud Storage client authenticated as the app's service
// account. The caller closes it.
func (h *Handle) Storage(ctx context.Context) (*gcs.Client, error) {
	return gcs.NewClient(ctx, h.ClientOptions()...)
}

// DefaultBucket returns the configured storage bucket on client.
func (h *Handle) DefaultBucket(client *gcs.Client) (*gcs.BucketHandle, error) {
	if h.Config.StorageBucket == "" {
		return nil, errors.New("storage bucket not configured")
	}
	return client.Bucket(h.Config.StorageBucket), nil
}

// ClientOptions authenticates other Google clients as the same service account.
func (h *Handle) ClientOptions() []option.ClientOption {
	return []option.ClientOption{h.Certificate.ClientOption()}
}

func (h *Handle) String() string {
	return fmt.Sprintf("firebase app (project %q, database %q, service account %q)",
		h.Config.ProjectID, h.Config.DatabaseURL, h.Certificate.ClientEmail)
}
