package notify_test

import (
	"context"
	"testing"
	"time"

	"adacad/internal/notify"

	"cloud.google.com/go/pubsub/pstest"
	"github.com/go-faster/jx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func newTestClient(t *testing.T) (*pstest.Server, []option.ClientOption) {
	t.Helper()

	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })

	conn, err := grpc.Dial(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return srv, []option.ClientOption{option.WithGRPCConn(conn)}
}

func TestEvent_Encode(t *testing.T) {
	e := notify.Event{
		ProjectID:     "proj",
		DatabaseURL:   "https://proj.firebaseio.com",
		ClientEmail:   "sa@proj.iam.gserviceaccount.com",
		InitializedAt: time.Date(2024, 5, 1, 8, 5, 0, 0, time.UTC),
	}

	got := map[string]string{}
	err := jx.DecodeBytes(e.Encode()).Obj(func(d *jx.Decoder, key string) error {
		v, err := d.Str()
		got[key] = v
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"projectId":     "proj",
		"databaseURL":   "https://proj.firebaseio.com",
		"clientEmail":   "sa@proj.iam.gserviceaccount.com",
		"initializedAt": "2024-05-01T08:05:00Z",
	}, got)
}

func TestPublish_CreatesTopicAndPublishes(t *testing.T) {
	ctx := context.Background()
	srv, opts := newTestClient(t)

	client, err := notify.NewClient(ctx, "proj", opts...)
	require.NoError(t, err)
	defer client.Close()

	e := notify.Event{ProjectID: "proj", DatabaseURL: "https://proj.firebaseio.com", InitializedAt: time.Now()}
	id, err := notify.Publish(ctx, client, "bootstrapped", e)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	exists, err := client.Topic("bootstrapped").Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, e.Encode(), msgs[0].Data)
	assert.Equal(t, "bootstrap.initialized", msgs[0].Attributes["event"])
	assert.Equal(t, "proj", msgs[0].Attributes["project"])
}

func TestPublish_ExistingTopic(t *testing.T) {
	ctx := context.Background()
	srv, opts := newTestClient(t)

	client, err := notify.NewClient(ctx, "proj", opts...)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.CreateTopic(ctx, "bootstrapped")
	require.NoError(t, err)

	_, err = notify.Publish(ctx, client, "bootstrapped", notify.Event{ProjectID: "proj"})
	require.NoError(t, err)
	_, err = notify.Publish(ctx, client, "bootstrapped", notify.Event{ProjectID: "proj"})
	require.NoError(t, err)

	assert.Len(t, srv.Messages(), 2)
}

func TestPublish_ContextCancelled(t *testing.T) {
	_, opts := newTestClient(t)

	client, err := notify.NewClient(context.Background(), "proj", opts...)
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = notify.Publish(ctx, client, "bootstrapped", notify.Event{ProjectID: "proj"})
	assert.ErrorContains(t, err, "check topic exists")
}
