package notify

import (
	"context"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"google.golang.org/api/option"
)

// Event announces that a Firebase app was initialized.
type Event struct {
	ProjectID     string
	DatabaseURL   string
	ClientEmail   string
	InitializedAt time.Time
}

func (e Event) Encode() []byte {
	var enc jx.Encoder
	enc.ObjStart()
	enc.FieldStart("projectId")
	enc.Str(e.ProjectID)
	enc.FieldStart("databaseURL")
	enc.Str(e.DatabaseURL)
	enc.FieldStart("clientEmail")
	enc.Str(e.ClientEmail)
	enc.FieldStart("initializedAt")
	enc.Str(e.InitializedAt.UTC().Format(time.RFC3339))
	enc.ObjEnd()
	return enc.Bytes()
}

func NewClient(ctx context.Context, projectID string, opts ...option.ClientOption) (*pubsub.Client, error) {
	return pubsub.NewClient(ctx, projectID, opts...)
}

// Publish sends e to topicID, creating the topic if needed, and returns the
// server-assigned message id.
func Publish(ctx context.Context, client *pubsub.Client, topicID string, e Event) (string, error) {
	topic, err := getOrCreateTopic(ctx, client, topicID)
	if err != nil {
		return "", err
	}
	defer topic.Stop()

	res := topic.Publish(ctx, &pubsub.Message{
		Data: e.Encode(),
		Attributes: map[string]string{
			"event":   "bootstrap.initialized",
			"project": e.ProjectID,
		},
	})

	id, err := res.Get(ctx)
	if err != nil {
		return "", errors.Wrapf(err, "publish to topic %q", topicID)
	}
	return id, nil
}

// getOrCreateTopic gets a topic or creates it if it doesn't exist.
func getOrCreateTopic(ctx context.Context, client *pubsub.Client, topicID string) (*pubsub.Topic, error) {
	topic := client.Topic(topicID)
	ok, err := topic.Exists(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "check topic exists")
	}
	if !ok {
		topic, err = client.CreateTopic(ctx, topicID)
		if err != nil {
			return nil, errors.Wrapf(err, "create topic %q", topicID)
		}
	}
	return topic, nil
}
