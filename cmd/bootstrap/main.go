package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"adacad/internal/bootstrap"
	"adacad/internal/config"
	"adacad/internal/logger"
	"adacad/internal/notify"

	"github.com/joho/godotenv"
)

var log = logger.New("main")

func main() {
	_ = godotenv.Load()

	if err := Bootstrap(); err != nil {
		log.Fatal().Err(err).Msg("bootstrap error")
	}
}

func Bootstrap() error {
	return run(context.Background(), os.Stdout)
}

// run prints the credentials record and then the app handle to out.
func run(ctx context.Context, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	h, err := bootstrap.New(cfg).Initialize(ctx)
	if err != nil {
		return err
	}

	record, err := h.Record.MarshalJSON()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(record))
	fmt.Fprintln(out, h)

	if cfg.Topic == "" {
		return nil
	}
	return publish(ctx, cfg.Topic, h)
}

func publish(ctx context.Context, topicID string, h *bootstrap.Handle) error {
	client, err := notify.NewClient(ctx, h.ProjectID(), h.ClientOptions()...)
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := notify.Publish(ctx, client, topicID, notify.Event{
		ProjectID:     h.ProjectID(),
		DatabaseURL:   h.DatabaseURL(),
		ClientEmail:   h.Certificate.ClientEmail,
		InitializedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	log.Info().Str("topic", topicID).Str("message", id).Msg("bootstrap event published")
	return nil
}
