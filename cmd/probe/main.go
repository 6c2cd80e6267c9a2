package main

import (
	"context"
	"fmt"

	"adacad/internal/bootstrap"
	"adacad/internal/config"
	"adacad/internal/logger"
	"adacad/internal/probe"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

var log = logger.New("main")

func main() {
	_ = godotenv.Load()

	if err := Bootstrap(); err != nil {
		log.Fatal().Err(err).Msg("probe error")
	}
}

func Bootstrap() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	h, err := bootstrap.New(cfg).Initialize(ctx)
	if err != nil {
		return err
	}
	fmt.Println(h)

	results := []probe.Result{probe.RealtimeDatabase(ctx, h.Database(), cfg.ProbePath)}

	if cfg.ProbeDocument != "" {
		firestore, err := h.Firestore(ctx)
		if err != nil {
			return err
		}
		defer firestore.Close()

		results = append(results, probe.Firestore(ctx, firestore, cfg.ProbeDocument))
	}

	if cfg.StorageBucket != "" {
		storage, err := h.Storage(ctx)
		if err != nil {
			return err
		}
		defer storage.Close()

		bucket, err := h.DefaultBucket(storage)
		if err != nil {
			return err
		}
		results = append(results, probe.Bucket(ctx, bucket))
	}

	failed := 0
	for _, r := range results {
		fmt.Println(r)
		if !r.OK {
			failed++
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d probes failed", failed, len(results))
	}
	return nil
}
