package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"adacad/internal/bootstrap"
	"adacad/internal/config"
	"adacad/internal/heartbeat"
	"adacad/internal/logger"

	"github.com/joho/godotenv"
)

var log = logger.New("main")

func main() {
	_ = godotenv.Load()

	if err := Bootstrap(); err != nil {
		log.Fatal().Err(err).Msg("heartbeat error")
	}
}

func Bootstrap() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	h, err := bootstrap.New(cfg).Initialize(ctx)
	if err != nil {
		return err
	}

	if err := heartbeat.Reset(ctx, h.Database().NewRef(cfg.StatusRoot)); err != nil {
		return err
	}

	hb := heartbeat.New(h.Database().NewRef(cfg.HeartbeatPath), cfg.HeartbeatInterval)

	errs := make(chan error, 1)
	go func() {
		errs <- hb.Run(ctx)
	}()
	log.Info().Str("path", cfg.HeartbeatPath).Msg("heartbeat started")

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errs:
		return err
	case <-exit:
		log.Info().Msg("signing off")
		cancel()
		return <-errs
	}
}
