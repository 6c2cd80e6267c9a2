// Package heartbeat keeps a device marked online in the Realtime Database.
// Other devices check the device by writing false to its online node; a
// running device answers by writing true back.
package heartbeat

import (
	"context"
	"time"

	"adacad/internal/logger"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog"
)

const signOffTimeout = 5 * time.Second

// Node reads and writes the value of a Realtime Database node. *db.Ref implements it.
type Node interface {
	Get(ctx context.Context, v interface{}) error
	Set(ctx context.Context, v interface{}) error
}

// Updater writes several children of a node at once. *db.Ref implements it.
type Updater interface {
	Update(ctx context.Context, v map[string]interface{}) error
}

// Defaults is the loom status a device publishes when it starts.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"loom-online":  false,
		"vacuum-on":    false,
		"num-pedals":   0,
		"pedal-states": false,
		"loom-ready":   false,
	}
}

// Reset writes Defaults under root in a single update.
func Reset(ctx context.Context, root Updater) error {
	if err := root.Update(ctx, Defaults()); err != nil {
		return errors.Wrap(err, "write default status")
	}
	return nil
}

type Heartbeat struct {
	node     Node
	interval time.Duration
	log      zerolog.Logger
}

// New returns a Heartbeat that reads node every interval.
func New(node Node, interval time.Duration) *Heartbeat {
	return &Heartbeat{
		node:     node,
		interval: interval,
		log:      logger.New("heartbeat"),
	}
}

// Run sets the node to true, then writes true back whenever it reads
// anything else. Once ctx is done it sets the node to false. Only the first
// write is fatal.
func (h *Heartbeat) Run(ctx context.Context) error {
	if err := h.node.Set(ctx, true); err != nil {
		return errors.Wrap(err, "mark online")
	}
	h.log.Info().Dur("interval", h.interval).Msg("online")

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return h.signOff(ctx)
		case <-ticker.C:
			h.answer(ctx)
		}
	}
}

func (h *Heartbeat) answer(ctx context.Context) {
	var v interface{}
	if err := h.node.Get(ctx, &v); err != nil {
		if ctx.Err() == nil {
			h.log.Warn().Err(err).Msg("read status failed")
		}
		return
	}
	if v == true {
		return
	}

	h.log.Debug().Interface("value", v).Msg("status checked")
	if err := h.node.Set(ctx, true); err != nil {
		if ctx.Err() == nil {
			h.log.Warn().Err(err).Msg("keepalive failed")
		}
		return
	}
	h.log.Debug().Msg("stayin' alive")
}

func (h *Heartbeat) signOff(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), signOffTimeout)
	defer cancel()

	if err := h.node.Set(ctx, false); err != nil {
		return errors.Wrap(err, "mark offline")
	}
	h.log.Info().Msg("offline")
	return nil
}
