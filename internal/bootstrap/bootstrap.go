// Package bootstrap turns a local credentials file into an initialized
// Firebase app. The app is created at most once per Bootstrapper and handed
// to callers as a Handle.
package bootstrap

import (
	"context"
	"sync"

	"adacad/internal/config"
	"adacad/internal/credentials"
	"adacad/internal/logger"

	firebase "firebase.google.com/go/v4"
	"github.com/go-faster/errors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "adacad/internal/bootstrap"

type Bootstrapper struct {
	path          string
	projectID     string
	storageBucket string

	log             zerolog.Logger
	tracer          trace.Tracer
	initializations metric.Int64Counter

	once   sync.Once
	handle *Handle
	err    error
}

func New(cfg *config.Config) *Bootstrapper {
	b := &Bootstrapper{
		path:          cfg.CredentialsFile,
		projectID:     cfg.ProjectID,
		storageBucket: cfg.StorageBucket,
		log:           logger.New("bootstrap"),
		tracer:        otel.Tracer(instrumentationName),
	}

	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"bootstrap.initializations",
		metric.WithDescription("Firebase app initializations by outcome"),
	)
	if err != nil {
		b.log.Warn().Err(err).Msg("initialization counter disabled")
		counter = noop.Int64Counter{}
	}
	b.initializations = counter

	return b
}

// Initialize loads the credentials file and initializes the Firebase app.
// Only the first call does any work; later calls return the same result.
func (b *Bootstrapper) Initialize(ctx context.Context) (*Handle, error) {
	b.once.Do(func() {
		b.handle, b.err = b.initialize(ctx)
	})
	return b.handle, b.err
}

func (b *Bootstrapper) initialize(ctx context.Context) (h *Handle, err error) {
	ctx, span := b.tracer.Start(ctx, "bootstrap.Initialize",
		trace.WithAttributes(attribute.String("credentials.path", b.path)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		b.initializations.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome(err))))
		span.End()
	}()

	rec, err := credentials.Load(b.path)
	if err != nil {
		return nil, err
	}
	if redacted, err := rec.Redacted().MarshalJSON(); err == nil {
		b.log.Debug().RawJSON("record", redacted).Str("path", b.path).Msg("credentials loaded")
	}

	cert, err := credentials.NewCertificate(rec)
	if err != nil {
		return nil, errors.Wrap(err, b.path)
	}

	databaseURL, err := rec.RequireDatabaseURL()
	if err != nil {
		return nil, errors.Wrap(err, b.path)
	}

	conf := firebase.Config{
		DatabaseURL:   databaseURL,
		ProjectID:     cert.ProjectID,
		StorageBucket: b.storageBucket,
	}
	if b.projectID != "" {
		conf.ProjectID = b.projectID
	}

	app, err := firebase.NewApp(ctx, &conf, cert.ClientOption())
	if err != nil {
		return nil, credentials.Invalid("initialize app", err)
	}

	// The SDK only checks the database URL when the client is built.
	database, err := app.Database(ctx)
	if err != nil {
		return nil, credentials.Invalid("database client", err)
	}

	span.SetAttributes(
		attribute.String("firebase.project_id", conf.ProjectID),
		attribute.String("firebase.database_url", conf.DatabaseURL),
	)
	b.log.Info().
		Str("project", conf.ProjectID).
		Str("database", conf.DatabaseURL).
		Msg("firebase app initialized")

	return &Handle{
		App:         app,
		Record:      rec,
		Certificate: cert,
		Config:      conf,
		database:    database,
	}, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, credentials.ErrNotFound):
		return "not_found"
	case errors.Is(err, credentials.ErrParse):
		return "parse_error"
	case errors.Is(err, credentials.ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "error"
	}
}
