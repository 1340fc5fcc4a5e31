// Package app wires configuration, infrastructure and handlers into a running service.
package app

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/rose/config"
	"github.com/Ramsey-B/rose/internal/repositories/chatstrategy"
	"github.com/Ramsey-B/rose/internal/repositories/loveanalysis"
	"github.com/Ramsey-B/rose/internal/repositories/replyoptions"
	"github.com/Ramsey-B/rose/internal/repositories/snippet"
	targetrepo "github.com/Ramsey-B/rose/internal/repositories/target"
	coachingservice "github.com/Ramsey-B/rose/internal/services/coaching"
	targetservice "github.com/Ramsey-B/rose/internal/services/target"
	"github.com/Ramsey-B/rose/pkg/completion"
	"github.com/Ramsey-B/rose/pkg/database"
	"github.com/Ramsey-B/rose/pkg/events"
	"github.com/Ramsey-B/rose/pkg/health"
	"github.com/Ramsey-B/rose/pkg/httpclient"
	coachingroutes "github.com/Ramsey-B/rose/pkg/routes/coaching"
	targetroutes "github.com/Ramsey-B/rose/pkg/routes/target"
	"github.com/Ramsey-B/rose/pkg/startup"
	"github.com/Ramsey-B/rose/pkg/tracing"
	"github.com/Ramsey-B/rose/pkg/tracing/exporters"
	"github.com/labstack/echo/v4"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	depTracing    = "tracing"
	depDatabase   = "database"
	depMigrations = "migrations"
	depEvents     = "events"
	depServer     = "server"
)

type App struct {
	cfg     *config.Config
	logger  ectologger.Logger
	startup *startup.Startup
	checker *health.Checker

	provider  *sdktrace.TracerProvider
	db        database.DB
	publisher events.Publisher
	server    *echo.Echo
	serverErr chan error
}

func New(cfg *config.Config, logger ectologger.Logger) *App {
	a := &App{
		cfg:       cfg,
		logger:    logger,
		startup:   startup.NewStartup(logger, cfg.StartupMaxAttempts),
		checker:   health.NewChecker(cfg.Version),
		serverErr: make(chan error, 1),
	}
	return a
}

// Migrate connects to the database, applies pending migrations and disconnects.
func (a *App) Migrate(ctx context.Context) error {
	a.startup.AddDependency(a.databaseDependency())
	a.startup.AddDependency(a.migrationsDependency())

	if err := a.startup.Start(ctx); err != nil {
		return err
	}
	return a.startup.Stop(ctx)
}

// Run starts every dependency and blocks until ctx is cancelled or the server fails.
func (a *App) Run(ctx context.Context) error {
	a.startup.AddDependency(a.tracingDependency())
	a.startup.AddDependency(a.databaseDependency())
	a.startup.AddDependency(a.migrationsDependency())
	a.startup.AddDependency(a.eventsDependency())
	a.startup.AddDependency(a.serverDependency())

	if err := a.startup.Start(ctx); err != nil {
		a.logger.WithError(err).Error("Failed to start")
		stopCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout())
		defer cancel()
		return errors.Join(err, a.startup.Stop(stopCtx))
	}

	a.checker.SetReady(true)
	a.logger.Infof("%s listening on port %d", a.cfg.AppName, a.cfg.Port)

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down")
	case runErr = <-a.serverErr:
		a.logger.WithError(runErr).Error("Server stopped unexpectedly")
	}

	a.checker.SetReady(false)

	stopCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout())
	defer cancel()

	return errors.Join(runErr, a.startup.Stop(stopCtx))
}

func (a *App) shutdownTimeout() time.Duration {
	return time.Duration(a.cfg.ShutdownTimeoutSeconds) * time.Second
}

func (a *App) tracingDependency() startup.Dependency {
	return &startup.Func{
		Name: depTracing,
		StartFunc: func(ctx context.Context) error {
			provider, err := tracing.NewProvider(ctx, tracing.ProviderConfig{
				ServiceName:    a.cfg.AppName,
				ServiceVersion: a.cfg.Version,
				OTLPEnabled:    a.cfg.OTLPEnabled,
				OTLP: exporters.OTLPConfig{
					Endpoint: a.cfg.OTLPEndpoint,
					Protocol: a.cfg.OTLPProtocol,
					Insecure: a.cfg.OTLPInsecure,
				},
			}, a.logger)
			if err != nil {
				return err
			}
			a.provider = provider
			return nil
		},
		StopFunc: func(ctx context.Context) error {
			if a.provider == nil {
				return nil
			}
			return a.provider.Shutdown(ctx)
		},
	}
}

func (a *App) databaseDependency() startup.Dependency {
	return &startup.Func{
		Name: depDatabase,
		StartFunc: func(ctx context.Context) error {
			db, err := database.Connect(ctx, database.ConnectionConfig{
				Driver:          a.cfg.DatabaseDriver,
				Host:            a.cfg.DatabaseHost,
				Port:            a.cfg.DatabasePort,
				User:            a.cfg.DatabaseUserName,
				Password:        a.cfg.DatabasePassword,
				Name:            a.cfg.DatabaseName,
				SSLMode:         a.cfg.DatabaseSSLMode,
				MaxOpenConns:    a.cfg.DatabaseMaxOpenConns,
				MaxIdleConns:    a.cfg.DatabaseMaxIdleConns,
				ConnMaxLifetime: a.cfg.DatabaseConnMaxLifetime,
			}, a.logger)
			if err != nil {
				return err
			}
			a.db = db
			a.checker.AddProbe(depDatabase, db.PingContext)
			return nil
		},
		StopFunc: func(ctx context.Context) error {
			if a.db == nil {
				return nil
			}
			return a.db.Close()
		},
	}
}

func (a *App) migrationsDependency() startup.Dependency {
	return &startup.Func{
		Name:     depMigrations,
		Requires: []string{depDatabase},
		StartFunc: func(ctx context.Context) error {
			svc := database.NewMigrationService(a.logger, &database.MigrationConfig{
				MigrationFolderPath: a.cfg.DatabaseMigrationFolderPath,
				Version:             uint(a.cfg.DatabaseMigrationVersion),
				Force:               a.cfg.DatabaseMigrationForce,
				AutoRollback:        a.cfg.DatabaseMigrationAutoRollback,
			})
			return svc.Migrate(a.cfg.DatabaseName, a.db)
		},
	}
}

func (a *App) eventsDependency() startup.Dependency {
	return &startup.Func{
		Name: depEvents,
		StartFunc: func(ctx context.Context) error {
			if !a.cfg.KafkaEnabled {
				a.publisher = events.NoopPublisher{}
				return nil
			}
			writer, err := events.NewKafkaWriter(events.KafkaConfig{
				Brokers:      a.cfg.KafkaBrokers,
				Topic:        a.cfg.KafkaEventsTopic,
				BatchSize:    a.cfg.KafkaBatchSize,
				BatchTimeout: time.Duration(a.cfg.KafkaBatchTimeout) * time.Millisecond,
				RequiredAcks: a.cfg.KafkaRequiredAcks,
				Compression:  a.cfg.KafkaCompression,
			})
			if err != nil {
				return err
			}
			a.publisher = events.NewKafkaPublisher(writer, a.cfg.KafkaEventsTopic, a.logger)
			a.logger.WithField("topic", a.cfg.KafkaEventsTopic).Info("Publishing coaching events to Kafka")
			return nil
		},
		StopFunc: func(ctx context.Context) error {
			if a.publisher == nil {
				return nil
			}
			return a.publisher.Close()
		},
	}
}

func (a *App) serverDependency() startup.Dependency {
	return &startup.Func{
		Name:     depServer,
		Requires: []string{depTracing, depDatabase, depMigrations, depEvents},
		StartFunc: func(ctx context.Context) error {
			a.server = NewServer(a.cfg, a.logger, a.handlers()...)

			go func() {
				if err := a.server.Start(":" + strconv.Itoa(a.cfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
					a.serverErr <- err
				}
			}()
			return nil
		},
		StopFunc: func(ctx context.Context) error {
			if a.server == nil {
				return nil
			}
			return a.server.Shutdown(ctx)
		},
	}
}

// handlers builds repositories, services and route handlers on top of the started dependencies.
func (a *App) handlers() []RouteRegistrar {
	emitter := events.NewEmitter(a.publisher, a.logger)

	targets := targetrepo.NewRepository(a.db, a.logger)

	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = a.cfg.CompletionHTTPTimeout
	completer := completion.NewClient(completion.Config{
		APIKey:     a.cfg.OpenAIAPIKey,
		Model:      a.cfg.OpenAIModel,
		BaseURL:    a.cfg.OpenAIBaseURL,
		Store:      a.cfg.CompletionStore,
		HTTPClient: httpclient.NewClient(httpCfg, a.logger),
	}, a.logger)

	coaching := coachingservice.NewService(coachingservice.Repositories{
		Targets:        targets,
		Snippets:       snippet.NewRepository(a.db, a.logger),
		LoveAnalyses:   loveanalysis.NewRepository(a.db, a.logger),
		ChatStrategies: chatstrategy.NewRepository(a.db, a.logger),
		ReplyOptions:   replyoptions.NewRepository(a.db, a.logger),
	}, completer, emitter, coachingservice.Config{
		ScopeLatestToTarget: a.cfg.ScopeLatestToTarget,
		ClientGender:        a.cfg.CoachClientGender,
	}, a.logger)

	return []RouteRegistrar{
		a.checker,
		targetroutes.NewHandler(targetservice.NewService(targets, emitter, a.logger)),
		coachingroutes.NewHandler(coaching),
	}
}
