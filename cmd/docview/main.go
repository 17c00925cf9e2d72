// Command docview serves document metadata, content and layout regions over HTTP.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"

	"github.com/rise-and-shine/docview/cfgloader"
	"github.com/rise-and-shine/docview/filestore/miniowr"
	"github.com/rise-and-shine/docview/http/server"
	"github.com/rise-and-shine/docview/http/server/middleware"
	"github.com/rise-and-shine/docview/internal/files"
	"github.com/rise-and-shine/docview/internal/parsercfg"
	"github.com/rise-and-shine/docview/meta"
	"github.com/rise-and-shine/docview/observability/logger"
	"github.com/rise-and-shine/docview/observability/tracing"
	"github.com/rise-and-shine/docview/pg"
	"github.com/rise-and-shine/docview/token"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := cfgloader.MustLoad[Config]()

	logger.SetGlobal(cfg.Logger)
	meta.SetServiceInfo(cfg.Service.Name, cfg.Service.Version)
	meta.SetLanguageMap(translations(), cfg.Service.DefaultLang)

	if err := run(cfg); err != nil {
		logger.Fatalx(err)
	}
}

func run(cfg Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := tracing.InitGlobalTracer(cfg.Tracing)
	if err != nil {
		return errx.Wrap(err)
	}
	defer func() { _ = shutdownTracer() }()

	db, err := pg.NewBunDB(cfg.Postgres)
	if err != nil {
		return errx.Wrap(err)
	}
	defer db.Close()

	blobs, err := miniowr.New(cfg.Minio)
	if err != nil {
		return errx.Wrap(err)
	}

	tokens, err := token.NewJWTMaker(cfg.Auth.Secret, cfg.Auth.Issuer)
	if err != nil {
		return errx.Wrap(err)
	}

	deps := files.Deps{
		Config:  cfg.Files,
		Store:   files.NewPgStore(db, cfg.Service.DBSchema),
		Blobs:   blobs,
		Sidecar: files.NewSidecarResolver(cfg.Sidecar.SidecarConfig, parsercfg.New(cfg.Sidecar.Parser), blobs),
	}

	log := logger.Named("http")
	srv := server.NewHTTPServer(cfg.HTTP, middleware.Stack(log, cfg.HTTP))

	api := files.NewAPI(deps, cfg.HTTP.HideErrorDetails)
	srv.RegisterRouter(func(r fiber.Router) {
		files.RegisterHealth(r)
		api.Register(r, middleware.NewAuthMW(tokens).Handler)
	})

	errCh := make(chan error, 1)
	go func() {
		logger.With("address", cfg.HTTP.Address()).Info("http server started")
		errCh <- srv.Start()
	}()

	select {
	case err = <-errCh:
		return errx.Wrap(err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = srv.Stop(shutdownCtx)
	_ = logger.Sync()
	return errx.Wrap(err)
}
