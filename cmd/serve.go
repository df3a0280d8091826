package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"AgenciaContable/internal/handlers"
	"AgenciaContable/internal/mailer"
	"AgenciaContable/internal/seed"
	"AgenciaContable/internal/sessions"
	"AgenciaContable/internal/storage"
	"AgenciaContable/internal/uicopy"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP-сервер",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Заполнить пустую базу начальным контентом",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()
			return seed.Run(ctx, store, uicopy.NewStore(store.DB(), a.logger), a.seedOptions(), a.logger)
		},
	}
}

func (a *app) seedOptions() seed.Options {
	return seed.Options{
		SuperAdminUsername: a.cfg.SuperAdminUsername,
		SuperAdminPassword: a.cfg.SuperAdminPassword,
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg, logger := a.cfg, a.logger
	if cfg.UsesInsecureSecret() {
		logger.Warn("session secret is the built-in default; set SESSION_SECRET in production")
	}

	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	overlay := uicopy.NewStore(store.DB(), logger)
	if err := seed.Run(ctx, store, overlay, a.seedOptions(), logger); err != nil {
		return err
	}

	// удалённое хранилище проверяем сразу: лучше не стартовать, чем падать на первой загрузке
	uploads, err := storage.NewRouter(ctx, cfg, logger)
	if err != nil {
		logger.Error("upload storage unavailable", "err", err)
		return err
	}
	defer uploads.Close()

	mail := mailer.New(cfg, logger)
	if !mail.Configured() {
		logger.Info("smtp not configured; contact messages are only stored")
	}

	h, err := handlers.New(handlers.Deps{
		Store:    store,
		Copy:     overlay,
		Uploads:  uploads,
		Mailer:   mail,
		Sessions: sessions.New(cfg.SessionSecret, cfg.SessionName, cfg.SessionSecure),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "storage", uploads.Kind())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
