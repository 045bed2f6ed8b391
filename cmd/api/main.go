package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelsud/locallibrary/author"
	"github.com/marcelsud/locallibrary/config"
	"github.com/marcelsud/locallibrary/genre"
	"github.com/marcelsud/locallibrary/internal/http/chi"
	"github.com/marcelsud/locallibrary/language"
	"github.com/marcelsud/locallibrary/metrics"
	"github.com/marcelsud/locallibrary/seed"
	"github.com/marcelsud/locallibrary/storage"
)

const TIMEOUT = 30 * time.Second

/* “a porta de entrada e saída da minha aplicação”
* É aqui que a configuração é lida, o banco é aberto e migrado,
* e os serviços são amarrados ao roteador HTTP.
*
* As importações devem ser feitas apenas em uma direção: para baixo. O aplicativo (api, seed) importa camadas de negócios,
* que importam a camada de armazenamento
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	logger := chi.NewLogger(cfg.LogLevel, cfg.LogJSON)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Str("driver", cfg.DBDriver).Msg("opening store")
		return
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error().Err(err).Msg("closing store")
		}
	}()

	applied, err := store.Migrate(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("migrating schema")
		return
	}
	logger.Info().Str("driver", cfg.DBDriver).Int("migrations", applied).Msg("store ready")

	services := chi.Services{
		Languages: language.NewService(store.Languages()),
		Genres:    genre.NewService(store.Genres()),
		Authors:   author.NewService(store.Authors()),
	}

	collector := metrics.NewSQLCollector(store.DB)
	if cfg.SeedFile != "" {
		loader := seed.NewLoader()
		if err := loader.Load(cfg.SeedFile); err != nil {
			logger.Error().Err(err).Str("file", cfg.SeedFile).Msg("loading seed")
			return
		}
		res, applied, err := seed.ApplyIfEmpty(ctx, loader.Fixtures(), seed.Services(services), collector)
		if err != nil {
			logger.Error().Err(err).Msg("applying seed")
			return
		}
		if applied {
			logger.Info().
				Int("languages", res.Languages).
				Int("genres", res.Genres).
				Int("authors", res.Authors).
				Msg("seed applied")
		} else {
			logger.Info().Str("file", cfg.SeedFile).Msg("catalog not empty, seed skipped")
		}
	}

	exporter, err := metrics.NewOTelExporter(collector)
	if err != nil {
		logger.Error().Err(err).Msg("creating metrics exporter")
		return
	}
	defer func() {
		if err := exporter.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("shutting down metrics")
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/metrics", exporter.ServeHTTP())
	mux.Handle("/", chi.Handlers(logger, services, exporter.Middleware))
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      mux,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	logger.Info().Str("port", cfg.Port).Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("serving")
		return
	}
	err = <-errShutdown
	if err != nil {
		logger.Error().Err(err).Msg("shutting down")
		return
	}
	logger.Info().Msg("server stopped")
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("forcing closing the server: %w", err)
	}
}
