package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"playlistport/internal/config"
	"playlistport/internal/handler"
	"playlistport/internal/server"
	"playlistport/internal/service/audio"
	"playlistport/internal/service/playlist"
)

type App struct {
	server *server.Server
	config *config.Config
	logger zerolog.Logger
}

func New(cfg *config.Config) *App {
	logger := newLogger(cfg.App.LogMode)

	audioService := audio.NewService(logger.With().Str("component", "audio").Logger())

	scanLogger := logger.With().Str("component", "playlist").Logger()
	newPlaylist := func(path string) handler.Playlist {
		pl := playlist.New(path, audioService, scanLogger)
		pl.Subscribe(&progressLogger{logger: scanLogger})
		return pl
	}

	h := handler.New(newPlaylist, logger.With().Str("component", "http").Logger())
	srv := server.New(cfg, h)

	return &App{
		server: srv,
		config: cfg,
		logger: logger,
	}
}

func (a *App) Run() {
	go func() {
		if err := a.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	a.logger.Info().Str("addr", a.config.Server.Address()).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), a.config.App.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	a.logger.Info().Msg("server exited")
}

func newLogger(mode string) zerolog.Logger {
	switch mode {
	case "prod":
		return zerolog.New(os.Stdout).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	case "dev":
		return consoleLogger(zerolog.InfoLevel)
	default:
		return consoleLogger(zerolog.DebugLevel)
	}
}

func consoleLogger(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// progressLogger forwards scan progress events to the log.
type progressLogger struct {
	logger zerolog.Logger
}

func (p *progressLogger) OnProgress(e playlist.ProgressEvent) {
	p.logger.Debug().Int("old", e.Old).Int("new", e.New).Msg("scan progress")
}
