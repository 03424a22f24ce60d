package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/khalid-nowaf/lexicon/pkg/api"
	"github.com/khalid-nowaf/lexicon/pkg/config"
)

const shutdownTimeout = 5 * time.Second

// ServeCmd loads dictionaries and exposes the lexicon over HTTP until
// interrupted. Flags override whatever the config file says.
type ServeCmd struct {
	Config      string   `type:"existingfile" help:"YAML config file"`
	Addr        string   `help:"Listen address, overrides the config"`
	Dicts       []string `type:"existingfile" help:"Dictionary files to preload, override the config"`
	AssumeLower bool     `help:"Trust the dictionaries to be lowercase already (faster load)"`
}

// Run executes the serve command.
func (cmd *ServeCmd) Run(ctx *Context) error {
	cfg := config.Default()
	if cmd.Config != "" {
		loaded, err := config.Load(cmd.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Addr != "" {
		cfg.Addr = cmd.Addr
	}
	if len(cmd.Dicts) > 0 {
		cfg.Dictionaries = cmd.Dicts
		cfg.AssumeLowercase = cmd.AssumeLower
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := ctx.Logger.Level(level)

	if err := loadDictionaries(ctx, cfg.Dictionaries, cfg.AssumeLowercase); err != nil {
		return err
	}
	logger.Info().Int("words", ctx.Lex.WordCount()).Msg("lexicon ready")

	server := api.NewServer(cfg.Addr, ctx.Lex, logger)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
