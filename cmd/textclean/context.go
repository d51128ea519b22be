package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"textclean/internal/cache"
	"textclean/internal/config"
	"textclean/internal/logging"
	"textclean/internal/perf"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// configValue returns a copy of the loaded configuration so commands can
// apply flag overrides without touching the shared value.
func (c *commandContext) configValue() config.Config {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		return config.Default()
	}
	return *cfg
}

// logger builds a logger writing to the command's stderr. The returned func
// closes the configured log file.
func (c *commandContext) logger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, func(), error) {
	logger, closeLog, err := logging.Open(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, func() { _ = closeLog() }, nil
}

// newCleaner builds a perf.Cleaner for cfg. When useStore is set the
// configured cache backend is opened. The returned func releases the store
// and the log file.
func (c *commandContext) newCleaner(cmd *cobra.Command, cfg *config.Config, useStore bool) (*perf.Cleaner, func(), error) {
	logger, closeLog, err := c.logger(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	var store cache.Store
	release := closeLog
	if useStore {
		store = cache.Open(cmd.Context(), cfg, logger)
		release = func() {
			_ = store.Close()
			closeLog()
		}
	}
	cleaner, err := perf.New(cfg, store, logger)
	if err != nil {
		release()
		return nil, nil, err
	}
	return cleaner, release, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
