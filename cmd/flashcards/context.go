package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wordlist-tools/flashcards/internal/config"
	"github.com/wordlist-tools/flashcards/pkg/logger"
)

// commandContext carries the persistent flags shared by every command.
type commandContext struct {
	configPath   string
	wordlistPath string
	imagesPath   string
	verbose      bool
	debug        bool

	stderr io.Writer
}

func newCommandContext() *commandContext {
	return &commandContext{stderr: os.Stderr}
}

func (c *commandContext) logger() *logger.Logger {
	log := logger.New(
		logger.WithOutput(c.stderr),
		logger.WithPrefix("[flashcards] "),
	)
	log.SetVerbose(c.verbose)
	if c.debug {
		log.SetLevel(logger.LevelTrace)
	}
	return log
}

// loadConfig reads the config file, applies -t and -p on top and validates
// the result.
func (c *commandContext) loadConfig() (*config.Config, error) {
	if strings.TrimSpace(c.configPath) == "" {
		return nil, errors.New("a config file is required (-c)")
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}

	if c.wordlistPath != "" {
		if _, err := os.Stat(c.wordlistPath); err != nil {
			return nil, fmt.Errorf("can't open wordlist %s: %w", c.wordlistPath, err)
		}
		cfg.WordlistPath = c.wordlistPath
	}
	if c.imagesPath != "" {
		if _, err := os.Stat(c.imagesPath); err != nil {
			return nil, fmt.Errorf("can't open images folder %s: %w", c.imagesPath, err)
		}
		cfg.Images.Directory = c.imagesPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s:\n%w", c.configPath, err)
	}
	return cfg, nil
}
