package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable. Every violation is reported,
// combined into a single error.
func (c *Config) Validate() error {
	var err error
	err = multierr.Append(err, c.validateTargetLanguage())
	err = multierr.Append(err, c.validateWordlist())
	err = multierr.Append(err, c.validateImages())
	err = multierr.Append(err, c.validateRange())
	err = multierr.Append(err, c.validateLayout())
	err = multierr.Append(err, c.validateOutput())
	return err
}

func (c *Config) validateTargetLanguage() error {
	if strings.TrimSpace(c.TargetLanguageName) == "" {
		return errors.New("targetLanguageName is required")
	}
	if c.TargetLanguageTag != "" {
		if _, err := language.Parse(c.TargetLanguageTag); err != nil {
			return fmt.Errorf("targetLanguageTag %q is not a BCP-47 tag: %w", c.TargetLanguageTag, err)
		}
	}
	return nil
}

func (c *Config) validateWordlist() error {
	if strings.TrimSpace(c.WordlistPath) == "" {
		return errors.New("wordlistPath is required")
	}
	f, err := os.Open(c.WordlistPath)
	if err != nil {
		return fmt.Errorf("can't open wordlist %s: %w", c.WordlistPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("can't stat wordlist %s: %w", c.WordlistPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("wordlist %s is a directory", c.WordlistPath)
	}
	return nil
}

func (c *Config) validateImages() error {
	var err error
	if strings.TrimSpace(c.Images.Directory) == "" {
		err = multierr.Append(err, errors.New("images.directory is required"))
	} else if _, readErr := os.ReadDir(c.Images.Directory); readErr != nil {
		err = multierr.Append(err, fmt.Errorf("can't open images folder %s: %w", c.Images.Directory, readErr))
	}

	if len(c.Images.DefaultSize) != 2 {
		err = multierr.Append(err, fmt.Errorf("images.defaultSize must be a [width, height] pair, got %d values", len(c.Images.DefaultSize)))
	} else if c.Images.DefaultSize[0] <= 0 || c.Images.DefaultSize[1] <= 0 {
		err = multierr.Append(err, fmt.Errorf("images.defaultSize must be positive, got %v", c.Images.DefaultSize))
	}
	return err
}

func (c *Config) validateRange() error {
	if c.StartID < 1 {
		return fmt.Errorf("startId must be at least 1, got %d", c.StartID)
	}
	if c.StartID > c.EndID {
		return fmt.Errorf("startId %d is greater than endId %d", c.StartID, c.EndID)
	}
	return nil
}

func (c *Config) validateLayout() error {
	var err error
	if c.CardsPerAccordion <= 0 {
		err = multierr.Append(err, fmt.Errorf("cardsPerAccordion must be positive, got %d", c.CardsPerAccordion))
	}
	if c.CardsPerAccordion > c.EndID {
		err = multierr.Append(err, fmt.Errorf("cardsPerAccordion %d is greater than endId %d", c.CardsPerAccordion, c.EndID))
	}
	return err
}

func (c *Config) validateOutput() error {
	var err error
	if len(c.Variants) == 0 {
		err = multierr.Append(err, errors.New("at least one output variant is required"))
	}
	for _, v := range c.Variants {
		switch v {
		case VariantImage, VariantNoImage, VariantBlank:
		default:
			err = multierr.Append(err, fmt.Errorf("unknown output variant %q", v))
		}
	}
	if c.PDF.Enabled {
		if !c.HasVariant(c.PDF.Variant) {
			err = multierr.Append(err, fmt.Errorf("pdf.variant %q is not among the generated variants", c.PDF.Variant))
		}
		if c.PDF.TimeoutSeconds <= 0 {
			err = multierr.Append(err, errors.New("pdf.timeoutSeconds must be positive"))
		}
	}
	return err
}
