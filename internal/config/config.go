package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed sample_config.yaml
var sampleConfig string

const EnvPrefix = "FLASHCARDS_"

// Variant names one of the HTML documents produced per run.
type Variant string

const (
	VariantImage   Variant = "image"
	VariantNoImage Variant = "no-image"
	VariantBlank   Variant = "blank"
)

// Title is the variant label shown in document titles.
func (v Variant) Title() string {
	switch v {
	case VariantImage:
		return "IMAGE"
	case VariantNoImage:
		return "NO IMAGE"
	case VariantBlank:
		return "BLANK"
	}
	return strings.ToUpper(string(v))
}

type Images struct {
	Directory   string `yaml:"directory" koanf:"directory"`
	DefaultSize []int  `yaml:"defaultSize" koanf:"defaultSize"`
}

type PDF struct {
	Enabled        bool    `yaml:"enabled" koanf:"enabled"`
	Variant        Variant `yaml:"variant" koanf:"variant"`
	TimeoutSeconds int     `yaml:"timeoutSeconds" koanf:"timeoutSeconds"`
	BrowserPath    string  `yaml:"browserPath,omitempty" koanf:"browserPath"`
}

type Config struct {
	TargetLanguageName  string    `yaml:"targetLanguageName" koanf:"targetLanguageName"`
	TargetLanguageTag   string    `yaml:"targetLanguageTag,omitempty" koanf:"targetLanguageTag"`
	WordlistPath        string    `yaml:"wordlistPath" koanf:"wordlistPath"`
	Images              Images    `yaml:"images" koanf:"images"`
	StartID             int       `yaml:"startId" koanf:"startId"`
	EndID               int       `yaml:"endId" koanf:"endId"`
	CardsPerAccordion   int       `yaml:"cardsPerAccordion" koanf:"cardsPerAccordion"`
	PhoneticColumn      string    `yaml:"phoneticColumn" koanf:"phoneticColumn"`
	PhoneticPlaceholder string    `yaml:"phoneticPlaceholder" koanf:"phoneticPlaceholder"`
	OutputDir           string    `yaml:"outputDir" koanf:"outputDir"`
	Variants            []Variant `yaml:"variants" koanf:"variants"`
	PDF                 PDF       `yaml:"pdf" koanf:"pdf"`
}

// envKeys maps FLASHCARDS_* suffixes onto config keys.
var envKeys = map[string]string{
	"TARGET_LANGUAGE_NAME": "targetLanguageName",
	"TARGET_LANGUAGE_TAG":  "targetLanguageTag",
	"WORDLIST_PATH":        "wordlistPath",
	"IMAGES_DIRECTORY":     "images.directory",
	"START_ID":             "startId",
	"END_ID":               "endId",
	"CARDS_PER_ACCORDION":  "cardsPerAccordion",
	"OUTPUT_DIR":           "outputDir",
	"PDF_ENABLED":          "pdf.enabled",
	"PDF_BROWSER_PATH":     "pdf.browserPath",
}

// Load reads the config file at path (JSON or YAML) and overlays FLASHCARDS_*
// environment variables on top of the defaults.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("config path is required")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("can't open config file %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[strings.TrimPrefix(s, EnvPrefix)]
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	cfg := Default()
	cfg.Variants = nil
	cfg.CardsPerAccordion = 0
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config %s: %w", path, err)
	}
	if len(cfg.Variants) == 0 {
		cfg.Variants = defaultVariants()
	}
	if cfg.CardsPerAccordion == 0 {
		cfg.CardsPerAccordion = defaultCardsPerAccordion(cfg.EndID)
	}

	return cfg, nil
}

func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return json.Parser()
	}
	return yaml.Parser()
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// SampleConfig returns the annotated starter configuration.
func SampleConfig() string {
	return sampleConfig
}

// DefaultSize returns images.defaultSize as width/height. Only meaningful
// after Validate succeeded.
func (c *Config) DefaultSize() (width, height int) {
	if len(c.Images.DefaultSize) != 2 {
		return 0, 0
	}
	return c.Images.DefaultSize[0], c.Images.DefaultSize[1]
}

// HasVariant reports whether v is among the configured output variants.
func (c *Config) HasVariant(v Variant) bool {
	for _, configured := range c.Variants {
		if configured == v {
			return true
		}
	}
	return false
}
