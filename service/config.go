package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/viant/scy/cred/secret"
	"gopkg.in/yaml.v3"

	"github.com/sentiscale/sentiscale/scaling"
)

// Config defines the pipeline settings.
type Config struct {
	// Name identifies the corpus in the score store
	Name       string           `yaml:"name"`
	Corpus     CorpusConfig     `yaml:"corpus"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Scaling    ScalingConfig    `yaml:"scaling"`
	Store      StoreConfig      `yaml:"store"`
	Plot       PlotConfig       `yaml:"plot"`
}

// CorpusConfig defines corpus source settings.
type CorpusConfig struct {
	URL        string `yaml:"url"`
	IDField    string `yaml:"idField"`
	TextField  string `yaml:"textField"`
	DateField  string `yaml:"dateField"`
	DateLayout string `yaml:"dateLayout"`
}

// DictionaryConfig defines the sentiment dictionary source.
type DictionaryConfig struct {
	URL string `yaml:"url"`
}

// ScalingConfig defines seed-word scaling settings.
type ScalingConfig struct {
	Enabled     *bool         `yaml:"enabled"`
	Query       string        `yaml:"query"`
	Window      int           `yaml:"window"`
	MinTermFreq int           `yaml:"minTermFreq"`
	TopTerms    int           `yaml:"topTerms"`
	Dim         int           `yaml:"dim"`
	Seeds       scaling.Seeds `yaml:"seeds"`
	ModelURL    string        `yaml:"modelUrl"`
}

// StoreConfig defines score store settings.
type StoreConfig struct {
	DSN    string `yaml:"dsn"`
	Table  string `yaml:"table"`
	Secret string `yaml:"secret,omitempty"`
}

// PlotConfig defines rendering settings.
type PlotConfig struct {
	URL           string  `yaml:"url"`
	Title         string  `yaml:"title"`
	Span          float64 `yaml:"span"`
	ReferenceDate string  `yaml:"referenceDate"`
}

// Reference parses the marked reference date, if any.
func (p *PlotConfig) Reference() (time.Time, error) {
	if strings.TrimSpace(p.ReferenceDate) == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", p.ReferenceDate)
}

// ScalingEnabled reports whether the scaling branch runs (default true).
func (c *Config) ScalingEnabled() bool {
	if c.Scaling.Enabled == nil {
		return true
	}
	return *c.Scaling.Enabled
}

// Options converts the scaling config to fit options.
func (s *ScalingConfig) Options() []scaling.Option {
	var opts []scaling.Option
	if s.Query != "" {
		opts = append(opts, scaling.WithQuery(s.Query))
	}
	if s.Window > 0 {
		opts = append(opts, scaling.WithWindow(s.Window))
	}
	if s.MinTermFreq > 0 {
		opts = append(opts, scaling.WithMinTermFreq(s.MinTermFreq))
	}
	if s.TopTerms > 0 {
		opts = append(opts, scaling.WithTopTerms(s.TopTerms))
	}
	if s.Dim > 0 {
		opts = append(opts, scaling.WithDim(s.Dim))
	}
	return opts
}

// LoadConfig reads the YAML pipeline config.
func LoadConfig(path string) (*Config, error) {
	path, err := expandUserPath(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	if cfg.Corpus.URL == "" {
		return nil, fmt.Errorf("config: corpus url is required")
	}
	if cfg.Corpus.URL, err = expandUserPath(cfg.Corpus.URL); err != nil {
		return nil, err
	}
	if cfg.Dictionary.URL != "" {
		if cfg.Dictionary.URL, err = expandUserPath(cfg.Dictionary.URL); err != nil {
			return nil, err
		}
	}
	if cfg.Store.DSN != "" {
		if cfg.Store.DSN, err = expandUserPath(cfg.Store.DSN); err != nil {
			return nil, err
		}
	}
	if cfg.Store.Secret != "" {
		if cfg.Store.DSN, err = ExpandDSNWithSecret(context.Background(), cfg.Store.DSN, cfg.Store.Secret); err != nil {
			return nil, err
		}
	}
	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(cfg.Corpus.URL), filepath.Ext(cfg.Corpus.URL))
	}
	return &cfg, nil
}

func expandUserPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || trimmed[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if trimmed == "~" {
		return home, nil
	}
	if !strings.HasPrefix(trimmed, "~/") {
		return "", fmt.Errorf("config: unsupported ~user path: %s", path)
	}
	return filepath.Join(home, trimmed[2:]), nil
}

// ExpandDSNWithSecret loads a secret and expands placeholders in the DSN.
func ExpandDSNWithSecret(ctx context.Context, dsn, secretRef string) (string, error) {
	secretRef = strings.TrimSpace(secretRef)
	if secretRef == "" {
		return dsn, nil
	}
	if strings.TrimSpace(dsn) == "" {
		return "", fmt.Errorf("secret %q provided but dsn is empty", secretRef)
	}
	svc := secret.New()
	sec, err := svc.Lookup(ctx, secret.Resource(secretRef))
	if err != nil {
		return "", err
	}
	return sec.Expand(dsn), nil
}
