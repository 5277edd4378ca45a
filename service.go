// Package sentiscale scores news corpora on a sentiment scale: a dictionary
// branch counts polarity patterns over a document-feature matrix, and a
// seed-word scaling branch learns term polarities from latent semantics.
package sentiscale

import (
	"context"

	"github.com/sentiscale/sentiscale/dictionary"
	"github.com/sentiscale/sentiscale/scaling"
	"github.com/sentiscale/sentiscale/service"
	"github.com/sentiscale/sentiscale/token"
)

// Run executes the full pipeline described by a YAML config.
func Run(ctx context.Context, configURL string) (*service.Result, error) {
	cfg, err := service.LoadConfig(configURL)
	if err != nil {
		return nil, err
	}
	return service.New(cfg).Run(ctx)
}

// Score runs the dictionary branch over a corpus.
func Score(ctx context.Context, corpusURL, dictionaryURL string) ([]dictionary.Score, error) {
	svc := service.New(&service.Config{
		Corpus:     service.CorpusConfig{URL: corpusURL},
		Dictionary: service.DictionaryConfig{URL: dictionaryURL},
	})
	c, err := svc.Load(ctx)
	if err != nil {
		return nil, err
	}
	return svc.ScoreDictionary(ctx, c)
}

// Fit trains a seed-word scaling model on a corpus and returns it.
func Fit(ctx context.Context, corpusURL string, opts ...scaling.Option) (*scaling.Model, error) {
	svc := service.New(&service.Config{
		Corpus: service.CorpusConfig{URL: corpusURL},
	})
	c, err := svc.Load(ctx)
	if err != nil {
		return nil, err
	}
	return scaling.Fit(c.Reshape(), token.New(token.WithStopwords()), nil, opts...)
}
