package service

import (
	"context"
	"fmt"

	"github.com/sentiscale/sentiscale/corpus"
	"github.com/sentiscale/sentiscale/dfm"
	"github.com/sentiscale/sentiscale/dictionary"
	"github.com/sentiscale/sentiscale/render"
	"github.com/sentiscale/sentiscale/scaling"
	"github.com/sentiscale/sentiscale/series"
	"github.com/sentiscale/sentiscale/store/sqlite"
	"github.com/sentiscale/sentiscale/token"
)

// Service runs the sentiment pipeline.
type Service struct {
	config    *Config
	loader    *corpus.Loader
	tokenizer *token.Tokenizer
}

// New creates a pipeline service for the given config.
func New(config *Config) *Service {
	return &Service{
		config: config,
		loader: corpus.NewLoader(
			corpus.WithIDField(config.Corpus.IDField),
			corpus.WithTextField(config.Corpus.TextField),
			corpus.WithDateField(config.Corpus.DateField),
			corpus.WithDateLayout(config.Corpus.DateLayout),
		),
		tokenizer: token.New(token.WithStopwords()),
	}
}

// Load reads the configured corpus.
func (s *Service) Load(ctx context.Context) (*corpus.Corpus, error) {
	return s.loader.Load(ctx, s.config.Corpus.URL)
}

// ScoreDictionary runs the dictionary branch over a corpus.
func (s *Service) ScoreDictionary(ctx context.Context, c *corpus.Corpus) ([]dictionary.Score, error) {
	if s.config.Dictionary.URL == "" {
		return nil, fmt.Errorf("dictionary url not configured")
	}
	dict, err := dictionary.Load(ctx, s.config.Dictionary.URL)
	if err != nil {
		return nil, err
	}
	m := dfm.Build(c, s.tokenizer)
	return dict.Score(m), nil
}

// FitModel fits the seed-word scaling model on the sentence-reshaped corpus.
func (s *Service) FitModel(ctx context.Context, c *corpus.Corpus) (*scaling.Model, error) {
	model, err := scaling.Fit(c.Reshape(), s.tokenizer, s.config.Scaling.Seeds, s.config.Scaling.Options()...)
	if err != nil {
		return nil, fmt.Errorf("failed to fit scaling model: %w", err)
	}
	if s.config.Scaling.ModelURL != "" {
		if err := model.Save(ctx, s.config.Scaling.ModelURL); err != nil {
			return nil, fmt.Errorf("failed to save model: %w", err)
		}
	}
	return model, nil
}

// Predict projects a corpus onto a fitted model.
func (s *Service) Predict(c *corpus.Corpus, model *scaling.Model) []scaling.Score {
	m := dfm.Build(c, s.tokenizer)
	return model.Predict(m)
}

// Run executes the full pipeline: both scoring branches, optional
// persistence, optional plot.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	c, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	result := &Result{}

	if s.config.Dictionary.URL != "" {
		scores, err := s.ScoreDictionary(ctx, c)
		if err != nil {
			return nil, err
		}
		result.Dictionary = scores
		result.DictionarySeries = dictionarySeries(scores).MergeByDay()
	}

	if s.config.ScalingEnabled() {
		model, err := s.FitModel(ctx, c)
		if err != nil {
			return nil, err
		}
		scores := s.Predict(c, model)
		result.Model = scores
		result.ModelSeries = modelSeries(scores).MergeByDay()
	}

	if s.config.Store.DSN != "" {
		if err := s.persist(ctx, result); err != nil {
			return nil, err
		}
	}

	if s.config.Plot.URL != "" {
		if err := s.plot(result); err != nil {
			return nil, err
		}
		result.PlotURL = s.config.Plot.URL
	}
	return result, nil
}

func (s *Service) persist(ctx context.Context, result *Result) error {
	store, err := sqlite.New(ctx,
		sqlite.WithDSN(s.config.Store.DSN),
		sqlite.WithTable(s.config.Store.Table),
	)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(result.Dictionary) > 0 {
		rows := make([]sqlite.Row, len(result.Dictionary))
		for i, score := range result.Dictionary {
			rows[i] = sqlite.Row{DocID: score.ID, Date: score.Date, Raw: score.Raw, Score: score.Std}
		}
		if err := store.Upsert(ctx, s.config.Name, MethodDictionary, rows); err != nil {
			return err
		}
	}
	if len(result.Model) > 0 {
		rows := make([]sqlite.Row, len(result.Model))
		for i, score := range result.Model {
			rows[i] = sqlite.Row{DocID: score.ID, Date: score.Date, Raw: score.Raw, Score: score.Std}
		}
		if err := store.Upsert(ctx, s.config.Name, MethodModel, rows); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) plot(result *Result) error {
	named := map[string]series.Series{}
	var order []string
	if len(result.DictionarySeries) > 0 {
		named[MethodDictionary] = result.DictionarySeries
		order = append(order, MethodDictionary)
	}
	if len(result.ModelSeries) > 0 {
		named[MethodModel] = result.ModelSeries
		order = append(order, MethodModel)
	}
	if len(named) == 0 {
		return fmt.Errorf("nothing to plot")
	}

	reference, err := s.config.Plot.Reference()
	if err != nil {
		return fmt.Errorf("invalid reference date: %w", err)
	}
	opts := []render.Option{
		render.WithTitle(s.config.Plot.Title),
		render.WithSpan(s.config.Plot.Span),
	}
	if !reference.IsZero() {
		opts = append(opts, render.WithReference(reference))
	}
	return render.New(opts...).Comparison(s.config.Plot.URL, named, order)
}

func dictionarySeries(scores []dictionary.Score) series.Series {
	points := make([]series.Point, len(scores))
	for i, score := range scores {
		points[i] = series.Point{Date: score.Date, Value: score.Std}
	}
	return series.New(points)
}

func modelSeries(scores []scaling.Score) series.Series {
	points := make([]series.Point, len(scores))
	for i, score := range scores {
		points[i] = series.Point{Date: score.Date, Value: score.Std}
	}
	return series.New(points)
}
