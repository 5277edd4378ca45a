package service

import (
	"github.com/sentiscale/sentiscale/dictionary"
	"github.com/sentiscale/sentiscale/scaling"
	"github.com/sentiscale/sentiscale/series"
)

// Method names a scoring technique in the score store.
const (
	MethodDictionary = "dictionary"
	MethodModel      = "model"
)

// Result carries the per-document scores and daily series of one run.
type Result struct {
	Dictionary       []dictionary.Score
	Model            []scaling.Score
	DictionarySeries series.Series
	ModelSeries      series.Series
	PlotURL          string
}
