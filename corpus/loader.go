package corpus

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"

	"github.com/sentiscale/sentiscale/corpus/cache"
	"github.com/sentiscale/sentiscale/document"
	"github.com/sentiscale/sentiscale/schema"
)

// Loader reads serialized corpora from file storage.
type Loader struct {
	fs      afs.Service
	cache   *cache.Map[string, document.Entry]
	options *Options
}

// NewLoader creates a corpus loader
func NewLoader(opts ...Option) *Loader {
	return &Loader{
		fs:      afs.New(),
		cache:   cache.NewMap[string, document.Entry](),
		options: NewOptions(opts...),
	}
}

// Load reads and decodes a corpus from the given URL. Repeated loads of an
// unchanged source are served from the in-memory cache: first by source
// modification time, then by content hash.
func (l *Loader) Load(ctx context.Context, URL string) (*Corpus, error) {
	object, err := l.fs.Object(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to locate corpus %s: %w", URL, err)
	}
	if prev, ok := l.cache.Get(URL); ok && prev.ModTime.Equal(object.ModTime()) {
		return New(cloneDocuments(prev.Documents)), nil
	}

	reader, err := l.fs.OpenURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus %s: %w", URL, err)
	}
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus %s: %w", URL, err)
	}

	dataHash := cache.Hash(data)
	if prev, ok := l.cache.Get(URL); ok && prev.Hash == dataHash {
		return New(cloneDocuments(prev.Documents)), nil
	}

	documents, err := l.Decode(url.Path(URL), data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode corpus %s: %w", URL, err)
	}
	l.cache.Set(URL, &document.Entry{
		ID:        URL,
		ModTime:   object.ModTime(),
		Hash:      dataHash,
		Documents: documents,
	})
	return New(cloneDocuments(documents)), nil
}

// cloneDocuments guards the cached slice against caller mutation
func cloneDocuments(documents []schema.Document) []schema.Document {
	out := make([]schema.Document, len(documents))
	copy(out, documents)
	return out
}

// Decode decodes corpus data, choosing the reader by location extension.
func (l *Loader) Decode(location string, data []byte) ([]schema.Document, error) {
	ext := strings.ToLower(path.Ext(location))
	switch ext {
	case ".jsonl", ".ndjson":
		return l.readJSONL(data)
	case ".csv":
		return l.readCSV(data)
	case ".xlsx":
		return l.readXLSX(data)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}
