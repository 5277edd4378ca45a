package scaling

import (
	"bytes"
	"context"
	"sort"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/bintly"
)

// EncodeBinary encodes the model to a binary stream
func (m *Model) EncodeBinary(stream *bintly.Writer) error {
	stream.String(m.Query)
	stream.Int(m.Dim)
	terms := make([]string, 0, len(m.terms))
	for term := range m.terms {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	stream.Int(len(terms))
	for _, term := range terms {
		stream.String(term)
		stream.Float64(m.terms[term])
	}
	return nil
}

// DecodeBinary decodes the model from a binary stream
func (m *Model) DecodeBinary(stream *bintly.Reader) error {
	stream.String(&m.Query)
	stream.Int(&m.Dim)
	var size int
	stream.Int(&size)
	m.terms = make(map[string]float64, size)
	for i := 0; i < size; i++ {
		var term string
		var beta float64
		stream.String(&term)
		stream.Float64(&beta)
		m.terms[term] = beta
	}
	return nil
}

// Save persists the fitted model.
func (m *Model) Save(ctx context.Context, URL string) error {
	data, err := bintly.Marshal(m)
	if err != nil {
		return err
	}
	fs := afs.New()
	return fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data))
}

// Load restores a fitted model.
func Load(ctx context.Context, URL string) (*Model, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, err
	}
	m := &Model{}
	if err := bintly.Unmarshal(data, m); err != nil {
		return nil, err
	}
	return m, nil
}
