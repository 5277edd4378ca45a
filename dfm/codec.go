package dfm

import (
	"bytes"
	"context"
	"sort"
	"time"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/bintly"
)

// EncodeBinary encodes the matrix to a binary stream
func (m *Matrix) EncodeBinary(stream *bintly.Writer) error {
	stream.Int(len(m.vocab))
	for _, term := range m.vocab {
		stream.String(term)
	}
	stream.Int(len(m.rows))
	for i, row := range m.rows {
		stream.String(m.ids[i])
		stream.Time(m.dates[i])
		cols := make([]int, 0, len(row))
		for col := range row {
			cols = append(cols, col)
		}
		sort.Ints(cols)
		stream.Int(len(cols))
		for _, col := range cols {
			stream.Int(col)
			stream.Float64(row[col])
		}
	}
	return nil
}

// DecodeBinary decodes the matrix from a binary stream
func (m *Matrix) DecodeBinary(stream *bintly.Reader) error {
	var nTerms int
	stream.Int(&nTerms)
	m.vocab = make([]string, nTerms)
	m.index = make(map[string]int, nTerms)
	for col := 0; col < nTerms; col++ {
		stream.String(&m.vocab[col])
		m.index[m.vocab[col]] = col
	}
	var nDocs int
	stream.Int(&nDocs)
	m.rows = make([]map[int]float64, nDocs)
	m.ids = make([]string, nDocs)
	m.dates = make([]time.Time, nDocs)
	for i := 0; i < nDocs; i++ {
		stream.String(&m.ids[i])
		stream.Time(&m.dates[i])
		var size int
		stream.Int(&size)
		row := make(map[int]float64, size)
		for j := 0; j < size; j++ {
			var col int
			var value float64
			stream.Int(&col)
			stream.Float64(&value)
			row[col] = value
		}
		m.rows[i] = row
	}
	return nil
}

// Save persists a binary snapshot of the matrix.
func (m *Matrix) Save(ctx context.Context, URL string) error {
	data, err := bintly.Marshal(m)
	if err != nil {
		return err
	}
	fs := afs.New()
	return fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data))
}

// Load restores a matrix from a binary snapshot.
func Load(ctx context.Context, URL string) (*Matrix, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, err
	}
	m := &Matrix{}
	if err := bintly.Unmarshal(data, m); err != nil {
		return nil, err
	}
	return m, nil
}
