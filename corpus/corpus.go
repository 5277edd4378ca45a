package corpus

import (
	"time"

	"github.com/sentiscale/sentiscale/schema"
)

// Corpus is an ordered collection of dated documents.
type Corpus struct {
	documents []schema.Document
	index     map[string]int
}

// New creates a corpus from documents, preserving order.
func New(documents []schema.Document) *Corpus {
	c := &Corpus{
		documents: documents,
		index:     make(map[string]int, len(documents)),
	}
	for i := range documents {
		c.index[documents[i].ID] = i
	}
	return c
}

// Size returns the number of documents.
func (c *Corpus) Size() int {
	return len(c.documents)
}

// Documents returns the underlying document slice.
func (c *Corpus) Documents() []schema.Document {
	return c.documents
}

// Get returns a document by ID.
func (c *Corpus) Get(id string) (*schema.Document, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return &c.documents[i], true
}

// Texts returns document texts in corpus order.
func (c *Corpus) Texts() []string {
	texts := make([]string, len(c.documents))
	for i := range c.documents {
		texts[i] = c.documents[i].Text
	}
	return texts
}

// IDs returns document identifiers in corpus order.
func (c *Corpus) IDs() []string {
	ids := make([]string, len(c.documents))
	for i := range c.documents {
		ids[i] = c.documents[i].ID
	}
	return ids
}

// Dates returns document dates in corpus order.
func (c *Corpus) Dates() []time.Time {
	dates := make([]time.Time, len(c.documents))
	for i := range c.documents {
		dates[i] = c.documents[i].Date
	}
	return dates
}

// Reshape returns a sentence-level view of the corpus: every sentence becomes
// its own document carrying the parent's date.
func (c *Corpus) Reshape() *Corpus {
	segmenter := NewSegmenter()
	var sentences []schema.Document
	for i := range c.documents {
		doc := &c.documents[i]
		fragments := segmenter.Split(doc.Text)
		for ordinal, fragment := range fragments {
			sentences = append(sentences, fragment.NewDocument(doc.ID, ordinal, doc.Date, doc.Text))
		}
	}
	return New(sentences)
}
