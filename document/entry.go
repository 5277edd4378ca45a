package document

import (
	"time"

	"github.com/sentiscale/sentiscale/schema"
)

// Entry represents a loaded corpus source with its metadata
type Entry struct {
	ID        string            // Source URL the documents were loaded from
	ModTime   time.Time         // Last modification time
	Hash      uint64            // Hash of the content for change detection
	Documents []schema.Document // Decoded documents
}
