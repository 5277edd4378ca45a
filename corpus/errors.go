package corpus

import "errors"

// ErrUnsupportedFormat is returned when a corpus source extension has no
// registered reader.
var ErrUnsupportedFormat = errors.New("corpus: unsupported format")

// ErrMissingDate is returned when a document has no parsable date.
var ErrMissingDate = errors.New("corpus: document date missing or unparsable")
