package schedule

import (
	"context"
	"encoding/json"
)

// DocumentRepository persists the full schedule document. Documents cross
// this boundary as raw JSON so that caller-supplied shapes and unknown
// schedule fields survive verbatim.
type DocumentRepository interface {
	// Load reads and parses the schedule file. A missing file is not an
	// error: the default document is persisted and returned instead.
	Load(ctx context.Context) (json.RawMessage, error)

	// Save serializes doc as indented JSON and overwrites the file in full.
	Save(ctx context.Context, doc json.RawMessage) error
}
