package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hvacwidget/scheduler-backend-go/internal/domain/schedule"
)

// DocumentStore persists the schedule document as a pretty-printed JSON
// file. Save overwrites the file in place without a temp-file rename, so
// a crash mid-write can leave a truncated file. Accepted for this scope.
type DocumentStore struct {
	path string
}

func NewDocumentStore(path string) *DocumentStore {
	return &DocumentStore{path: path}
}

// Load implements schedule.DocumentRepository.
func (s *DocumentStore) Load(ctx context.Context) (json.RawMessage, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.createDefault(ctx)
		}
		return nil, fmt.Errorf("failed to read schedule file: %w", err)
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: %s", schedule.ErrMalformedDocument, s.path)
	}
	return json.RawMessage(raw), nil
}

// Save implements schedule.DocumentRepository. The document is
// re-indented from its raw bytes rather than decoded and re-encoded, so
// key order and full-precision numbers land on disk exactly as supplied.
func (s *DocumentStore) Save(ctx context.Context, doc json.RawMessage) error {
	if !json.Valid(doc) {
		return fmt.Errorf("invalid schedule document")
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return fmt.Errorf("failed to serialize schedule document: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write schedule file: %w", err)
	}
	return nil
}

// createDefault persists and returns the default document. Runs once, on
// the first Load against a path with no file behind it.
func (s *DocumentStore) createDefault(ctx context.Context) (json.RawMessage, error) {
	doc, err := json.Marshal(schedule.DefaultDocument())
	if err != nil {
		return nil, fmt.Errorf("failed to serialize default document: %w", err)
	}

	if err := s.Save(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
