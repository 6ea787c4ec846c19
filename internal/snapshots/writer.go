package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/providers"
)

// Writer dumps raw upstream documents to disk for debugging and offline replay.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteGame dumps every document of a raw game. All documents are attempted;
// the returned error joins individual failures.
func (w *Writer) WriteGame(raw providers.RawGame) error {
	if raw == nil {
		return errors.New("raw game required")
	}
	var errs []error
	for _, doc := range raw.Documents() {
		if err := w.WriteDocument(raw.GameID(), doc.Kind, doc.Payload); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", doc.Kind, err))
		}
	}
	return errors.Join(errs...)
}

// WriteDocument writes one document as indented JSON, replacing any previous dump atomically.
func (w *Writer) WriteDocument(gameID, kind string, payload json.RawMessage) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if gameID == "" || kind == "" {
		return fmt.Errorf("game id and kind required")
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, payload, "", "  "); err != nil {
		return err
	}
	data := pretty.Bytes()

	target := DocumentPath(w.basePath, gameID, kind)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
