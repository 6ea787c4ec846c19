package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// FSStore reads dumped documents back from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadDocument reads {basePath}/{gameID}-{kind}.json and checks it is valid JSON.
func (s *FSStore) LoadDocument(gameID, kind string) (json.RawMessage, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	if gameID == "" || kind == "" {
		return nil, errors.New("game id and kind required")
	}
	path := DocumentPath(s.basePath, gameID, kind)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("decode %s: invalid JSON", path)
	}
	return json.RawMessage(data), nil
}

// HasDocument reports whether a dump exists for the game and kind.
func (s *FSStore) HasDocument(gameID, kind string) bool {
	if s == nil {
		return false
	}
	_, err := os.Stat(DocumentPath(s.basePath, gameID, kind))
	return err == nil
}
