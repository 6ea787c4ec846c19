package snapshots

import (
	"fmt"
	"path/filepath"
)

// DocumentPath builds the path of a dumped document: {basePath}/{gameID}-{kind}.json.
func DocumentPath(basePath, gameID, kind string) string {
	return filepath.Join(basePath, fmt.Sprintf("%s-%s.json", gameID, kind))
}
