package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/studiograph/pkg/domain"
	"gopkg.in/yaml.v3"
)

// LoadFriendlyNames reads the optional state-name to display-label mapping.
// An empty path is valid and yields an empty map. Files ending in .yaml or
// .yml are parsed as YAML, everything else as JSON. A missing or unparsable
// file wraps ErrMalformedSource; callers report it and fall back to raw
// state names.
func LoadFriendlyNames(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return map[string]string{}, fmt.Errorf("%w: %v", domain.ErrMalformedSource, err)
	}

	names := map[string]string{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &names)
	default:
		err = json.Unmarshal(data, &names)
	}
	if err != nil {
		return map[string]string{}, fmt.Errorf("%w: %s: %v", domain.ErrMalformedSource, path, err)
	}
	return names, nil
}
