package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/railmapgen/aarc2rc/geomap"
	"gopkg.in/yaml.v3"
)

// Load reads, validates, and resolves the tuning document at path into
// a geomap.Config. byName resolves any line/point name reference the
// document uses; pass nil if it is known to use only bare ids.
func Load(path string, byName map[string]int) (geomap.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return geomap.Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return geomap.Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := validator.New().Struct(f); err != nil {
		return geomap.Config{}, fmt.Errorf("config: validating %s: %w", path, err)
	}

	return Resolve(f, byName)
}
