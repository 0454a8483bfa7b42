// Package yaml loads heuristic thresholds from YAML files.
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/markdowned"
	"gopkg.in/yaml.v3"
)

// LoadThresholds decodes thresholds from r over DefaultThresholds, so a
// file only needs the values it overrides. Unknown keys are rejected.
func LoadThresholds(r io.Reader) (markdowned.Thresholds, error) {
	t := markdowned.DefaultThresholds()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return markdowned.Thresholds{}, markdowned.Errorf(markdowned.EINVALID, "invalid thresholds: %v", err)
	}

	if err := t.Validate(); err != nil {
		return markdowned.Thresholds{}, err
	}
	return t, nil
}

// LoadThresholdsFile reads thresholds from the file at path. An empty path
// returns the defaults.
func LoadThresholdsFile(path string) (markdowned.Thresholds, error) {
	if path == "" {
		return markdowned.DefaultThresholds(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return markdowned.Thresholds{}, markdowned.Errorf(markdowned.ENOTFOUND, "thresholds file not found: %s", path)
		}
		return markdowned.Thresholds{}, err
	}
	defer f.Close()

	return LoadThresholds(f)
}
