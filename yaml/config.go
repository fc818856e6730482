// Package yaml loads pagemirror configuration files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/pagemirror"
	goyaml "gopkg.in/yaml.v3"
)

// LoadConfig reads and validates the YAML config file at path.
// An empty file yields a zero Config.
func LoadConfig(path string) (*pagemirror.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML config document. Unknown keys are rejected.
func ParseConfig(data []byte) (*pagemirror.Config, error) {
	var config pagemirror.Config

	dec := goyaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, pagemirror.Errorf(pagemirror.EINVALID, "failed to parse config file: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
