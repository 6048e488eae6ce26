package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hamed0406/uptimeping/internal/domain"
)

type targetsFile struct {
	Targets []fileTarget `yaml:"targets"`
}

// fileTarget keeps Kind as a pointer so a missing key is not read as http.
type fileTarget struct {
	Name     string       `yaml:"name"`
	Kind     *domain.Kind `yaml:"kind"`
	Endpoint string       `yaml:"endpoint"`
}

// LoadTargetsFile reads additional targets from a YAML document:
//
//	targets:
//	  - name: Beacon Node
//	    kind: http
//	    endpoint: http://10.0.0.2:5052/eth/v1/node/health
func LoadTargetsFile(path string) ([]domain.Target, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read targets file: %w", err)
	}
	var f targetsFile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse targets file %s: %w", path, err)
	}
	var out []domain.Target
	for _, t := range f.Targets {
		if t.Endpoint == "" {
			continue
		}
		if t.Kind == nil {
			return nil, fmt.Errorf("parse targets file %s: target %q: missing kind", path, t.Name)
		}
		out = append(out, domain.Target{Name: t.Name, Kind: *t.Kind, Endpoint: t.Endpoint})
	}
	return out, nil
}

// Load is FromEnv plus the optional targets file, appended after the
// environment targets. A non-empty targetsFile replaces TARGETS_FILE.
func Load(targetsFile string) (Config, error) {
	cfg := FromEnv()
	if targetsFile != "" {
		cfg.TargetsFile = targetsFile
	}
	if cfg.TargetsFile == "" {
		return cfg, nil
	}
	more, err := LoadTargetsFile(cfg.TargetsFile)
	if err != nil {
		return cfg, err
	}
	cfg.Targets = append(cfg.Targets, more...)
	return cfg, nil
}
