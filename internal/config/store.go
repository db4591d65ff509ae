package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shreyass0007/gitstreak/internal/common"
	"github.com/shreyass0007/gitstreak/internal/errors"
)

// Store loads and creates the configuration record. The format follows the
// file extension: .yaml/.yml are YAML, everything else is JSON.
type Store struct {
	path     string
	defaults Config
	logger   common.Logger
}

// NewStore creates a Store for path. defaults is returned whenever the
// record is missing or unreadable.
func NewStore(path string, defaults Config, logger common.Logger) *Store {
	return &Store{
		path:     path,
		defaults: defaults,
		logger:   logger,
	}
}

// Path returns the location of the configuration record
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted configuration merged over the defaults.
//
// A record that fails to parse yields exactly the defaults. A missing record
// is created from the defaults. Neither case returns an error; problems are
// logged.
func (s *Store) Load() Config {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error("Error reading config file: %v", err)
			return s.defaults
		}

		if err := s.Save(s.defaults); err != nil {
			s.logger.Error("Error creating config file: %v", err)
		} else {
			s.logger.Info("Created default config file at %s", s.path)
		}
		return s.defaults
	}

	cfg, err := s.decode(data)
	if err != nil {
		s.logger.Error("Error reading config file: %v", err)
		return s.defaults
	}
	return cfg
}

// Save writes cfg to the record, creating parent directories as needed
func (s *Store) Save(cfg Config) error {
	data, err := s.encode(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to encode config")
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "failed to create config directory")
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

// decode unmarshals data on top of a copy of the defaults, so keys missing
// from the record keep their default value and unknown keys are ignored
func (s *Store) decode(data []byte) (Config, error) {
	cfg := s.defaults

	if s.isYAML() {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "invalid YAML in %s", s.path)
		}
		return cfg, nil
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "invalid JSON in %s", s.path)
	}
	return cfg, nil
}

func (s *Store) encode(cfg Config) ([]byte, error) {
	if s.isYAML() {
		return yaml.Marshal(cfg)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Store) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(s.path))
	return ext == ".yaml" || ext == ".yml"
}
