package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/mcpstack/tool-bootstrap/internal/fsutil"
	"github.com/mcpstack/tool-bootstrap/internal/names"
)

// Store reads and writes the config file at a fixed path.
type Store struct {
	path      string
	validator *Validator
	log       *log.Logger
}

// NewStore creates a Store for the config file at path.
func NewStore(path string, logger *log.Logger) (*Store, error) {
	v, err := NewValidator()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{path: path, validator: v, log: logger}, nil
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}

// Save overwrites the config file with n. The write is atomic.
func (s *Store) Save(n names.NameSet) error {
	data, err := Marshal(Config{Names: n})
	if err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	s.log.Debug("config saved", "path", s.path)
	return nil
}

// Load reads the config file. It never fails: a missing, unreadable,
// unparsable or schema-violating file yields an absent result, logged at
// debug level.
func (s *Store) Load() LoadResult {
	data, err := os.ReadFile(s.path)
	if err != nil {
		reason := "unreadable"
		if errors.Is(err, fs.ErrNotExist) {
			reason = "not found"
		}
		s.log.Debug("config absent", "path", s.path, "reason", reason, "err", err)
		return absent(reason)
	}

	if err := s.validator.Validate(data); err != nil {
		s.log.Debug("config absent", "path", s.path, "reason", "schema", "err", err)
		return absent("schema: " + err.Error())
	}

	cfg, err := Unmarshal(data)
	if err != nil {
		s.log.Debug("config absent", "path", s.path, "reason", "parse", "err", err)
		return absent("parse: " + err.Error())
	}

	s.log.Debug("config loaded", "path", s.path)
	return present(cfg)
}

// Marshal encodes cfg as two-space indented JSON with a trailing newline.
func Marshal(cfg Config) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return append(data, '\n'), nil
}

// Unmarshal strictly decodes a config document: unknown fields and trailing
// data are rejected.
func Unmarshal(data []byte) (Config, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	if dec.More() {
		return Config{}, errors.New("trailing data after config object")
	}
	return cfg, nil
}
