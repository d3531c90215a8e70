package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/marauders/internal/model"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ConfigFileNames are the recognised project configuration files, in lookup
// order.
var ConfigFileNames = []string{"marauder.toml", "marauder.yaml", "marauder.yml"}

// ConfigStore reads and writes the project configuration document.
type ConfigStore interface {
	// Find returns the configuration file in dir, if any.
	Find(dir m.Path) (m.Path, bool, error)
	// Load reads the configuration of the project rooted at dir. A project
	// without configuration file gets the defaults and an empty path.
	Load(dir m.Path) (m.ProjectConfig, m.Path, error)
	// Save writes cfg to path, picking the format from its extension.
	Save(path m.Path, cfg m.ProjectConfig) error
}

// UnsupportedConfigFormatError is returned for a configuration file that is
// neither TOML nor YAML.
type UnsupportedConfigFormatError struct {
	Path m.Path
}

func (e *UnsupportedConfigFormatError) Error() string {
	return fmt.Sprintf("unsupported configuration format: %s (want .toml, .yaml or .yml)", e.Path)
}

// LocalConfigStore is the file backed ConfigStore.
type LocalConfigStore struct{}

// NewConfigStore constructs a ConfigStore implementation.
func NewConfigStore() *LocalConfigStore {
	return &LocalConfigStore{}
}

// Find looks for the first of ConfigFileNames in dir.
func (s *LocalConfigStore) Find(dir m.Path) (m.Path, bool, error) {
	for _, name := range ConfigFileNames {
		path := filepath.Join(string(dir), name)

		_, err := os.Stat(path)
		if err == nil {
			return m.Path(path), true, nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return "", false, err
		}
	}

	return "", false, nil
}

// Load reads the configuration in dir. Keys missing from the file keep their
// default values; unknown keys are rejected.
func (s *LocalConfigStore) Load(dir m.Path) (m.ProjectConfig, m.Path, error) {
	cfg := m.DefaultProjectConfig()

	path, ok, err := s.Find(dir)
	if err != nil {
		return cfg, "", err
	}

	if !ok {
		return cfg, "", nil
	}

	// #nosec G304 - path is one of the fixed configuration names inside dir
	data, err := os.ReadFile(string(path))
	if err != nil {
		return cfg, "", err
	}

	if err := decodeConfig(path, data, &cfg); err != nil {
		return m.DefaultProjectConfig(), "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, path, nil
}

// Save encodes cfg in the format implied by the file extension.
func (s *LocalConfigStore) Save(path m.Path, cfg m.ProjectConfig) error {
	var (
		data []byte
		err  error
	)

	switch configFormat(path) {
	case "toml":
		data, err = toml.Marshal(cfg)
	case "yaml":
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err = enc.Encode(cfg); err == nil {
			err = enc.Close()
		}

		data = buf.Bytes()
	default:
		return &UnsupportedConfigFormatError{Path: path}
	}

	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), data, 0o600)
}

func decodeConfig(path m.Path, data []byte, cfg *m.ProjectConfig) error {
	switch configFormat(path) {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()

		return dec.Decode(cfg)
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		return nil
	default:
		return &UnsupportedConfigFormatError{Path: path}
	}
}

func configFormat(path m.Path) string {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}
