package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	appName       = "phya"
	catalogueFile = "targets.yaml"
)

//go:embed targets.yaml
var embeddedCatalogue []byte

var (
	validate = validator.New()

	// Mutex for thread-safe file operations
	fileMutex sync.Mutex
)

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/phya or $HOME/.config/phya
//   - macOS: $HOME/.config/phya (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\phya
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetCataloguePath returns the full path of the user's target override file.
func GetCataloguePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, catalogueFile), nil
}

// LoadCatalogue parses the catalogue compiled into the binary.
func LoadCatalogue() (*Catalogue, error) {
	return ParseCatalogue(embeddedCatalogue)
}

// LoadCatalogueFile parses a catalogue from disk.
func LoadCatalogueFile(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read target catalogue: %w", err)
	}
	catalogue, err := ParseCatalogue(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return catalogue, nil
}

// Load returns the catalogue for this run.
// An explicit path wins; otherwise the user's override file is used when it
// exists, and the embedded catalogue when it doesn't.
func Load(path string) (*Catalogue, error) {
	if path != "" {
		return LoadCatalogueFile(path)
	}

	userPath, err := GetCataloguePath()
	if err == nil {
		if _, statErr := os.Stat(userPath); statErr == nil {
			return LoadCatalogueFile(userPath)
		}
	}

	return LoadCatalogue()
}

// ParseCatalogue decodes and validates a YAML catalogue document.
func ParseCatalogue(data []byte) (*Catalogue, error) {
	var catalogue Catalogue
	if err := yaml.Unmarshal(data, &catalogue); err != nil {
		return nil, fmt.Errorf("failed to parse target catalogue: %w", err)
	}

	if catalogue.Version != 1 {
		return nil, fmt.Errorf("unsupported catalogue version: %d (expected 1)", catalogue.Version)
	}
	if len(catalogue.Targets) == 0 {
		return nil, errors.New("target catalogue is empty")
	}

	for name, target := range catalogue.Targets {
		if target == nil {
			return nil, fmt.Errorf("target %q has no settings", name)
		}
		target.Name = name
		target.BaseURL = strings.TrimRight(target.BaseURL, "/")
		if err := ValidateTarget(*target); err != nil {
			return nil, err
		}
	}

	if catalogue.Default == "" {
		catalogue.Default = TargetProduction
	}
	if _, ok := catalogue.Targets[catalogue.Default]; !ok {
		return nil, fmt.Errorf("default target %q not found in catalogue", catalogue.Default)
	}

	return &catalogue, nil
}

// ValidateTarget checks that a target carries a usable endpoint, tenant and contact.
func ValidateTarget(t Target) error {
	err := validate.Struct(t)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("target %q: %w", t.Name, err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s fails %q", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("target %q is invalid: %s", t.Name, strings.Join(problems, ", "))
}

// ExportCatalogue writes the embedded catalogue to path so that it can be edited.
// Performs an atomic write to prevent corruption on crash.
func ExportCatalogue(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, embeddedCatalogue, 0600); err != nil {
		return fmt.Errorf("failed to write temporary catalogue file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save catalogue file: %w", err)
	}

	return nil
}
