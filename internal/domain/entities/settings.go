package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const defaultPackagesConfig = "packages.config"

// ErrNoChecks is returned when a settings file declares nothing to check.
var ErrNoChecks = errors.New("at least one check must be configured")

// ErrDuplicateCheckName is returned when two checks end up with the same name,
// including names defaulted from the nuspec file name.
var ErrDuplicateCheckName = errors.New("check names must be unique")

// Settings is the top-level configuration of a batch run.
type Settings struct {
	Checks  []CheckSettings `yaml:"checks"`
	Options RunSettings     `yaml:"options"`
}

// CheckSettings describes the three files of one package to verify.
type CheckSettings struct {
	Name           string `yaml:"name"`
	Project        string `yaml:"project"`
	Nuspec         string `yaml:"nuspec"`
	PackagesConfig string `yaml:"packages_config"` // defaults to packages.config next to the project
}

// RunSettings holds options applying to every check.
type RunSettings struct {
	AllowMissingPackagesConfig bool `yaml:"allow_missing_packages_config"`
	FailFast                   bool `yaml:"fail_fast"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a settings file, expanding environment
// variables and resolving paths relative to the file's directory.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	baseDir := filepath.Dir(path)
	for i := range settings.Checks {
		check := &settings.Checks[i]
		check.Project = resolvePath(baseDir, check.Project)
		check.Nuspec = resolvePath(baseDir, check.Nuspec)
		if check.PackagesConfig == "" && check.Project != "" {
			check.PackagesConfig = filepath.Join(filepath.Dir(check.Project), defaultPackagesConfig)
		} else {
			check.PackagesConfig = resolvePath(baseDir, check.PackagesConfig)
		}
		if check.Name == "" {
			check.Name = filepath.Base(check.Nuspec)
		}
	}

	if validateErr := validateSettings(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a settings file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".nugetcheck.yaml",
		".nugetcheck.yml",
		"nugetcheck.yaml",
		"nugetcheck.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// resolvePath expands ${ENV_VAR} references and anchors relative paths at baseDir.
func resolvePath(baseDir, raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if resolved == "" || filepath.IsAbs(resolved) {
		return resolved
	}
	return filepath.Join(baseDir, resolved)
}

// validateSettings checks for required configuration values.
func validateSettings(settings *Settings) error {
	if len(settings.Checks) == 0 {
		return ErrNoChecks
	}

	firstIndexByName := make(map[string]int, len(settings.Checks))
	for i, check := range settings.Checks {
		if first, found := firstIndexByName[check.Name]; found {
			return fmt.Errorf("%w: checks[%d] and checks[%d] are both named %q", ErrDuplicateCheckName, first, i, check.Name)
		}
		firstIndexByName[check.Name] = i

		if check.Project == "" {
			return fmt.Errorf("checks[%d].project is required", i)
		}
		if check.Nuspec == "" {
			return fmt.Errorf("checks[%d].nuspec is required", i)
		}
	}

	return nil
}
