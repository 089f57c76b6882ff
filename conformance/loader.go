package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSuite reads and parses one YAML suite file
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &suite, nil
}

// LoadDir loads every .yaml suite under dir
func LoadDir(dir string) ([]*Suite, error) {
	var suites []*Suite
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}
		suite, err := LoadSuite(path)
		if err != nil {
			return err
		}
		suites = append(suites, suite)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return suites, nil
}
