package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// LoadYAMLFile decodes the YAML document at path into out.
func LoadYAMLFile(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
