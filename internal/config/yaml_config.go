package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"clauselens/internal/models"
)

// KeywordFile represents the structure of the optional keywords.yaml file.
// Operators use it to extend or override the built-in keyword table.
type KeywordFile struct {
	// Replace drops the built-in table entirely instead of merging.
	Replace  bool                  `yaml:"replace"`
	Keywords []models.KeywordEntry `yaml:"keywords"`
}

// LoadKeywordTable builds the effective keyword table: built-in defaults,
// optionally merged with (or replaced by) the file named in KEYWORDS_FILE.
// Path defaults to "keywords.yaml"; a missing file is not an error.
func LoadKeywordTable() (*models.KeywordTable, error) {
	path := getEnv("KEYWORDS_FILE", "keywords.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultKeywordTable(), nil
		}
		return nil, err
	}

	var file KeywordFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	table := models.NewKeywordTable()
	if !file.Replace {
		table = DefaultKeywordTable()
	}

	for _, e := range file.Keywords {
		if e.Phrase == "" {
			continue
		}
		if !models.ValidRiskLevel(e.RiskLevel) {
			return nil, fmt.Errorf("keyword %q has invalid risk level %q", e.Phrase, e.RiskLevel)
		}
		table.Set(e)
	}

	return table, nil
}
