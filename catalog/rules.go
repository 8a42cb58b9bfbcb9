package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// PriorityRule pins one product to the front of the rendered list.
// A rule with a SKU matches by SKU; otherwise it matches by exact name.
type PriorityRule struct {
	SKU  string `json:"sku,omitempty"`
	Name string `json:"name,omitempty"`
}

// Exclusions lists categories and exact product names that are dropped
// before ordering. Name matching trims surrounding whitespace and is
// case-sensitive.
type Exclusions struct {
	Categories []string `json:"categories"`
	Names      []string `json:"names"`
}

// Rules is the full ordering configuration for the products pipeline.
// Loaded once at startup and passed by value, so callers (and tests) can
// never observe a half-updated configuration.
type Rules struct {
	Priorities    []PriorityRule `json:"priorities"`
	CategoryOrder []string       `json:"categoryOrder"`
	Exclusions    Exclusions     `json:"exclusions"`
}

// DefaultRules returns the built-in configuration used when no rules file
// is configured
func DefaultRules() Rules {
	return Rules{
		Priorities: []PriorityRule{
			{SKU: "00015"},
			{SKU: "00014"},
		},
		CategoryOrder: []string{"Foliages", "Tropical Flowers"},
		Exclusions: Exclusions{
			Categories: []string{"Hydrangeas"},
			Names:      []string{"White"},
		},
	}
}

// LoadRules reads the ordering configuration from a JSON file.
// An empty path returns the built-in defaults.
func LoadRules(configPath string) (Rules, error) {
	if configPath == "" {
		log.Printf("✓ Catalog rules: using built-in defaults")
		return DefaultRules(), nil
	}

	// Resolve config path
	if !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return Rules{}, fmt.Errorf("failed to get working directory: %w", err)
		}
		configPath = filepath.Join(wd, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read catalog rules: %w", err)
	}

	var rules Rules
	if err := json.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("failed to parse catalog rules: %w", err)
	}

	if err := validateRules(rules); err != nil {
		return Rules{}, fmt.Errorf("invalid catalog rules: %w", err)
	}

	log.Printf("✅ Catalog rules: loaded %d priority rules, %d ordered categories from %s",
		len(rules.Priorities), len(rules.CategoryOrder), configPath)
	return rules, nil
}

func validateRules(rules Rules) error {
	for i, rule := range rules.Priorities {
		if rule.SKU == "" && rule.Name == "" {
			return fmt.Errorf("priority rule %d has neither sku nor name", i)
		}
	}
	return nil
}
