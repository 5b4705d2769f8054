package classify

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rubicon/gylr-go/internal/models"
)

//go:embed keywords.yaml
var keywordsYAML []byte

// KeywordEntry associates one category with its keyword list.
type KeywordEntry struct {
	Category models.Category `yaml:"category"`
	Keywords []string        `yaml:"keywords"`
}

// keywordTable is the fixed priority table, decoded once at startup.
// Entries are an explicit ordered list so tie-breaking does not depend
// on map iteration order.
var keywordTable = mustLoadKeywords()

func mustLoadKeywords() []KeywordEntry {
	var entries []KeywordEntry
	if err := yaml.Unmarshal(keywordsYAML, &entries); err != nil {
		panic(fmt.Sprintf("classify: invalid embedded keyword table: %v", err))
	}
	for _, e := range entries {
		if e.Category == models.CategoryUncategorized {
			panic("classify: keyword table must not contain uncategorized")
		}
	}
	return entries
}

// KeywordTable returns the ordered (category, keywords) priority table.
// The returned slice must not be modified.
func KeywordTable() []KeywordEntry {
	return keywordTable
}
