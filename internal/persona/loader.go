package persona

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cognos/internal/logging"
)

// overrideFile is the YAML shape accepted by LoadOverrides.
type overrideFile struct {
	Personas []Details `yaml:"personas"`
}

// LoadOverrides merges personas from a YAML file into the table. Entries
// with an existing id replace the built-in persona; new ids are appended.
// An entry without an id or prompt is rejected.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read persona overrides: %w", err)
	}

	var f overrideFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse persona overrides: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	for _, p := range f.Personas {
		if p.ID == "" || p.Prompt == "" {
			return fmt.Errorf("persona override missing id or prompt (id=%q)", p.ID)
		}
		replaced := false
		for i := range personas {
			if personas[i].ID == p.ID {
				personas[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			personas = append(personas, p)
		}
		logging.PromptDebug("Loaded persona override: %s (replaced=%v)", p.ID, replaced)
	}
	return nil
}
