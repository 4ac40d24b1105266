package message

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Templates holds the message wording. Placeholders in braces are
// substituted at render time: {name}, {amount}, {shop}, {description}.
type Templates struct {
	Reminder string `yaml:"reminder"`
	DueNote  string `yaml:"due_note"`
}

// DefaultTemplates returns the built-in wording.
func DefaultTemplates() Templates {
	return Templates{
		Reminder: "Dear {name}, this is a gentle reminder that your pending amount of {amount} is due at {shop}. Please settle it soon. Thank you! 🙏",
		DueNote:  "{name} you have due {amount} of {description}",
	}
}

// LoadTemplates reads a YAML template file. Keys left unset in the file
// keep their default wording.
func LoadTemplates(path string) (*Templates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates file: %w", err)
	}

	var templates Templates
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse templates file: %w", err)
	}
	return &templates, nil
}

// merge overlays non-empty fields of override onto t.
func (t Templates) merge(override *Templates) Templates {
	if override.Reminder != "" {
		t.Reminder = override.Reminder
	}
	if override.DueNote != "" {
		t.DueNote = override.DueNote
	}
	return t
}
