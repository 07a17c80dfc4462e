package chat

import (
	"fmt"
	"os"

	"github.com/abuhisan/coffee-backend/internal/product"
	"gopkg.in/yaml.v3"
)

// IntentSpec is the YAML form of an intent. Tag or Category, when set,
// attach the matching catalog products to the reply.
type IntentSpec struct {
	Name        string   `yaml:"name"`
	Keywords    []string `yaml:"keywords"`
	Text        string   `yaml:"text"`
	Tag         string   `yaml:"tag"`
	Category    string   `yaml:"category"`
	Suggestions []string `yaml:"suggestions"`
}

type intentsFile struct {
	Intents []IntentSpec `yaml:"intents"`
}

func (s IntentSpec) Intent() (Intent, error) {
	if s.Name == "" {
		return Intent{}, fmt.Errorf("intent without name")
	}
	if len(s.Keywords) == 0 {
		return Intent{}, fmt.Errorf("intent %q has no keywords", s.Name)
	}
	in := Intent{Name: s.Name, Keywords: s.Keywords, Suggestions: s.Suggestions}
	switch {
	case s.Tag != "":
		in.Reply = withTag(s.Tag, s.Text)
	case s.Category != "":
		cat, ok := product.ParseCategory(s.Category)
		if !ok {
			return Intent{}, fmt.Errorf("intent %q: unknown category %q", s.Name, s.Category)
		}
		in.Reply = withCategory(cat, s.Text)
	default:
		in.Reply = textOnly(s.Text)
	}
	return in, nil
}

// LoadIntents reads the intent list from a YAML file, keeping the file's
// order. An empty path gives the built-in intents.
func LoadIntents(path string) ([]Intent, error) {
	if path == "" {
		return DefaultIntents(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read intents: %w", err)
	}
	var f intentsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse intents: %w", err)
	}
	if len(f.Intents) == 0 {
		return nil, fmt.Errorf("intents file %s is empty", path)
	}

	out := make([]Intent, 0, len(f.Intents))
	for _, s := range f.Intents {
		in, err := s.Intent()
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}
