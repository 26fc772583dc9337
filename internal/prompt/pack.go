package prompt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"prdforge/internal/logging"
)

// Pack is the YAML form of an instruction pack. Sections are positional;
// their order is the document's fixed structure.
type Pack struct {
	Sections    []SectionSpec `yaml:"sections"`
	Assemble    string        `yaml:"assemble"`
	FinalReview string        `yaml:"final_review"`
}

// LoadPack reads a YAML instruction pack and builds a validated registry.
// Fields left empty in the pack fall back to the built-in instructions
// positionally, so a pack may override just the writer text of one section.
func LoadPack(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt pack: %w", err)
	}

	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse prompt pack: %w", err)
	}

	sections := pack.Sections
	if len(sections) == 0 {
		sections = defaultSections
	} else {
		for i := range sections {
			if i >= len(defaultSections) {
				break
			}
			if sections[i].Name == "" {
				sections[i].Name = defaultSections[i].Name
			}
			if sections[i].Writer == "" {
				sections[i].Writer = defaultSections[i].Writer
			}
			if sections[i].Reviewer == "" {
				sections[i].Reviewer = defaultSections[i].Reviewer
			}
		}
	}

	assemble := pack.Assemble
	if assemble == "" {
		assemble = defaultAssembleInstruction
	}
	finalReview := pack.FinalReview
	if finalReview == "" {
		finalReview = defaultFinalReviewInstruction
	}

	reg, err := NewRegistry(sections, assemble, finalReview)
	if err != nil {
		return nil, err
	}

	logging.Get(logging.CategoryPrompt).Info("loaded prompt pack %s: %d sections", path, reg.Count())
	return reg, nil
}
