package scenario

import (
	"fmt"

	"github.com/SiliconWit/mechanics-of-materials/internal/codec"
)

// Load reads a scenario document from a JSON or YAML file and validates it
func Load(path string) (*Scenario, error) {
	var s Scenario
	if err := codec.DecodeFile(path, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// Save writes the scenario to path, choosing JSON or YAML by extension
func (s *Scenario) Save(path string) error {
	return codec.EncodeFile(path, s)
}
