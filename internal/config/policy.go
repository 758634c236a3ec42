package config

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrPolicyParsing = errors.New("structure policy parsing failed")

//go:embed policy/structure.yaml
var defaultPolicy []byte

// ProjectPlaceholder is substituted with the project name in policy entries.
const ProjectPlaceholder = "{project}"

// StructurePolicy lists the entries a project root must and may contain.
// Allowed entries may be glob patterns.
type StructurePolicy struct {
	Required []string `yaml:"required"`
	Allowed  []string `yaml:"allowed"`
}

// DefaultStructurePolicy returns the policy shipped with the binary.
func DefaultStructurePolicy() *StructurePolicy {
	p, err := ParseStructurePolicy(defaultPolicy)
	if err != nil {
		panic(fmt.Sprintf("embedded structure policy is invalid: %v", err))
	}
	return p
}

// ParseStructurePolicy decodes a YAML policy document.
func ParseStructurePolicy(data []byte) (*StructurePolicy, error) {
	p := &StructurePolicy{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPolicyParsing, err)
	}
	if len(p.Required) == 0 {
		return nil, fmt.Errorf("%w: no required entries", ErrPolicyParsing)
	}
	return p, nil
}

// RequiredFor expands the required entries for a given project name.
func (p *StructurePolicy) RequiredFor(project string) []string {
	out := make([]string, 0, len(p.Required))
	for _, r := range p.Required {
		out = append(out, strings.ReplaceAll(r, ProjectPlaceholder, project))
	}
	return out
}
