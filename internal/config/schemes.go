package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"course-graph/internal/mappers"
)

// SchemesFile is the YAML table of subject classification schemes:
//
//	schemes:
//	  - type: courseDataProgramme:JACS3
//	    framework: JACS
//	    alignment_type: EducationalSubject
type SchemesFile struct {
	Schemes []mappers.Scheme `yaml:"schemes"`
}

// LoadSchemes reads a scheme table. An empty path gives the built-in table.
func LoadSchemes(path string) ([]mappers.Scheme, error) {
	if strings.TrimSpace(path) == "" {
		return mappers.DefaultSchemes(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read schemes file %s: %w", path, err)
	}
	return ParseSchemes(data)
}

// ParseSchemes parses and validates a scheme table.
func ParseSchemes(data []byte) ([]mappers.Scheme, error) {
	var f SchemesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parse schemes: %w", err)
	}

	out := make([]mappers.Scheme, 0, len(f.Schemes))
	seen := map[string]bool{}
	for i, s := range f.Schemes {
		s.Type = strings.TrimSpace(s.Type)
		s.Framework = strings.TrimSpace(s.Framework)
		if s.Type == "" || s.Framework == "" {
			return nil, fmt.Errorf("config: scheme %d: type and framework are required", i)
		}
		if seen[s.Type] {
			return nil, fmt.Errorf("config: scheme %q declared twice", s.Type)
		}
		seen[s.Type] = true
		if strings.TrimSpace(s.AlignmentType) == "" {
			s.AlignmentType = "EducationalSubject"
		}
		out = append(out, s)
	}
	return out, nil
}
