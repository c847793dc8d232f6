package oracle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/studyplan/internal/roadmap"
)

// planFile is the on-disk curriculum format for offline planning. It
// mirrors the planning schema so hand-written plans and model output
// stay interchangeable.
type planFile struct {
	Modules []planFileModule `yaml:"modules"`
}

type planFileModule struct {
	ModuleID       string   `yaml:"module_id"`
	Title          string   `yaml:"title"`
	Prerequisites  []string `yaml:"prerequisites"`
	EstimatedHours int      `yaml:"estimated_hours"`
}

// LoadPlanFile reads a curriculum from a YAML file, bypassing the
// model. The result is validated the same way a planned curriculum is.
func LoadPlanFile(path string) ([]roadmap.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}

	var pf planFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse plan file %s: %w", path, err)
	}

	modules := make([]roadmap.Module, 0, len(pf.Modules))
	for _, m := range pf.Modules {
		prereqs := m.Prerequisites
		if prereqs == nil {
			prereqs = []string{}
		}
		modules = append(modules, roadmap.Module{
			ID:             m.ModuleID,
			Title:          m.Title,
			Prerequisites:  prereqs,
			EstimatedHours: m.EstimatedHours,
			Status:         roadmap.StatusLocked,
		})
	}

	if err := roadmap.Validate(modules); err != nil {
		return nil, fmt.Errorf("validate plan file %s: %w", path, err)
	}
	return modules, nil
}
