package roadmap

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on a roadmap.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(modules []Module) error {
	var errs []string

	if len(modules) == 0 {
		return fmt.Errorf("roadmap validation failed:\n  roadmap has no modules")
	}

	idSet := make(map[string]bool, len(modules))
	for _, m := range modules {
		if idSet[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module ID: %q", m.ID))
		}
		idSet[m.ID] = true

		if m.EstimatedHours <= 0 {
			errs = append(errs, fmt.Sprintf("module %q: EstimatedHours must be > 0, got %d", m.ID, m.EstimatedHours))
		}
	}

	// Check for dangling prerequisites
	for _, m := range modules {
		for _, prereqID := range m.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("module %q references nonexistent prerequisite %q", m.ID, prereqID))
			}
		}
	}

	// Check for cycles using Kahn's algorithm
	inDegree := make(map[string]int, len(modules))
	adjList := make(map[string][]string)
	for _, m := range modules {
		inDegree[m.ID] = len(m.Prerequisites)
		for _, prereqID := range m.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], m.ID)
		}
	}

	var queue []string
	for _, m := range modules {
		if inDegree[m.ID] == 0 {
			queue = append(queue, m.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(modules) {
		var cycleNodes []string
		for _, m := range modules {
			if inDegree[m.ID] > 0 {
				cycleNodes = append(cycleNodes, m.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving modules: %s", strings.Join(cycleNodes, ", ")))
	}

	// Check at least one root
	hasRoot := false
	for _, m := range modules {
		if len(m.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no root modules found (at least one module must have no prerequisites)")
	}

	// At most one module may be unlocked.
	if unlocked := UnlockedIDs(modules); len(unlocked) > 1 {
		errs = append(errs, fmt.Sprintf("%d modules unlocked (%s), want at most 1",
			len(unlocked), strings.Join(unlocked, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("roadmap validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
