package roadmap

// Find returns a pointer to the module with the given id, or a
// ModuleNotFoundError.
func Find(modules []Module, id string) (*Module, error) {
	for i := range modules {
		if modules[i].ID == id {
			return &modules[i], nil
		}
	}
	return nil, &ModuleNotFoundError{ModuleID: id}
}

// UnlockedIDs returns the ids of all modules currently unlocked,
// in roadmap order.
func UnlockedIDs(modules []Module) []string {
	var ids []string
	for i := range modules {
		if modules[i].Status == StatusUnlocked {
			ids = append(ids, modules[i].ID)
		}
	}
	return ids
}

// CompletedSet returns the set of completed module ids.
func CompletedSet(modules []Module) map[string]bool {
	done := make(map[string]bool)
	for i := range modules {
		if modules[i].Status == StatusCompleted {
			done[modules[i].ID] = true
		}
	}
	return done
}

// PrereqsCompleted reports whether every prerequisite of m is completed.
func PrereqsCompleted(modules []Module, m *Module) bool {
	done := CompletedSet(modules)
	for _, id := range m.Prerequisites {
		if !done[id] {
			return false
		}
	}
	return true
}

// Finished reports whether every module is completed.
func Finished(modules []Module) bool {
	for i := range modules {
		if modules[i].Status != StatusCompleted {
			return false
		}
	}
	return len(modules) > 0
}

// UnlockFirstEligible scans modules in order and unlocks the first one
// that is not completed and whose prerequisites are all completed.
// It is a no-op when a module is already unlocked, and idempotent when
// invoked repeatedly with no intervening state change. Returns the id of
// the module unlocked by this call, or "" when nothing changed.
//
// Finding more than one unlocked module is a bug elsewhere and returns
// an InvariantError.
func UnlockFirstEligible(modules []Module) (string, error) {
	if unlocked := UnlockedIDs(modules); len(unlocked) > 1 {
		return "", &InvariantError{Unlocked: unlocked}
	} else if len(unlocked) == 1 {
		return "", nil
	}

	done := CompletedSet(modules)
	for i := range modules {
		m := &modules[i]
		if m.Status == StatusCompleted {
			continue
		}
		eligible := true
		for _, id := range m.Prerequisites {
			if !done[id] {
				eligible = false
				break
			}
		}
		if eligible {
			m.Status = StatusUnlocked
			return m.ID, nil
		}
	}
	return "", nil
}

// MarkCompleted transitions an unlocked module to completed, records the
// assessment score, and unlocks the next eligible module. Returns the id
// of the newly unlocked module ("" when the curriculum is finished).
func MarkCompleted(modules []Module, id string, score int) (string, error) {
	m, err := Find(modules, id)
	if err != nil {
		return "", err
	}
	if m.Status != StatusUnlocked {
		return "", &InvalidTransitionError{ModuleID: id, From: m.Status, To: StatusCompleted}
	}
	m.Status = StatusCompleted
	m.AssessmentScore = &score

	return UnlockFirstEligible(modules)
}

// MarkFailed transitions an unlocked module to failed and records the
// assessment score. The module stays retakeable; nothing is unlocked.
func MarkFailed(modules []Module, id string, score int) error {
	m, err := Find(modules, id)
	if err != nil {
		return err
	}
	if m.Status != StatusUnlocked {
		return &InvalidTransitionError{ModuleID: id, From: m.Status, To: StatusFailed}
	}
	m.Status = StatusFailed
	m.AssessmentScore = &score
	return nil
}

// Retake transitions a failed module back to unlocked, once remedial
// time has been scheduled. Refuses when any other module is unlocked,
// since that would break the single-unlocked invariant.
func Retake(modules []Module, id string) error {
	m, err := Find(modules, id)
	if err != nil {
		return err
	}
	if m.Status != StatusFailed {
		return &InvalidTransitionError{ModuleID: id, From: m.Status, To: StatusUnlocked}
	}
	if unlocked := UnlockedIDs(modules); len(unlocked) > 0 {
		return &InvariantError{Unlocked: append(unlocked, id)}
	}
	m.Status = StatusUnlocked
	return nil
}
