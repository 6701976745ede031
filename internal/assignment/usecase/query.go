package usecase

import (
	"context"
	"sort"
	"strings"

	"homework-assistant/internal/assignment"
	"homework-assistant/internal/model"
)

func (uc *implUseCase) Get(ctx context.Context, id string) (model.Assignment, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	a, err := uc.getLocked(id)
	if err != nil {
		return model.Assignment{}, err
	}
	return a.Clone(), nil
}

// Query returns copies of the matching assignments ordered by due date, then
// by creation sequence.
func (uc *implUseCase) Query(ctx context.Context, filter assignment.Filter) ([]model.Assignment, error) {
	uc.mu.RLock()
	out := make([]model.Assignment, 0, len(uc.items))
	for _, a := range uc.items {
		if filter.Match(a) {
			out = append(out, a.Clone())
		}
	}
	uc.mu.RUnlock()

	sortByDue(out)
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// KnownClasses returns the distinct class labels, compared case-insensitively
// and sorted.
func (uc *implUseCase) KnownClasses(ctx context.Context) []string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	seen := make(map[string]string, len(uc.items))
	for _, a := range uc.items {
		key := strings.ToLower(a.ClassName)
		if existing, ok := seen[key]; !ok || a.ClassName < existing {
			seen[key] = a.ClassName
		}
	}

	classes := make([]string, 0, len(seen))
	for _, name := range seen {
		classes = append(classes, name)
	}
	sort.Slice(classes, func(i, j int) bool {
		return strings.ToLower(classes[i]) < strings.ToLower(classes[j])
	})
	return classes
}

func (uc *implUseCase) Events(ctx context.Context) []model.AssignmentEvent {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]model.AssignmentEvent, len(uc.events))
	copy(out, uc.events)
	return out
}
