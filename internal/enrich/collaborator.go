// Package enrich provides best-effort task enrichments: brand logo
// lookup and automatic subtask generation. Every caller must behave
// correctly when these never succeed.
package enrich

import "context"

// Collaborator is the external generative-AI dependency. Both calls
// are best effort; an empty result and an error are treated the same
// by callers ("no enrichment available").
type Collaborator interface {
	// LookupBrandDomain resolves a brand name to its primary website
	// domain (e.g. "starbucks.com"). Returns "" when the name is not a
	// recognizable brand.
	LookupBrandDomain(ctx context.Context, name string) (string, error)

	// GenerateSubtasks produces 3-5 short actionable subtask titles
	// for the given task title.
	GenerateSubtasks(ctx context.Context, taskTitle string) ([]string, error)
}

// Nop is the collaborator used when no AI backend is configured.
type Nop struct{}

func (Nop) LookupBrandDomain(ctx context.Context, name string) (string, error) {
	return "", nil
}

func (Nop) GenerateSubtasks(ctx context.Context, taskTitle string) ([]string, error) {
	return nil, nil
}
