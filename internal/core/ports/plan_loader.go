package ports

import "github.com/volthaus/meshsweep/internal/core/domain"

// PlanLoader defines the interface for loading a sweep plan.
//
//go:generate mockgen -source=plan_loader.go -destination=mocks/mock_plan_loader.go -package=mocks
type PlanLoader interface {
	// Load reads the plan from the given file path.
	Load(path string) (*domain.Plan, error)
}
