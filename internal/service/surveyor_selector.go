package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"

	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"
)

// Surveyor selection strategies.
const (
	StrategyFirst      = "first"
	StrategyRoundRobin = "round_robin"
	StrategyRandom     = "random"
)

// SurveyorSelectorService implements ports.SurveyorSelector. Which officer
// is chosen is not deterministic across processes: round-robin state is
// per instance.
type SurveyorSelectorService struct {
	dir      ports.DirectoryResolver
	strategy string
	next     atomic.Uint64
}

// NewSurveyorSelector creates a selector for one of the Strategy* names.
func NewSurveyorSelector(dir ports.DirectoryResolver, strategy string) (*SurveyorSelectorService, error) {
	switch strategy {
	case StrategyFirst, StrategyRoundRobin, StrategyRandom:
	default:
		return nil, fmt.Errorf("unknown surveyor strategy %q", strategy)
	}
	return &SurveyorSelectorService{dir: dir, strategy: strategy}, nil
}

// Select returns an eligible officer, or nil when the directory has none.
func (s *SurveyorSelectorService) Select(ctx context.Context) (*domain.Identity, error) {
	officers, err := s.dir.FindOfficers(ctx)
	if err != nil {
		return nil, err
	}
	if len(officers) == 0 {
		return nil, nil
	}

	var i int
	switch s.strategy {
	case StrategyRoundRobin:
		i = int((s.next.Add(1) - 1) % uint64(len(officers)))
	case StrategyRandom:
		i = rand.IntN(len(officers))
	}
	chosen := officers[i]
	return &chosen, nil
}
