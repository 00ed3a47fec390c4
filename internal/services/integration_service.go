package services

import (
	"context"
	"time"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/tasks"
)

// IntegrationService flips integration connection state through the task
// runner, which models the latency (and possible failure) of the provider
// handshake.
type IntegrationService struct {
	Integrations *repos.IntegrationRepo
	Runner       *tasks.Runner
}

func NewIntegrationService(integrations *repos.IntegrationRepo, runner *tasks.Runner) *IntegrationService {
	return &IntegrationService{Integrations: integrations, Runner: runner}
}

func (s *IntegrationService) List() ([]domain.Integration, error) {
	return s.Integrations.List()
}

// Connect performs the simulated provider handshake and marks the
// integration CONNECTED. Blocks until the task completes or ctx is
// cancelled.
func (s *IntegrationService) Connect(ctx context.Context, id string) (*domain.Integration, error) {
	if _, err := s.Integrations.Get(id); err != nil {
		return nil, err
	}
	done := s.Runner.Run(ctx, "integration.connect:"+id, func() error {
		return s.Integrations.SetStatus(id, "CONNECTED", time.Now().UTC().Format(time.RFC3339))
	})
	if err := tasks.Await(ctx, done); err != nil {
		return nil, err
	}
	return s.Integrations.Get(id)
}

func (s *IntegrationService) Disconnect(ctx context.Context, id string) (*domain.Integration, error) {
	if _, err := s.Integrations.Get(id); err != nil {
		return nil, err
	}
	done := s.Runner.Run(ctx, "integration.disconnect:"+id, func() error {
		return s.Integrations.SetStatus(id, "DISCONNECTED", "")
	})
	if err := tasks.Await(ctx, done); err != nil {
		return nil, err
	}
	return s.Integrations.Get(id)
}
