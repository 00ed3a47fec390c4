package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/tasks"
)

func TestConnectFlipsStatus(t *testing.T) {
	db := memdb(t)
	svc := NewIntegrationService(repos.NewIntegrationRepo(db), &tasks.Runner{})

	got, err := svc.Connect(context.Background(), "int-mailer")
	require.NoError(t, err)
	assert.Equal(t, "CONNECTED", got.Status)
	assert.NotEmpty(t, got.ConnectedAt)

	got, err = svc.Disconnect(context.Background(), "int-mailer")
	require.NoError(t, err)
	assert.Equal(t, "DISCONNECTED", got.Status)
	assert.Empty(t, got.ConnectedAt)
}

func TestConnectHandshakeFailureLeavesStateAlone(t *testing.T) {
	db := memdb(t)
	repo := repos.NewIntegrationRepo(db)
	runner := &tasks.Runner{
		Fail: func(name string) error {
			return errors.New("provider refused")
		},
	}
	svc := NewIntegrationService(repo, runner)

	_, err := svc.Connect(context.Background(), "int-mailer")
	require.Error(t, err)

	got, err := repo.Get("int-mailer")
	require.NoError(t, err)
	assert.Equal(t, "DISCONNECTED", got.Status)
}

func TestConnectUnknownIntegration(t *testing.T) {
	db := memdb(t)
	svc := NewIntegrationService(repos.NewIntegrationRepo(db), &tasks.Runner{})

	_, err := svc.Connect(context.Background(), "int-ghost")
	assert.Error(t, err)
}
