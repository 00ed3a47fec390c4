package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
)

func authSvc(t *testing.T) *AuthService {
	t.Helper()
	db := memdb(t)
	return &AuthService{
		Users:  repos.NewUserRepo(db),
		Secret: []byte("test_secret"),
		TTL:    time.Hour,
	}
}

func TestLoginAndCurrentUser(t *testing.T) {
	svc := authSvc(t)

	token, u, err := svc.Login("admin@vendorsphere.test", "Passw0rd!")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	got, err := svc.CurrentUser(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Email, got.Email)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := authSvc(t)

	_, _, err := svc.Login("admin@vendorsphere.test", "wrong")
	assert.ErrorIs(t, err, ErrBadCreds)

	_, _, err = svc.Login("ghost@vendorsphere.test", "Passw0rd!")
	assert.ErrorIs(t, err, ErrBadCreds)
}

func TestCurrentUserRejectsBadTokens(t *testing.T) {
	svc := authSvc(t)

	_, err := svc.CurrentUser("not-a-token")
	assert.ErrorIs(t, err, ErrBadToken)

	// token signed with a different secret
	other := &AuthService{Users: svc.Users, Secret: []byte("other_secret"), TTL: time.Hour}
	token, _, err := other.Login("admin@vendorsphere.test", "Passw0rd!")
	require.NoError(t, err)
	_, err = svc.CurrentUser(token)
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestCurrentUserRejectsExpiredToken(t *testing.T) {
	svc := authSvc(t)
	svc.TTL = -time.Minute

	token, _, err := svc.Login("admin@vendorsphere.test", "Passw0rd!")
	require.NoError(t, err)

	_, err = svc.CurrentUser(token)
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestUpdateProfile(t *testing.T) {
	svc := authSvc(t)

	_, u, err := svc.Login("rosa@vendorsphere.test", "Passw0rd!")
	require.NoError(t, err)

	got, err := svc.UpdateProfile(u.ID, "Rosa M.", "rosa.m@vendorsphere.test")
	require.NoError(t, err)
	assert.Equal(t, "Rosa M.", got.Name)
	assert.Equal(t, "rosa.m@vendorsphere.test", got.Email)
}
