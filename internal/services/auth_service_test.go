package services

import (
	"testing"

	"napoli_club_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authServiceFixture struct {
	svc        AuthService
	authRepo   *fakeAuthRepo
	playerRepo *fakePlayerRepo
	playerID   int64
}

func newAuthServiceForTest(t *testing.T) *authServiceFixture {
	t.Helper()

	authRepo := newFakeAuthRepo()
	playerRepo := newFakePlayerRepo()

	playerSvc := NewPlayerService(playerRepo, nil)
	player, err := playerSvc.CreatePlayer(CreatePlayerRequest{
		IDNumber:  "9001015009087",
		FirstName: strPtr("Gio"),
		LastName:  strPtr("Rossi"),
	})
	require.NoError(t, err)

	return &authServiceFixture{
		svc:        NewAuthService(authRepo, playerRepo, nil),
		authRepo:   authRepo,
		playerRepo: playerRepo,
		playerID:   player.ID,
	}
}

func (fx *authServiceFixture) seedUser(t *testing.T, username, password string, isStaff bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = fx.authRepo.CreateUser(nil, &models.User{
		Username:  username,
		FirstName: "Coach",
		LastName:  "Conte",
		IsStaff:   isStaff,
	}, string(hash))
	require.NoError(t, err)
}

func TestRegisterPlayerAsUser(t *testing.T) {
	fx := newAuthServiceForTest(t)

	require.NoError(t, fx.svc.RegisterPlayerAsUser(fx.playerID))

	// Username is the player's id_number; names are copied; not staff.
	user, _, err := fx.authRepo.FindUserByUsername("9001015009087")
	require.NoError(t, err)
	assert.Equal(t, "Gio", user.FirstName)
	assert.Equal(t, "Rossi", user.LastName)
	assert.False(t, user.IsStaff)

	// A second registration for the same player fails.
	assert.ErrorIs(t, fx.svc.RegisterPlayerAsUser(fx.playerID), ErrUserAlreadyExists)
}

func TestRegisterPlayerAsUserPlayerNotFound(t *testing.T) {
	fx := newAuthServiceForTest(t)
	assert.ErrorIs(t, fx.svc.RegisterPlayerAsUser(404), ErrPlayerNotFound)
}

func TestRegisteredPlayerCanLoginWithDefaultPassword(t *testing.T) {
	fx := newAuthServiceForTest(t)

	require.NoError(t, fx.svc.RegisterPlayerAsUser(fx.playerID))

	resp, err := fx.svc.Login(LoginRequest{Username: "9001015009087", Password: "napoliNSC"})
	require.NoError(t, err)
	assert.Equal(t, models.RolePlayer, resp.Role)
	assert.Equal(t, "Gio", resp.FirstName)
	assert.Equal(t, "Rossi", resp.LastName)
	assert.Len(t, resp.Token, 40)
}

func TestLoginRoleDerivation(t *testing.T) {
	fx := newAuthServiceForTest(t)
	fx.seedUser(t, "manager1", "s3cretpass", true)
	fx.seedUser(t, "player1", "s3cretpass", false)

	resp, err := fx.svc.Login(LoginRequest{Username: "manager1", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, resp.Role)

	resp, err = fx.svc.Login(LoginRequest{Username: "player1", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.Equal(t, models.RolePlayer, resp.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	fx := newAuthServiceForTest(t)
	fx.seedUser(t, "manager1", "s3cretpass", true)

	// Unknown username and wrong password produce the same error, so
	// callers cannot enumerate accounts.
	_, wrongPassErr := fx.svc.Login(LoginRequest{Username: "manager1", Password: "wrong"})
	_, unknownUserErr := fx.svc.Login(LoginRequest{Username: "ghost", Password: "s3cretpass"})

	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUserErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr, unknownUserErr)
}

func TestLoginTokenIssuanceIsIdempotent(t *testing.T) {
	fx := newAuthServiceForTest(t)
	fx.seedUser(t, "manager1", "s3cretpass", true)

	first, err := fx.svc.Login(LoginRequest{Username: "manager1", Password: "s3cretpass"})
	require.NoError(t, err)
	second, err := fx.svc.Login(LoginRequest{Username: "manager1", Password: "s3cretpass"})
	require.NoError(t, err)

	assert.Equal(t, first.Token, second.Token)
	assert.Len(t, fx.authRepo.tokens, 1)
}

func TestFindUserByToken(t *testing.T) {
	fx := newAuthServiceForTest(t)
	fx.seedUser(t, "manager1", "s3cretpass", true)

	resp, err := fx.svc.Login(LoginRequest{Username: "manager1", Password: "s3cretpass"})
	require.NoError(t, err)

	user, err := fx.svc.FindUserByToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "manager1", user.Username)
	assert.True(t, user.IsStaff)

	_, err = fx.svc.FindUserByToken("deadbeef")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
