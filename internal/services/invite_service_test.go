package services

import (
	"testing"

	"github.com/srashed001/pug-backend-sub000/internal/apperrors"
	"github.com/srashed001/pug-backend-sub000/internal/models"
	"github.com/stretchr/testify/require"
)

func newInviteService(env testEnv) *InviteService {
	return NewInviteService(env.inviteRepo, env.gameRepo, env.userRepo)
}

func TestInviteService_Create(t *testing.T) {
	env := setupTestEnv(t)
	svc := newInviteService(env)

	env.createUser(t, "host")
	env.createUser(t, "guest")
	game := env.createGame(t, "host")

	invite, err := svc.Create(CreateInput{
		GameID:       game.ID,
		FromUsername: "host",
		ToUsername:   "guest",
	})
	require.NoError(t, err)
	require.Equal(t, models.InviteStatusPending, invite.Status)

	// a second pending invite for the same game and recipient is rejected
	_, err = svc.Create(CreateInput{
		GameID:       game.ID,
		FromUsername: "host",
		ToUsername:   "guest",
	})
	require.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))
}

func TestInviteService_Create_PendingFromInactiveSenderDoesNotBlock(t *testing.T) {
	env := setupTestEnv(t)
	svc := newInviteService(env)

	env.createUser(t, "host")
	env.createUser(t, "other")
	env.createUser(t, "guest")
	game := env.createGame(t, "host")

	_, err := svc.Create(CreateInput{
		GameID:       game.ID,
		FromUsername: "other",
		ToUsername:   "guest",
	})
	require.NoError(t, err)

	env.deactivateUser(t, "other")

	// the stale pending from a deactivated sender no longer blocks
	_, err = svc.Create(CreateInput{
		GameID:       game.ID,
		FromUsername: "host",
		ToUsername:   "guest",
	})
	require.NoError(t, err)
}

func TestInviteService_Create_InactiveParties(t *testing.T) {
	env := setupTestEnv(t)
	svc := newInviteService(env)

	env.createUser(t, "host")
	env.createUser(t, "guest")
	game := env.createGame(t, "host")

	require.NoError(t, env.gameRepo.SetActive(game.ID, false, "host"))

	_, err := svc.Create(CreateInput{
		GameID:       game.ID,
		FromUsername: "host",
		ToUsername:   "guest",
	})
	require.True(t, apperrors.IsKind(err, apperrors.KindInactive))

	_, err = svc.Create(CreateInput{
		GameID:       game.ID + 1,
		FromUsername: "host",
		ToUsername:   "guest",
	})
	require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestInviteService_Update_AcceptEnrollsPlayer(t *testing.T) {
	env := setupTestEnv(t)
	svc := newInviteService(env)

	env.createUser(t, "host")
	env.createUser(t, "guest")
	game := env.createGame(t, "host")

	invite, err := svc.Create(CreateInput{
		GameID:       game.ID,
		FromUsername: "host",
		ToUsername:   "guest",
	})
	require.NoError(t, err)

	updated, err := svc.Update(invite.ID, "guest", models.InviteStatusAccepted)
	require.NoError(t, err)
	require.Equal(t, models.InviteStatusAccepted, updated.Status)

	_, err = env.gameRepo.FindPlayer(game.ID, "guest")
	require.NoError(t, err)
}

func TestInviteService_Update_Authorization(t *testing.T) {
	env := setupTestEnv(t)
	svc := newInviteService(env)

	env.createUser(t, "host")
	env.createUser(t, "guest")
	env.createUser(t, "stranger")
	game := env.createGame(t, "host")

	invite, err := svc.Create(CreateInput{
		GameID:       game.ID,
		FromUsername: "host",
		ToUsername:   "guest",
	})
	require.NoError(t, err)

	// only the recipient may accept or deny
	_, err = svc.Update(invite.ID, "host", models.InviteStatusAccepted)
	require.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))

	// only the sender may cancel
	_, err = svc.Update(invite.ID, "guest", models.InviteStatusCancelled)
	require.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))

	_, err = svc.Update(invite.ID, "stranger", models.InviteStatusDenied)
	require.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
}

func TestInviteService_Update_TerminalStates(t *testing.T) {
	env := setupTestEnv(t)
	svc := newInviteService(env)

	env.createUser(t, "host")
	env.createUser(t, "guest")
	game := env.createGame(t, "host")

	invite, err := svc.Create(CreateInput{
		GameID:       game.ID,
		FromUsername: "host",
		ToUsername:   "guest",
	})
	require.NoError(t, err)

	_, err = svc.Update(invite.ID, "guest", models.InviteStatusDenied)
	require.NoError(t, err)

	// a denied invite cannot move again
	_, err = svc.Update(invite.ID, "guest", models.InviteStatusAccepted)
	require.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))

	// repeating the current status is rejected
	_, err = svc.Update(invite.ID, "guest", models.InviteStatusDenied)
	require.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))

	// nothing may return to pending
	_, err = svc.Update(invite.ID, "guest", models.InviteStatusPending)
	require.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))

	_, err = svc.Update(invite.ID, "guest", "resolved")
	require.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))
}

func TestInviteService_CreateGroup_Atomic(t *testing.T) {
	env := setupTestEnv(t)
	svc := newInviteService(env)

	env.createUser(t, "host")
	env.createUser(t, "guest1")
	env.createUser(t, "guest2")
	game := env.createGame(t, "host")

	// guest2 already holds a pending invite, so the whole group fails
	_, err := svc.Create(CreateInput{
		GameID:       game.ID,
		FromUsername: "host",
		ToUsername:   "guest2",
	})
	require.NoError(t, err)

	_, err = svc.CreateGroup(game.ID, "host", []string{"guest1", "guest2"})
	require.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))

	invites, err := svc.GameInvites(game.ID, true)
	require.NoError(t, err)
	require.Len(t, invites, 1)

	// and succeeds once the conflict is gone
	created, err := svc.CreateGroup(game.ID, "host", []string{"guest1"})
	require.NoError(t, err)
	require.Len(t, created, 1)
	require.Equal(t, "guest1", created[0].ToUsername)
}

func TestInviteService_Lists_FilterInactive(t *testing.T) {
	env := setupTestEnv(t)
	svc := newInviteService(env)

	env.createUser(t, "host")
	env.createUser(t, "guest")
	env.createUser(t, "gone")
	game := env.createGame(t, "host")

	_, err := svc.Create(CreateInput{GameID: game.ID, FromUsername: "host", ToUsername: "guest"})
	require.NoError(t, err)
	_, err = svc.Create(CreateInput{GameID: game.ID, FromUsername: "host", ToUsername: "gone"})
	require.NoError(t, err)

	env.deactivateUser(t, "gone")

	visible, err := svc.GameInvites(game.ID, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	require.Equal(t, "guest", visible[0].ToUsername)

	all, err := svc.GameInvites(game.ID, true)
	require.NoError(t, err)
	require.Len(t, all, 2)

	sent, err := svc.Sent("host", false)
	require.NoError(t, err)
	require.Len(t, sent, 1)

	received, err := svc.Received("gone", true)
	require.NoError(t, err)
	require.Len(t, received, 1)
}
