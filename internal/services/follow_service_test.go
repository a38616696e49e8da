package services

import (
	"testing"

	"github.com/srashed001/pug-backend-sub000/internal/apperrors"
	"github.com/stretchr/testify/require"
)

func newFollowService(env testEnv) *FollowService {
	return NewFollowService(env.followRepo, env.userRepo)
}

func TestFollowService_Toggle(t *testing.T) {
	env := setupTestEnv(t)
	svc := newFollowService(env)

	env.createUser(t, "alice")
	env.createUser(t, "bob")

	following, err := svc.Toggle("bob", "alice")
	require.NoError(t, err)
	require.True(t, following)

	followers, err := svc.Followers("bob")
	require.NoError(t, err)
	require.Len(t, followers, 1)
	require.Equal(t, "alice", followers[0].Username)

	// toggling again removes the edge
	following, err = svc.Toggle("bob", "alice")
	require.NoError(t, err)
	require.False(t, following)

	followers, err = svc.Followers("bob")
	require.NoError(t, err)
	require.Empty(t, followers)
}

func TestFollowService_Toggle_Validation(t *testing.T) {
	env := setupTestEnv(t)
	svc := newFollowService(env)

	env.createUser(t, "alice")
	env.createUser(t, "bob")

	_, err := svc.Toggle("alice", "alice")
	require.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))

	_, err = svc.Toggle("ghost", "alice")
	require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	env.deactivateUser(t, "bob")
	_, err = svc.Toggle("bob", "alice")
	require.True(t, apperrors.IsKind(err, apperrors.KindInactive))
}

func TestFollowService_Lists_ExcludeInactive(t *testing.T) {
	env := setupTestEnv(t)
	svc := newFollowService(env)

	env.createUser(t, "alice")
	env.createUser(t, "bob")
	env.createUser(t, "carol")

	_, err := svc.Toggle("alice", "bob")
	require.NoError(t, err)
	_, err = svc.Toggle("alice", "carol")
	require.NoError(t, err)
	_, err = svc.Toggle("carol", "alice")
	require.NoError(t, err)

	env.deactivateUser(t, "carol")

	// carol's follow edge survives but she disappears from listings
	followers, err := svc.Followers("alice")
	require.NoError(t, err)
	require.Len(t, followers, 1)
	require.Equal(t, "bob", followers[0].Username)

	following, err := svc.Following("alice")
	require.NoError(t, err)
	require.Empty(t, following)
}
