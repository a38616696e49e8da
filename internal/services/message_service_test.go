package services

import (
	"testing"

	"github.com/srashed001/pug-backend-sub000/internal/apperrors"
	"github.com/stretchr/testify/require"
)

func newMessageService(env testEnv) *MessageService {
	return NewMessageService(env.threadRepo, env.userRepo)
}

func TestMessageService_ThreadIdentityBySet(t *testing.T) {
	env := setupTestEnv(t)
	svc := newMessageService(env)

	env.createUser(t, "alice")
	env.createUser(t, "bob")
	env.createUser(t, "carol")

	pairID, err := svc.GetOrCreate([]string{"alice", "bob"})
	require.NoError(t, err)
	require.NotEmpty(t, pairID)

	// same set in any order resolves to the same thread
	again, err := svc.GetOrCreate([]string{"bob", "alice"})
	require.NoError(t, err)
	require.Equal(t, pairID, again)

	// a superset is a different thread
	trioID, err := svc.GetOrCreate([]string{"carol", "alice", "bob"})
	require.NoError(t, err)
	require.NotEqual(t, pairID, trioID)

	// a different pair does not exist yet
	resolved, err := svc.Resolve([]string{"alice", "carol"})
	require.NoError(t, err)
	require.Empty(t, resolved)
}

func TestMessageService_Resolve_Validation(t *testing.T) {
	env := setupTestEnv(t)
	svc := newMessageService(env)

	env.createUser(t, "alice")
	env.createUser(t, "bob")

	_, err := svc.Resolve([]string{"alice"})
	require.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))

	_, err = svc.Resolve([]string{"alice", "alice"})
	require.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))

	_, err = svc.Resolve([]string{"alice", "ghost"})
	require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestMessageService_Post_SenderMustBeParticipant(t *testing.T) {
	env := setupTestEnv(t)
	svc := newMessageService(env)

	env.createUser(t, "alice")
	env.createUser(t, "bob")
	env.createUser(t, "carol")

	_, err := svc.Post([]string{"alice", "bob"}, "carol", "hi")
	require.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))
}

func TestMessageService_PostAndReply(t *testing.T) {
	env := setupTestEnv(t)
	svc := newMessageService(env)

	env.createUser(t, "alice")
	env.createUser(t, "bob")

	first, err := svc.Post([]string{"alice", "bob"}, "alice", "you up for saturday?")
	require.NoError(t, err)
	require.NotEmpty(t, first.ThreadID)

	second, err := svc.Reply(first.ThreadID, "bob", "count me in")
	require.NoError(t, err)
	require.Equal(t, first.ThreadID, second.ThreadID)

	view, err := svc.ListForViewer(first.ThreadID, "alice")
	require.NoError(t, err)
	require.Len(t, view.Messages, 2)
	require.Equal(t, "you up for saturday?", view.Messages[0].Body)
	require.Equal(t, "count me in", view.Messages[1].Body)
	require.Len(t, view.Members, 2)

	// a third message through Post lands on the same thread
	third, err := svc.Post([]string{"bob", "alice"}, "alice", "great")
	require.NoError(t, err)
	require.Equal(t, first.ThreadID, third.ThreadID)
}

func TestMessageService_Reply_NonMember(t *testing.T) {
	env := setupTestEnv(t)
	svc := newMessageService(env)

	env.createUser(t, "alice")
	env.createUser(t, "bob")
	env.createUser(t, "carol")

	msg, err := svc.Post([]string{"alice", "bob"}, "alice", "hi")
	require.NoError(t, err)

	_, err = svc.Reply(msg.ThreadID, "carol", "let me in")
	require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	_, err = svc.ListForViewer(msg.ThreadID, "carol")
	require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestMessageService_HideMessage_PerViewer(t *testing.T) {
	env := setupTestEnv(t)
	svc := newMessageService(env)

	env.createUser(t, "alice")
	env.createUser(t, "bob")

	first, err := svc.Post([]string{"alice", "bob"}, "alice", "one")
	require.NoError(t, err)
	second, err := svc.Reply(first.ThreadID, "bob", "two")
	require.NoError(t, err)

	_, err = svc.HideMessage(first.ID, "bob")
	require.NoError(t, err)

	// hiding twice is a no-op
	_, err = svc.HideMessage(first.ID, "bob")
	require.NoError(t, err)

	bobView, err := svc.ListForViewer(first.ThreadID, "bob")
	require.NoError(t, err)
	require.Len(t, bobView.Messages, 1)
	require.Equal(t, second.ID, bobView.Messages[0].ID)

	// alice's view is untouched
	aliceView, err := svc.ListForViewer(first.ThreadID, "alice")
	require.NoError(t, err)
	require.Len(t, aliceView.Messages, 2)
}

func TestMessageService_HideThread(t *testing.T) {
	env := setupTestEnv(t)
	svc := newMessageService(env)

	env.createUser(t, "alice")
	env.createUser(t, "bob")

	first, err := svc.Post([]string{"alice", "bob"}, "alice", "one")
	require.NoError(t, err)
	_, err = svc.Reply(first.ThreadID, "alice", "two")
	require.NoError(t, err)

	hidden, err := svc.HideThread(first.ThreadID, "bob")
	require.NoError(t, err)
	require.Len(t, hidden, 2)

	// the thread drops off bob's list but not alice's
	bobThreads, err := svc.ListThreadsForUser("bob")
	require.NoError(t, err)
	require.Empty(t, bobThreads)

	aliceThreads, err := svc.ListThreadsForUser("alice")
	require.NoError(t, err)
	require.Len(t, aliceThreads, 1)

	// a new message revives the thread for bob, showing only what came after
	revive, err := svc.Reply(first.ThreadID, "alice", "three")
	require.NoError(t, err)

	bobThreads, err = svc.ListThreadsForUser("bob")
	require.NoError(t, err)
	require.Len(t, bobThreads, 1)
	require.Equal(t, revive.ID, bobThreads[0].LastMessage.ID)

	bobView, err := svc.ListForViewer(first.ThreadID, "bob")
	require.NoError(t, err)
	require.Len(t, bobView.Messages, 1)
	require.Equal(t, "three", bobView.Messages[0].Body)

	// hiding again only tombstones the new message
	hidden, err = svc.HideThread(first.ThreadID, "bob")
	require.NoError(t, err)
	require.Equal(t, []uint64{revive.ID}, hidden)
}

func TestMessageService_ListThreadsForUser_Ordering(t *testing.T) {
	env := setupTestEnv(t)
	svc := newMessageService(env)

	env.createUser(t, "alice")
	env.createUser(t, "bob")
	env.createUser(t, "carol")

	older, err := svc.Post([]string{"alice", "bob"}, "alice", "first thread")
	require.NoError(t, err)
	newer, err := svc.Post([]string{"alice", "carol"}, "alice", "second thread")
	require.NoError(t, err)

	threads, err := svc.ListThreadsForUser("alice")
	require.NoError(t, err)
	require.Len(t, threads, 2)
	require.Equal(t, newer.ThreadID, threads[0].ThreadID)
	require.Equal(t, older.ThreadID, threads[1].ThreadID)

	// replying to the older thread moves it to the top
	_, err = svc.Reply(older.ThreadID, "bob", "bump")
	require.NoError(t, err)

	threads, err = svc.ListThreadsForUser("alice")
	require.NoError(t, err)
	require.Equal(t, older.ThreadID, threads[0].ThreadID)
}
