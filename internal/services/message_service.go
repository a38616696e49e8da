package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/srashed001/pug-backend-sub000/internal/apperrors"
	"github.com/srashed001/pug-backend-sub000/internal/constants"
	"github.com/srashed001/pug-backend-sub000/internal/models"
	"github.com/srashed001/pug-backend-sub000/internal/repository"
	"github.com/srashed001/pug-backend-sub000/internal/utils"
)

// MessageService resolves threads by exact party membership and manages the
// message ledger with per-viewer visibility.
type MessageService struct {
	threadRepo repository.ThreadRepository
	userRepo   repository.UserRepository
}

// NewMessageService creates a new MessageService.
func NewMessageService(threadRepo repository.ThreadRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		threadRepo: threadRepo,
		userRepo:   userRepo,
	}
}

// ThreadView is a thread rendered for one viewer.
type ThreadView struct {
	ThreadID string
	Members  []models.ThreadMember
	Messages []models.Message
}

// ThreadSummary is one entry of a user's thread list.
type ThreadSummary struct {
	ThreadID    string
	Members     []models.ThreadMember
	LastMessage models.Message
}

// Resolve maps a set of usernames to the thread whose member set equals it
// exactly, or "" when no such thread exists. Every username must belong to an
// existing account; active or not makes no difference here.
func (s *MessageService) Resolve(usernames []string) (string, error) {
	set, err := normalizeUsernames(usernames)
	if err != nil {
		return "", err
	}
	if err := s.ensureUsersExist(set); err != nil {
		return "", err
	}

	threadID, err := s.threadRepo.FindByExactMembers(set)
	if err != nil {
		return "", fmt.Errorf("failed to resolve thread: %w", err)
	}
	return threadID, nil
}

// GetOrCreate resolves the thread for the username set, creating it with a
// fresh opaque id when none exists.
func (s *MessageService) GetOrCreate(usernames []string) (string, error) {
	threadID, err := s.Resolve(usernames)
	if err != nil {
		return "", err
	}
	if threadID != "" {
		return threadID, nil
	}

	set, _ := normalizeUsernames(usernames)
	threadID = utils.NewThreadID()
	if err := s.threadRepo.CreateWithMembers(threadID, set); err != nil {
		return "", fmt.Errorf("failed to create thread: %w", err)
	}
	return threadID, nil
}

// Post appends a message to the thread shared by threadUsers, establishing
// the thread first if needed. The sender must be one of the participants.
func (s *MessageService) Post(threadUsers []string, senderUsername, body string) (*models.Message, error) {
	set, err := normalizeUsernames(threadUsers)
	if err != nil {
		return nil, err
	}
	if !containsUsername(set, senderUsername) {
		return nil, apperrors.BadRequest("sender %s is not among the thread users", senderUsername)
	}
	if strings.TrimSpace(body) == "" {
		return nil, apperrors.BadRequest("message body is required")
	}

	threadID, err := s.GetOrCreate(set)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		ThreadID:       threadID,
		SenderUsername: senderUsername,
		Body:           body,
	}
	if err := s.threadRepo.CreateMessage(message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return message, nil
}

// Reply appends a message to an existing thread.
func (s *MessageService) Reply(threadID, senderUsername, body string) (*models.Message, error) {
	if err := s.ensureUsersExist([]string{senderUsername}); err != nil {
		return nil, err
	}
	if err := s.ensureMembership(threadID, senderUsername); err != nil {
		return nil, err
	}
	if strings.TrimSpace(body) == "" {
		return nil, apperrors.BadRequest("message body is required")
	}

	message := &models.Message{
		ThreadID:       threadID,
		SenderUsername: senderUsername,
		Body:           body,
	}
	if err := s.threadRepo.CreateMessage(message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return message, nil
}

// ListForViewer renders the thread for one member: every message except those
// the viewer has hidden, in creation order, plus the full member roster.
func (s *MessageService) ListForViewer(threadID, viewerUsername string) (*ThreadView, error) {
	if err := s.ensureUsersExist([]string{viewerUsername}); err != nil {
		return nil, err
	}
	if err := s.ensureMembership(threadID, viewerUsername); err != nil {
		return nil, err
	}

	members, err := s.threadRepo.ListMembers(threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list thread members: %w", err)
	}

	messages, err := s.threadRepo.ListVisibleMessages(threadID, viewerUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return &ThreadView{ThreadID: threadID, Members: members, Messages: messages}, nil
}

// HideThread hides, for the viewer only, every message in the thread they
// have not already hidden. Returns the newly hidden message ids.
func (s *MessageService) HideThread(threadID, viewerUsername string) ([]uint64, error) {
	if err := s.ensureUsersExist([]string{viewerUsername}); err != nil {
		return nil, err
	}
	if err := s.ensureMembership(threadID, viewerUsername); err != nil {
		return nil, err
	}

	hidden, err := s.threadRepo.HideThread(threadID, viewerUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to hide thread: %w", err)
	}
	return hidden, nil
}

// HideMessage hides a single message from the viewer's own view. Other
// members are unaffected. Hiding an already hidden message is a no-op.
func (s *MessageService) HideMessage(messageID uint64, viewerUsername string) (uint64, error) {
	message, err := s.threadRepo.FindMessageByID(messageID)
	if err != nil {
		if isNotFound(err) {
			return 0, apperrors.NotFound("no message: %d", messageID)
		}
		return 0, fmt.Errorf("failed to find message: %w", err)
	}

	if err := s.ensureMembership(message.ThreadID, viewerUsername); err != nil {
		return 0, err
	}

	if _, err := s.threadRepo.HideMessage(messageID, viewerUsername); err != nil {
		return 0, fmt.Errorf("failed to hide message: %w", err)
	}
	return messageID, nil
}

// ListThreadsForUser lists the user's threads ordered by the recency of the
// last message still visible to them. Threads where every message is hidden
// drop off the list.
func (s *MessageService) ListThreadsForUser(username string) ([]ThreadSummary, error) {
	if err := s.ensureUsersExist([]string{username}); err != nil {
		return nil, err
	}

	threadIDs, err := s.threadRepo.ListThreadIDs(username)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}

	summaries := []ThreadSummary{}
	for _, threadID := range threadIDs {
		last, err := s.threadRepo.LastVisibleMessage(threadID, username)
		if err != nil {
			if isNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("failed to find last message: %w", err)
		}

		members, err := s.threadRepo.ListMembers(threadID)
		if err != nil {
			return nil, fmt.Errorf("failed to list thread members: %w", err)
		}

		summaries = append(summaries, ThreadSummary{
			ThreadID:    threadID,
			Members:     members,
			LastMessage: *last,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		a, b := summaries[i].LastMessage, summaries[j].LastMessage
		if !a.CreatedOn.Equal(b.CreatedOn) {
			return a.CreatedOn.After(b.CreatedOn)
		}
		return a.ID > b.ID
	})

	return summaries, nil
}

// ensureMembership verifies the thread exists and the user belongs to it.
// Both failures read as not-found so thread ids cannot be probed.
func (s *MessageService) ensureMembership(threadID, username string) error {
	if _, err := s.threadRepo.FindByID(threadID); err != nil {
		if isNotFound(err) {
			return apperrors.NotFound("no thread: %s", threadID)
		}
		return fmt.Errorf("failed to find thread: %w", err)
	}

	member, err := s.threadRepo.IsMember(threadID, username)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !member {
		return apperrors.NotFound("user %s is not a member of thread %s", username, threadID)
	}
	return nil
}

// ensureUsersExist fails with a not-found naming every missing username.
func (s *MessageService) ensureUsersExist(usernames []string) error {
	found, err := s.userRepo.ListByUsernames(usernames)
	if err != nil {
		return fmt.Errorf("failed to look up users: %w", err)
	}

	exists := make(map[string]bool, len(found))
	for _, user := range found {
		exists[user.Username] = true
	}

	missing := []string{}
	for _, username := range usernames {
		if !exists[username] {
			missing = append(missing, username)
		}
	}
	if len(missing) > 0 {
		return apperrors.NotFound("no users: %s", strings.Join(missing, ", "))
	}
	return nil
}

// normalizeUsernames validates the input is a proper set of at least two
// usernames and returns it sorted.
func normalizeUsernames(usernames []string) ([]string, error) {
	if len(usernames) < constants.MinThreadMembers {
		return nil, apperrors.BadRequest("a thread requires at least %d users", constants.MinThreadMembers)
	}

	seen := make(map[string]bool, len(usernames))
	set := make([]string, 0, len(usernames))
	for _, username := range usernames {
		username = strings.TrimSpace(username)
		if username == "" {
			return nil, apperrors.BadRequest("username cannot be empty")
		}
		if seen[username] {
			return nil, apperrors.BadRequest("duplicate username: %s", username)
		}
		seen[username] = true
		set = append(set, username)
	}

	sort.Strings(set)
	return set, nil
}

func containsUsername(usernames []string, username string) bool {
	for _, u := range usernames {
		if u == username {
			return true
		}
	}
	return false
}
