package services

import (
	"fmt"

	"github.com/srashed001/pug-backend-sub000/internal/apperrors"
	"github.com/srashed001/pug-backend-sub000/internal/models"
	"github.com/srashed001/pug-backend-sub000/internal/repository"
)

// InviteService drives the invite state machine:
// pending -> accepted | denied | cancelled, terminal states never transition.
type InviteService struct {
	inviteRepo repository.InviteRepository
	gameRepo   repository.GameRepository
	userRepo   repository.UserRepository
}

// NewInviteService creates a new InviteService.
func NewInviteService(inviteRepo repository.InviteRepository, gameRepo repository.GameRepository, userRepo repository.UserRepository) *InviteService {
	return &InviteService{
		inviteRepo: inviteRepo,
		gameRepo:   gameRepo,
		userRepo:   userRepo,
	}
}

// CreateInput represents a single invite request.
type CreateInput struct {
	GameID       uint64
	FromUsername string
	ToUsername   string
}

// Create validates the parties and inserts a pending invite. The recipient
// may hold at most one pending invite per game from a currently active
// sender; pendings from since-deactivated senders do not block.
func (s *InviteService) Create(input CreateInput) (*models.Invite, error) {
	if err := s.validateParties(input.GameID, input.FromUsername, input.ToUsername); err != nil {
		return nil, err
	}

	invite := &models.Invite{
		GameID:       input.GameID,
		FromUsername: input.FromUsername,
		ToUsername:   input.ToUsername,
		Status:       models.InviteStatusPending,
	}
	if err := s.inviteRepo.Create(invite); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}
	return invite, nil
}

// CreateGroup applies Create's validation to every recipient, then inserts
// all invites atomically; one bad recipient fails the whole group.
func (s *InviteService) CreateGroup(gameID uint64, fromUsername string, usernames []string) ([]models.Invite, error) {
	if len(usernames) == 0 {
		return nil, apperrors.BadRequest("at least one recipient is required")
	}

	seen := make(map[string]bool, len(usernames))
	invites := make([]*models.Invite, 0, len(usernames))
	for _, toUsername := range usernames {
		if seen[toUsername] {
			return nil, apperrors.BadRequest("duplicate recipient: %s", toUsername)
		}
		seen[toUsername] = true

		if err := s.validateParties(gameID, fromUsername, toUsername); err != nil {
			return nil, err
		}
		invites = append(invites, &models.Invite{
			GameID:       gameID,
			FromUsername: fromUsername,
			ToUsername:   toUsername,
			Status:       models.InviteStatusPending,
		})
	}

	if err := s.inviteRepo.CreateGroup(invites); err != nil {
		return nil, fmt.Errorf("failed to create invites: %w", err)
	}

	created := make([]models.Invite, len(invites))
	for i, invite := range invites {
		created[i] = *invite
	}
	return created, nil
}

// Update transitions an invite. Only the sender may cancel; only the
// recipient may accept or deny. Accepting also enrolls the recipient as a
// game player.
func (s *InviteService) Update(inviteID uint64, actingUsername string, newStatus models.InviteStatus) (*models.Invite, error) {
	invite, err := s.inviteRepo.FindByID(inviteID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound("no invite: %d", inviteID)
		}
		return nil, fmt.Errorf("failed to find invite: %w", err)
	}

	if !models.ValidInviteStatus(newStatus) {
		return nil, apperrors.BadRequest("invalid status: %s", newStatus)
	}
	if newStatus == invite.Status {
		return nil, apperrors.BadRequest("invite %d already has status %s", inviteID, newStatus)
	}

	switch newStatus {
	case models.InviteStatusCancelled:
		if actingUsername != invite.FromUsername {
			return nil, apperrors.Unauthorized("only the sender may cancel invite %d", inviteID)
		}
	case models.InviteStatusAccepted, models.InviteStatusDenied:
		if actingUsername != invite.ToUsername {
			return nil, apperrors.Unauthorized("only the recipient may respond to invite %d", inviteID)
		}
	default:
		return nil, apperrors.BadRequest("invite %d cannot return to %s", inviteID, newStatus)
	}

	if invite.Status.Terminal() {
		return nil, apperrors.BadRequest("invite %d is already %s", inviteID, invite.Status)
	}

	invite.Status = newStatus
	enroll := newStatus == models.InviteStatusAccepted
	if err := s.inviteRepo.UpdateStatus(invite, actingUsername, enroll); err != nil {
		return nil, fmt.Errorf("failed to update invite: %w", err)
	}
	return invite, nil
}

// GameInvites lists a game's invites. The non-all form drops rows touching
// inactive users or an inactive game.
func (s *InviteService) GameInvites(gameID uint64, all bool) ([]models.Invite, error) {
	if _, err := s.gameRepo.FindByID(gameID); err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound("no game: %d", gameID)
		}
		return nil, fmt.Errorf("failed to find game: %w", err)
	}

	invites, err := s.inviteRepo.ListByGame(gameID, all)
	if err != nil {
		return nil, fmt.Errorf("failed to list game invites: %w", err)
	}
	return invites, nil
}

// Sent lists invites the user sent.
func (s *InviteService) Sent(username string, all bool) ([]models.Invite, error) {
	if err := s.ensureUser(username); err != nil {
		return nil, err
	}

	invites, err := s.inviteRepo.ListSent(username, all)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent invites: %w", err)
	}
	return invites, nil
}

// Received lists invites the user received.
func (s *InviteService) Received(username string, all bool) ([]models.Invite, error) {
	if err := s.ensureUser(username); err != nil {
		return nil, err
	}

	invites, err := s.inviteRepo.ListReceived(username, all)
	if err != nil {
		return nil, fmt.Errorf("failed to list received invites: %w", err)
	}
	return invites, nil
}

// validateParties checks existence first, then active state, then the
// one-pending-per-active-sender rule.
func (s *InviteService) validateParties(gameID uint64, fromUsername, toUsername string) error {
	game, err := s.gameRepo.FindByID(gameID)
	if err != nil {
		if isNotFound(err) {
			return apperrors.NotFound("no game: %d", gameID)
		}
		return fmt.Errorf("failed to find game: %w", err)
	}

	fromUser, err := s.userRepo.FindByUsername(fromUsername)
	if err != nil {
		if isNotFound(err) {
			return apperrors.NotFound("no user: %s", fromUsername)
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	toUser, err := s.userRepo.FindByUsername(toUsername)
	if err != nil {
		if isNotFound(err) {
			return apperrors.NotFound("no user: %s", toUsername)
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if !game.IsActive {
		return apperrors.Inactive("game is inactive: %d", gameID)
	}
	if !fromUser.IsActive {
		return apperrors.Inactive("user is inactive: %s", fromUsername)
	}
	if !toUser.IsActive {
		return apperrors.Inactive("user is inactive: %s", toUsername)
	}

	pending, err := s.inviteRepo.HasActivePending(gameID, toUsername)
	if err != nil {
		return fmt.Errorf("failed to check pending invites: %w", err)
	}
	if pending {
		return apperrors.BadRequest("user %s already has a pending invite for game %d", toUsername, gameID)
	}
	return nil
}

func (s *InviteService) ensureUser(username string) error {
	if _, err := s.userRepo.FindByUsername(username); err != nil {
		if isNotFound(err) {
			return apperrors.NotFound("no user: %s", username)
		}
		return fmt.Errorf("failed to find user: %w", err)
	}
	return nil
}
