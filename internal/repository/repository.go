package repository

import (
	"github.com/srashed001/pug-backend-sub000/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByUsername finds a user by username, active or not
	FindByUsername(username string) (*models.User, error)

	// List retrieves users ordered by username; inactive accounts only when asked
	List(includeInactive bool) ([]models.User, error)

	// ListByUsernames retrieves the users among the given usernames that exist
	ListByUsernames(usernames []string) ([]models.User, error)

	// UpdateColumns applies a column/value map to a user row
	UpdateColumns(username string, updates map[string]any) error

	// SetActive flips the active flag
	SetActive(username string, active bool) error
}

// GameFilter holds filtering options for listing games
type GameFilter struct {
	Search          string
	IncludeInactive bool
}

// GameRepository defines the interface for game, roster and comment data access
type GameRepository interface {
	// Create creates a game and its audit row
	Create(game *models.Game) error

	// FindByID finds a game by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Game, error)

	// List retrieves games ordered by date ascending
	List(filter GameFilter) ([]models.Game, error)

	// Update updates a game
	Update(game *models.Game) error

	// SetActive flips the active flag and records who did it
	SetActive(id uint64, active bool, actor string) error

	// AddPlayer enrolls a user on the roster
	AddPlayer(gameID uint64, username string) error

	// RemovePlayer drops a user from the roster
	RemovePlayer(gameID uint64, username string) error

	// FindPlayer finds a roster entry
	FindPlayer(gameID uint64, username string) (*models.GamePlayer, error)

	// ListPlayers lists the active users on the roster
	ListPlayers(gameID uint64) ([]models.User, error)

	// ListHosted lists games created by the user
	ListHosted(username string) ([]models.Game, error)

	// ListJoined lists games the user is on the roster of
	ListJoined(username string) ([]models.Game, error)

	// CreateComment adds a comment and its audit row
	CreateComment(comment *models.GameComment) error

	// FindCommentByID finds a comment by ID
	FindCommentByID(id uint64) (*models.GameComment, error)

	// SaveComment persists comment changes and records the given audit operation
	SaveComment(comment *models.GameComment, operation string) error

	// ListComments lists a game's active comments, oldest first
	ListComments(gameID uint64) ([]models.GameComment, error)
}

// FollowRepository defines the interface for follow-edge data access
type FollowRepository interface {
	// Find finds the directed edge follower -> followed
	Find(followedUsername, followerUsername string) (*models.Follow, error)

	// Toggle creates the edge if absent, removes it if present.
	// Returns true when the edge exists after the call.
	Toggle(followedUsername, followerUsername string) (bool, error)

	// ListFollowers lists active accounts following the user
	ListFollowers(username string) ([]models.User, error)

	// ListFollowing lists active accounts the user follows
	ListFollowing(username string) ([]models.User, error)
}

// ThreadRepository defines the interface for thread, message and tombstone access
type ThreadRepository interface {
	// FindByExactMembers returns the id of the thread whose member set equals
	// usernames, or "" when no such thread exists
	FindByExactMembers(usernames []string) (string, error)

	// CreateWithMembers creates a thread and one membership row per username
	CreateWithMembers(threadID string, usernames []string) error

	// FindByID finds a thread by id
	FindByID(threadID string) (*models.Thread, error)

	// ListMembers lists a thread's member rows with user data
	ListMembers(threadID string) ([]models.ThreadMember, error)

	// IsMember reports whether the user belongs to the thread
	IsMember(threadID, username string) (bool, error)

	// CreateMessage appends a message to its thread
	CreateMessage(message *models.Message) error

	// FindMessageByID finds a message by id
	FindMessageByID(id uint64) (*models.Message, error)

	// ListVisibleMessages lists a thread's messages the viewer has not hidden,
	// in creation order
	ListVisibleMessages(threadID, viewerUsername string) ([]models.Message, error)

	// LastVisibleMessage returns the most recent message in the thread the
	// viewer has not hidden; gorm.ErrRecordNotFound when none is visible
	LastVisibleMessage(threadID, viewerUsername string) (*models.Message, error)

	// ListThreadIDs lists ids of threads the user belongs to
	ListThreadIDs(username string) ([]string, error)

	// HideMessage tombstones one message for the viewer; false when it was
	// already hidden
	HideMessage(messageID uint64, viewerUsername string) (bool, error)

	// HideThread tombstones, for the viewer, every message in the thread not
	// already hidden by them; returns the newly hidden ids
	HideThread(threadID, viewerUsername string) ([]uint64, error)
}

// InviteRepository defines the interface for invite data access
type InviteRepository interface {
	// Create inserts a pending invite and its audit row
	Create(invite *models.Invite) error

	// CreateGroup inserts all invites in one transaction; any failure leaves
	// no rows committed
	CreateGroup(invites []*models.Invite) error

	// FindByID finds an invite with game and party data
	FindByID(id uint64) (*models.Invite, error)

	// HasActivePending reports whether the recipient already holds a pending
	// invite for the game from a currently active sender
	HasActivePending(gameID uint64, toUsername string) (bool, error)

	// UpdateStatus persists a status transition; when enrollPlayer is set the
	// recipient joins the game roster in the same transaction
	UpdateStatus(invite *models.Invite, actor string, enrollPlayer bool) error

	// ListByGame lists a game's invites, newest first
	ListByGame(gameID uint64, all bool) ([]models.Invite, error)

	// ListSent lists invites the user sent, newest first
	ListSent(username string, all bool) ([]models.Invite, error)

	// ListReceived lists invites the user received, newest first
	ListReceived(username string, all bool) ([]models.Invite, error)
}

// ActivityRepository defines the read side of the audit tables
type ActivityRepository interface {
	// ListByPrimary lists every event with the user as primary actor, newest first
	ListByPrimary(username string) ([]ActivityEvent, error)

	// ListFollowedBy lists events whose primary actor is an active account the
	// viewer follows, newest first
	ListFollowedBy(viewerUsername string) ([]ActivityEvent, error)
}

// ActivityEvent is one row of the merged activity feed.
type ActivityEvent struct {
	Source string `json:"source"`
	models.ActivityRecord
}
