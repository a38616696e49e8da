package constants

const (
	// ContextKeyUsername is the gin context key holding the authenticated username.
	ContextKeyUsername = "username"
	// ContextKeyIsAdmin is the gin context key holding the admin flag from the token.
	ContextKeyIsAdmin = "is_admin"

	MinPasswordLength = 8

	// MinThreadMembers is the smallest member set a thread may have.
	MinThreadMembers = 2
)
