package constant

type contextKey string

// UserIDKey is the request context key holding the authenticated user id.
const UserIDKey contextKey = "user_id"

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

type NotificationType string

const (
	NotificationNewUser NotificationType = "new_user"
)
