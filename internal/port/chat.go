package port

import (
	"context"
	"encoding/json"

	"github.com/bvminh-dev/send-bird/internal/domain"
)

// ChatProvider abstracts the chat-platform REST API the gateway proxies to.
// Implementations target Sendbird, but anything with the same user/token
// operations fits.
type ChatProvider interface {
	// CreateUserToken issues (or re-issues) an access token for the given
	// user ID and returns the platform's response body unmodified.
	CreateUserToken(ctx context.Context, userID string) (json.RawMessage, error)

	// CreateUser registers a new user from the given record and returns the
	// platform's response body unmodified.
	CreateUser(ctx context.Context, user domain.UserRecord) (json.RawMessage, error)
}
