package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bvminh-dev/send-bird/internal/domain"
	"github.com/bvminh-dev/send-bird/internal/port"
)

// UserService forwards user operations to the chat platform. It adds logging
// and error context but never touches the payloads themselves.
type UserService struct {
	chat port.ChatProvider
}

// NewUserService creates a new user service backed by the given provider.
func NewUserService(chat port.ChatProvider) *UserService {
	return &UserService{chat: chat}
}

// FetchUserToken retrieves an access token for the given user ID.
func (s *UserService) FetchUserToken(ctx context.Context, userID string) (json.RawMessage, error) {
	slog.Info("fetching user token", "user_id", userID)
	body, err := s.chat.CreateUserToken(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch user token: %w", err)
	}
	return body, nil
}

// CreateUser registers a new chat-platform user.
func (s *UserService) CreateUser(ctx context.Context, user domain.UserRecord) (json.RawMessage, error) {
	slog.Info("creating user", "user_id", user.UserID, "issue_access_token", user.IssueAccessToken != nil && *user.IssueAccessToken)
	body, err := s.chat.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return body, nil
}
