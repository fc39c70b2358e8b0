package domain

// UserRecord describes a chat-platform user as sent to and returned by
// Sendbird. IssueAccessToken is a pointer so that an absent field stays
// absent on the wire and the platform applies its own default.
type UserRecord struct {
	UserID           string `json:"user_id"                      validate:"required"`
	Nickname         string `json:"nickname,omitempty"`
	ProfileURL       string `json:"profile_url,omitempty"`
	IssueAccessToken *bool  `json:"issue_access_token,omitempty"`
}

// TokenResult is the shape Sendbird returns from the token endpoint.
// The gateway forwards the raw body without interpreting these fields;
// the type documents the contract and backs the tests.
type TokenResult struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
