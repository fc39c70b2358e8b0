package handler

import (
	"net/url"
	"strings"

	"github.com/bvminh-dev/send-bird/internal/domain"
	"github.com/bvminh-dev/send-bird/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// UserHandler exposes the user endpoints of the gateway.
type UserHandler struct {
	users    *service.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users, validate: validator.New()}
}

// Register sets up the user routes.
func (h *UserHandler) Register(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/users/:userId/token", h.GetToken)
	api.Post("/users", h.CreateUser)
}

// GetToken fetches an access token for the user ID in the path.
func (h *UserHandler) GetToken(c fiber.Ctx) error {
	userID := c.Params("userId")
	// Route params can arrive percent-encoded ("User%202"); the client
	// re-encodes for the outbound path.
	if decoded, err := url.PathUnescape(userID); err == nil {
		userID = decoded
	}

	if strings.TrimSpace(userID) == "" {
		return respondError(c, fiber.StatusBadRequest, "User ID is required", "Please provide a user ID in the URL path")
	}

	body, err := h.users.FetchUserToken(c.Context(), userID)
	if err != nil {
		return respondUpstreamError(c, err, "Failed to get user token")
	}

	return respondData(c, fiber.StatusOK, body, "Token retrieved successfully for user: "+userID)
}

// CreateUser registers a new user from the JSON request body.
func (h *UserHandler) CreateUser(c fiber.Ctx) error {
	var user domain.UserRecord
	if err := c.Bind().JSON(&user); err != nil {
		// Malformed body, handed to the app error handler.
		return err
	}

	if err := h.validate.Struct(user); err != nil {
		return respondError(c, fiber.StatusBadRequest, "user_id is required", "Please provide a user_id in the request body")
	}

	body, err := h.users.CreateUser(c.Context(), user)
	if err != nil {
		return respondUpstreamError(c, err, "Failed to create user")
	}

	return respondData(c, fiber.StatusCreated, body, "User created successfully")
}
