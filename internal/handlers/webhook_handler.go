package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
	"github.com/jaehyo-dev/school-hub/backend/internal/policy"
	"github.com/jaehyo-dev/school-hub/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// WebhookHandler receives identity provider lifecycle events and keeps the
// local user table in sync with them.
type WebhookHandler struct {
	userRepository repositories.UserRepository
	resolver       *policy.Resolver
	secret         string
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(userRepo repositories.UserRepository, resolver *policy.Resolver, secret string) *WebhookHandler {
	return &WebhookHandler{
		userRepository: userRepo,
		resolver:       resolver,
		secret:         secret,
	}
}

// RegisterWebhookRoutes registers the identity sync webhook
func (h *WebhookHandler) RegisterWebhookRoutes(g *echo.Group) {
	g.POST("/webhooks/identity", h.HandleIdentityEvent)
}

// HandleIdentityEvent processes a user.created/user.updated/user.deleted
// event. Creation assigns the domain-derived default role once; updates
// refresh email and name but leave the role alone. Deleting an unknown
// user succeeds quietly since deliveries can arrive out of order.
func (h *WebhookHandler) HandleIdentityEvent(c echo.Context) error {
	if h.secret == "" {
		log.Println("Webhook secret not configured, rejecting identity event.")
		return echo.NewHTTPError(http.StatusInternalServerError, "Webhook not configured")
	}
	provided := c.Request().Header.Get("X-Webhook-Secret")
	if subtle.ConstantTimeCompare([]byte(provided), []byte(h.secret)) != 1 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid webhook signature")
	}

	var event models.SyncEventRequest
	if err := c.Bind(&event); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid event payload")
	}
	if err := c.Validate(&event); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	switch event.Type {
	case "user.created", "user.updated":
		name := strings.TrimSpace(event.Data.FirstName + " " + event.Data.LastName)
		defaultRole := h.resolver.DefaultRole(event.Data.Email)

		user, err := h.userRepository.SyncUser(event.Data.ID, event.Data.Email, name, defaultRole)
		if err != nil {
			log.Printf("Error syncing user %s: %v", event.Data.ID, err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Error syncing user")
		}
		return c.JSON(http.StatusOK, echo.Map{"synced": true, "user_id": user.ID})

	case "user.deleted":
		if err := h.userRepository.DeleteUserByFirebaseUID(event.Data.ID); err != nil {
			log.Printf("Error deleting user %s: %v", event.Data.ID, err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Error deleting user")
		}
		return c.JSON(http.StatusOK, echo.Map{"deleted": true})
	}

	return echo.NewHTTPError(http.StatusBadRequest, "Unsupported event type")
}
