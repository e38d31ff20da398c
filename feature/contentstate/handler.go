package contentstate

import (
	"encoding/json"

	"content-state/core/api"
	"content-state/core/logger"
	"content-state/core/middleware/identity"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for content consumption state.
type Handler struct {
	service *Service
	auth    identity.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, auth identity.Config) *Handler {
	return &Handler{service: service, auth: auth}
}

// RegisterRoutes registers the content state routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/content/v2/state")
	group.Post("/read", identity.RequireUser(h.auth, api.IDStateRead), h.HandleRead)
	group.Patch("/update", identity.RequireUser(h.auth, api.IDStateUpdate), h.HandleUpdate)
}

// HandleRead returns the caller's consumption state for a list of contents.
// @Summary Read Content State
// @Description Returns the caller's consumption records for the requested content ids, restricted to the requested fields.
// @Tags content-state
// @Accept json
// @Produce json
// @Param x-authenticated-user-token header string true "User token"
// @Param request body map[string]interface{} true "{\"request\": {\"contentIds\": [...], \"fields\": [...]}}"
// @Success 200 {object} api.Response "contentList in result"
// @Failure 400 {object} api.Response "Validation failure"
// @Failure 401 {object} api.Response "Unauthorized"
// @Failure 500 {object} api.Response "Internal Server Error"
// @Router /content/v2/state/read [post]
func (h *Handler) HandleRead(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	uid, _ := identity.UserID(c)

	body, ok := decodeBody(c)
	if !ok {
		return api.Send(c, fiber.StatusBadRequest, api.Failed(api.IDStateRead, api.CodeClientError, "Invalid JSON payload"))
	}

	res, err := h.service.Read(c.UserContext(), uid, body)
	if err != nil {
		if vErr, ok := IsValidation(err); ok {
			l.Info("Rejected content state read", zap.String("reason", vErr.Error()))
			return api.Send(c, fiber.StatusBadRequest, api.Failed(api.IDStateRead, api.CodeClientError, vErr.Error()))
		}
		l.Error("Content state read failed", zap.String("user_id", uid), zap.Error(err))
		return api.Send(c, fiber.StatusInternalServerError, api.Failed(api.IDStateRead, api.CodeServerError, "Failed to read content state"))
	}

	return api.Send(c, fiber.StatusOK, api.OK(api.IDStateRead, map[string]any{"contentList": res.ContentList}))
}

// HandleUpdate merges the caller's consumption updates with their stored state.
// @Summary Update Content State
// @Description Merges consumption updates monotonically (status and progress never regress) and persists the result.
// @Tags content-state
// @Accept json
// @Produce json
// @Param x-authenticated-user-token header string true "User token"
// @Param request body map[string]interface{} true "{\"request\": {\"contents\": [{\"contentId\": \"...\", \"status\": 1, \"progress\": 40}]}}"
// @Success 200 {object} api.Response "contentId: SUCCESS in result"
// @Failure 400 {object} api.Response "Validation failure"
// @Failure 401 {object} api.Response "Unauthorized"
// @Failure 500 {object} api.Response "Internal Server Error"
// @Router /content/v2/state/update [patch]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	uid, _ := identity.UserID(c)

	body, ok := decodeBody(c)
	if !ok {
		return api.Send(c, fiber.StatusBadRequest, api.Failed(api.IDStateUpdate, api.CodeClientError, "Invalid JSON payload"))
	}

	res, err := h.service.Update(c.UserContext(), uid, body)
	if err != nil {
		if vErr, ok := IsValidation(err); ok {
			l.Info("Rejected content state update", zap.String("reason", vErr.Error()))
			return api.Send(c, fiber.StatusBadRequest, api.Failed(api.IDStateUpdate, api.CodeClientError, vErr.Error()))
		}
		l.Error("Content state update failed", zap.String("user_id", uid), zap.Error(err))
		return api.Send(c, fiber.StatusInternalServerError, api.Failed(api.IDStateUpdate, api.CodeServerError, "Failed to update content state"))
	}

	result := make(map[string]any, len(res))
	for id, status := range res {
		result[id] = status
	}
	return api.Send(c, fiber.StatusOK, api.OK(api.IDStateUpdate, result))
}

// decodeBody parses the JSON object body. An empty body decodes to nil; anything that is not a JSON
// object fails.
func decodeBody(c *fiber.Ctx) (map[string]any, bool) {
	raw := c.Body()
	if len(raw) == 0 {
		return nil, true
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, false
	}
	return body, true
}
