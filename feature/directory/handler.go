package directory

import (
	"encoding/json"
	"errors"

	"location-directory/core/knowledge"
	"location-directory/core/logger"
	"location-directory/core/reconcile"
	"location-directory/feature/directory/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the directory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the directory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)

	webhook := app.Group("/webhook")
	webhook.Post("/entities", h.HandleWebhook)
	webhook.All("/entities", h.methodNotAllowed)

	group := app.Group("/directory")
	group.Post("/reconcile/:id", h.HandleReconcile)
}

// HandleHealth reports that the service is up.
// @Summary Health
// @Tags directory
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{Status: "ok"})
}

// HandleWebhook reconciles the entity named by a change event.
// @Summary Entity change webhook
// @Description Places the changed location into its region and city node. Only CREATE_ENTITY and UPDATE_ENTITY events are reconciled.
// @Tags directory
// @Accept json
// @Produce json
// @Param dry_run query bool false "Preview the mutations without applying them"
// @Param event body models.EntityWebhookData true "Change event"
// @Success 200 {object} reconcile.Result "Applied mutations"
// @Success 202 {object} models.EventResponse "Event skipped"
// @Failure 400 {object} models.ErrorResponse "Malformed event"
// @Failure 404 {object} models.ErrorResponse "Entity not found"
// @Failure 405 {object} models.ErrorResponse "Method not allowed"
// @Failure 415 {object} models.ErrorResponse "Unsupported media type"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Failure 502 {object} models.ErrorResponse "Knowledge store error"
// @Router /webhook/entities [post]
func (h *Handler) HandleWebhook(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if !c.Is("json") {
		return fail(c, fiber.StatusUnsupportedMediaType, "content type must be application/json")
	}

	var ev models.EntityWebhookData
	if err := json.Unmarshal(c.Body(), &ev); err != nil {
		l.Warn("Malformed webhook body", zap.Error(err))
		return fail(c, fiber.StatusBadRequest, "malformed event: "+err.Error())
	}
	// Ignored kinds are acknowledged whatever they carry.
	if ev.IsReconcilable() {
		if err := ev.Validate(); err != nil {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
	}

	opts := reconcile.Options{Simulate: c.QueryBool("dry_run", false)}
	outcome, err := h.service.Dispatch(c.UserContext(), &ev, opts)
	if err != nil {
		l.Error("Webhook reconciliation failed", zap.String("entity_id", ev.EntityID), zap.Error(err))
		return fail(c, statusFor(err), err.Error())
	}

	if outcome.Result == nil {
		return c.Status(fiber.StatusAccepted).JSON(models.EventResponse{ID: ev.EntityID, Skipped: outcome.Skipped})
	}
	return c.JSON(outcome.Result)
}

// HandleReconcile reconciles a single entity on demand.
// @Summary Reconcile entity
// @Description Runs the reconciliation for one entity id and returns the applied mutations.
// @Tags directory
// @Produce json
// @Param id path string true "Entity id"
// @Param dry_run query bool false "Preview the mutations without applying them"
// @Success 200 {object} reconcile.Result "Applied mutations"
// @Failure 404 {object} models.ErrorResponse "Entity not found"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Failure 502 {object} models.ErrorResponse "Knowledge store error"
// @Router /directory/reconcile/{id} [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.service.logger, c)

	opts := reconcile.Options{Simulate: c.QueryBool("dry_run", false)}
	result, err := h.service.Reconcile(c.UserContext(), id, opts)
	if err != nil {
		l.Error("Manual reconciliation failed", zap.String("entity_id", id), zap.Error(err))
		return fail(c, statusFor(err), err.Error())
	}
	return c.JSON(result)
}

func (h *Handler) methodNotAllowed(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, fiber.MethodPost)
	return fail(c, fiber.StatusMethodNotAllowed, "method not allowed")
}

// statusFor maps an error to the HTTP status returned to the caller.
func statusFor(err error) int {
	var notFound *reconcile.NotFoundError
	var configuration *reconcile.ConfigurationError
	var remote *knowledge.RemoteError

	switch {
	case errors.As(err, &notFound):
		return fiber.StatusNotFound
	case errors.As(err, &configuration):
		return fiber.StatusInternalServerError
	case errors.As(err, &remote):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(models.ErrorResponse{Error: msg})
}
