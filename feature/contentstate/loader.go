package contentstate

import (
	"content-state/core/events"
	"content-state/core/middleware/identity"
	"content-state/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates the content state feature. It is disabled without a database.
func NewFeature(db *gorm.DB, policy reconcile.Config, auth identity.Config, publisher events.Publisher, logger *zap.Logger) *Feature {
	if db == nil {
		return &Feature{}
	}
	svc := NewService(NewRepository(db), policy, publisher, logger)
	return &Feature{service: svc, handler: NewHandler(svc, auth), enabled: true}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "contentstate"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
