package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"wedding-bazaar/partner-portal/partner-portal-backend/internal/auth"
	"wedding-bazaar/partner-portal/partner-portal-backend/internal/onboarding"
)

// OnboardingAPI holds the partner-onboarding API dependencies
type OnboardingAPI struct {
	Handler    *onboarding.Handler
	Service    *onboarding.Service
	Repository onboarding.Repository
}

// SetupOnboardingAPI sets up the onboarding API with all dependencies
func SetupOnboardingAPI(db *sqlx.DB, logger *zap.Logger) *OnboardingAPI {
	repository := onboarding.NewPostgresRepository(db)
	service := onboarding.NewService(repository, logger)
	handler := onboarding.NewHandler(service, logger)

	return &OnboardingAPI{
		Handler:    handler,
		Service:    service,
		Repository: repository,
	}
}

// RegisterOnboardingRoutes registers the public submission route and the
// admin routes behind the bearer-token middleware. Status mutation and
// export carry their own capability gates on top of admin access.
func RegisterOnboardingRoutes(router *gin.RouterGroup, api *OnboardingAPI, jwtSecret string) {
	api.Handler.RegisterRoutes(router)

	admin := router.Group("", auth.RequireAdmin(jwtSecret))
	api.Handler.RegisterAdminRoutes(admin)

	review := admin.Group("", auth.RequireCapability(auth.CapReviewSubmissions))
	api.Handler.RegisterReviewRoutes(review)

	export := admin.Group("", auth.RequireCapability(auth.CapExportSubmissions))
	api.Handler.RegisterExportRoutes(export)
}
