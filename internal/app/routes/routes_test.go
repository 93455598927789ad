package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/omondi/shulehub/internal/app/controllers"
	"github.com/omondi/shulehub/internal/middleware"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRouter(router,
		controllers.NewAdminController(nil),
		controllers.NewStudentController(nil),
		controllers.NewCampaignController(nil),
		controllers.NewResourceController(nil),
		controllers.NewCouncilController(nil),
		controllers.NewSubscriberController(nil),
		controllers.NewNewsController(nil),
		middleware.NewAuthMiddleware(nil, nil),
	)
	return router
}

func registeredRoutes(router *gin.Engine) map[string]bool {
	routes := map[string]bool{}
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func TestSetupRouterRegistersEndpoints(t *testing.T) {
	routes := registeredRoutes(setupTestRouter())

	// The bulk lifecycle operation lives on the collection itself.
	expected := []string{
		"POST /api/v1/auth/login",
		"GET /api/v1/auth/profile",
		"PATCH /api/v1/students",
		"PATCH /api/v1/students/:id/repeat",
		"GET /api/v1/students/export",
		"POST /api/v1/students/bulk-delete",
		"PATCH /api/v1/campaigns/:id/publish",
		"POST /api/v1/campaigns/broadcast",
		"GET /api/v1/campaigns/groups/:group/recipients",
		"GET /api/v1/news",
		"POST /api/v1/news",
		"GET /api/v1/news/:id",
		"PUT /api/v1/news/:id",
		"DELETE /api/v1/news/:id",
		"GET /api/v1/council/positions",
		"POST /api/v1/resources/:id/download",
		"POST /api/v1/subscribers",
		"POST /api/v1/subscribers/unsubscribe",
	}
	for _, route := range expected {
		assert.Truef(t, routes[route], "route %q is not registered", route)
	}

	assert.False(t, routes["PATCH /api/v1/students/promote"], "bulk lifecycle must not hang off a /promote subpath")
}
