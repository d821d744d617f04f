package v1

import (
	"net/http"
	"project-inquiry-backend/internal/delivery/http/response"
	"project-inquiry-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RootHandler struct {
	healthUC usecase.HealthUsecase
}

// NewRootHandler registers the welcome and health routes
func NewRootHandler(r gin.IRoutes, healthUC usecase.HealthUsecase) {
	handler := &RootHandler{healthUC: healthUC}

	r.GET("/", handler.Welcome)
	r.GET("/health", handler.Health)
}

// Welcome godoc
// @Summary      Welcome
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       / [get]
func (h *RootHandler) Welcome(c *gin.Context) {
	response.Success(c, http.StatusOK, "Welcome folks", nil)
}

// Health godoc
// @Summary      Component status
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health [get]
func (h *RootHandler) Health(c *gin.Context) {
	status := h.healthUC.Check(c.Request.Context())
	response.Success(c, http.StatusOK, "System "+status["status"], status)
}
