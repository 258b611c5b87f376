package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether the API is up
//
//	@Summary		Health check
//	@Description	Liveness check for the API
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"Service is up"
//	@Router			/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "hireme-api",
	})
}
