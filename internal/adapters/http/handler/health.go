package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler は死活監視エンドポイントを提供します。
type HealthHandler struct{}

// NewHealthHandler は HealthHandler を生成します。
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check は GET /api/health を処理します。
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
