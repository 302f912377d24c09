package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Ack é a resposta padrão de delete
func Ack(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
