package pipeline

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/wirekit/version"
)

// MountDiagnostics registers the health and version endpoints on the engine.
// App setups call it when the service exposes the standard probe surface.
func (b *Builder) MountDiagnostics() {
	b.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	b.engine.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, version.Get())
	})
}
