package dashboard

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all dashboard routes on the Gin router.
func registerRoutes(router *gin.Engine, h *handlers, sessions gin.HandlerFunc) {
	// Embedded static assets (served from assets/ subdir of the embed.FS).
	staticFS, _ := fs.Sub(assetsFS, "assets")
	router.StaticFS("/static", http.FS(staticFS))

	// JSON for client-side charts; no session needed.
	router.GET("/monthly-data", h.monthlyData)

	pages := router.Group("/", sessions)

	pages.GET("/", h.loginForm)
	pages.POST("/", h.login)
	pages.GET("/logout", h.logout)
	pages.GET("/dashboard", requireLogin(), h.dashboard)
	pages.GET("/about", h.about)

	pages.GET("/prediction", h.predictionForm)
	pages.POST("/prediction", h.prediction)
	pages.GET("/health", h.healthForm)
	pages.POST("/health", h.health)
	pages.GET("/feedback", h.feedbackForm)
	pages.POST("/feedback", h.feedback)
	pages.GET("/chatbot", h.chatbot)
	pages.POST("/chatbot", h.chatbotAsk)
	pages.GET("/lang/:code", h.changeLang)

	pages.GET("/download", h.downloadPage)
	pages.GET("/download-data", h.downloadAll)
	pages.GET("/download-by-city", h.downloadByCity)
}
