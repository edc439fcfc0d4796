package router

import (
	"github.com/gin-gonic/gin"

	assetshandler "github.com/dahldoescards/bowman-tracker/internal/feature/assets/transport/handler"
	prefshandler "github.com/dahldoescards/bowman-tracker/internal/feature/prefs/transport/handler"
	"github.com/dahldoescards/bowman-tracker/internal/platform/http/handler"
)

// NewRouter builds the companion server routes. The upstream API surface
// is a closed set, so each endpoint is registered explicitly; everything
// unmatched is treated as a static asset.
func NewRouter(proxy *assetshandler.ProxyHandler, prefs *prefshandler.PreferenceHandler) *gin.Engine {
	r := gin.Default()

	// Liveness of the companion server itself.
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		// Handled locally.
		api.GET("/prefs/theme", prefs.GetTheme)
		api.PUT("/prefs/theme", prefs.SetTheme)

		// Forwarded to the tracker service, network-first with offline
		// synthesis for reads.
		api.GET("/summary", proxy.HandleAPI)
		api.GET("/chart/:variant", proxy.HandleAPI)
		api.GET("/sales", proxy.HandleAPI)
		api.GET("/sales/:variant", proxy.HandleAPI)
		api.GET("/health", proxy.HandleAPI)
		api.GET("/scheduler/status", proxy.HandleAPI)
		api.POST("/scheduler/start", proxy.HandleAPI)
		api.POST("/scheduler/stop", proxy.HandleAPI)
		api.POST("/fetch", proxy.HandleAPI)
	}

	// Everything else is a static asset served cache-first.
	r.NoRoute(proxy.HandleAsset)

	return r
}
