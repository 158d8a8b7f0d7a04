// Package http wires the Redfish controllers into a gin engine.
package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/device-management-toolkit/oneview-redfish/config"
	redfishv1 "github.com/device-management-toolkit/oneview-redfish/internal/controller/http/redfish/v1"
	"github.com/device-management-toolkit/oneview-redfish/internal/usecase/inventory"
	"github.com/device-management-toolkit/oneview-redfish/pkg/logger"
)

const corsMaxAge = 12 * time.Hour

// NewRouter registers every route on handler. Panics in any handler are
// answered with a Redfish GeneralError body.
func NewRouter(handler *gin.Engine, cfg *config.Config, l logger.Interface, inv inventory.Feature, b redfishv1.PortBuilder) {
	handler.Use(gin.Logger(), redfishv1.RedfishRecoveryMiddleware())

	if len(cfg.HTTP.AllowedOrigins) > 0 {
		handler.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.HTTP.AllowedOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodOptions},
			AllowHeaders:  cfg.HTTP.AllowedHeaders,
			ExposeHeaders: []string{redfishv1.HeaderETag, redfishv1.ODataVersionHeader},
			MaxAge:        corsMaxAge,
		}))
	}

	handler.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.HTTP.Pprof {
		pprof.Register(handler)
		l.Warn("pprof endpoints enabled under %s", pprof.DefaultPrefix)
	}

	redfish := handler.Group("/redfish/v1")
	redfishv1.NewServiceRootRoutes(redfish, cfg, l)
	redfishv1.NewChassisRoutes(redfish, inv, l)
	redfishv1.NewNetworkPortRoutes(redfish, inv, b, l)
}
