// Package router sets up the gin engine, its middlewares and all
// routes.
package router

import (
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	v1 "github.com/arushshukla/budget-book/internal/controllers/v1"
	"github.com/arushshukla/budget-book/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time with -ldflags.
var version = "0.0.0"

// Router controls the routes for the API.
func Router(api *v1.API) (*gin.Engine, error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, out io.Writer, latency time.Duration) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Dur("latency", latency).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	// pprof performance profiles in debug mode
	if gin.IsDebugging() {
		pprof.Register(r)
	}

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)

	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)

	r.GET("/healthz", GetHealth)
	r.OPTIONS("/healthz", OptionsHealth)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	group := r.Group("/v1")
	{
		group.GET("", GetV1)
		group.OPTIONS("", OptionsV1)
		group.DELETE("", api.ResetCurrentMonth)
		group.POST("/rollover", api.RunRollover)
	}

	api.RegisterExpenseRoutes(group.Group("/expenses"))
	api.RegisterCategoryRoutes(group.Group("/categories"))
	api.RegisterBudgetRoutes(group.Group("/budgets"))
	api.RegisterGoalRoutes(group.Group("/goal"))
	api.RegisterStreakRoutes(group.Group("/streak"))
	api.RegisterArchiveRoutes(group.Group("/archive"))
	api.RegisterSettingsRoutes(group.Group("/settings"))
	api.RegisterBackupRoutes(group)

	log.Info().Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz string `json:"healthz" example:"/healthz"`
	Version string `json:"version" example:"/version"`
	Metrics string `json:"metrics" example:"/metrics"`
	V1      string `json:"v1" example:"/v1"`
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz: "/healthz",
			Version: "/version",
			Metrics: "/metrics",
			V1:      "/v1",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.0.0"`
}

// @Summary		API version
// @Description	Returns the software version of the backend
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Health check
// @Description	Returns an empty response when the backend is healthy
// @Tags			General
// @Success		204
// @Router			/healthz [get]
func GetHealth(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func OptionsHealth(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Expenses   string `json:"expenses" example:"/v1/expenses"`
	Categories string `json:"categories" example:"/v1/categories"`
	Budgets    string `json:"budgets" example:"/v1/budgets"`
	Goal       string `json:"goal" example:"/v1/goal"`
	Streak     string `json:"streak" example:"/v1/streak"`
	Archive    string `json:"archive" example:"/v1/archive"`
	Settings   string `json:"settings" example:"/v1/settings"`
	Export     string `json:"export" example:"/v1/export"`
	Import     string `json:"import" example:"/v1/import"`
	Rollover   string `json:"rollover" example:"/v1/rollover"`
}

// @Summary		v1 root
// @Description	Entrypoint for API v1, listing all endpoints
// @Tags			v1
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Expenses:   "/v1/expenses",
			Categories: "/v1/categories",
			Budgets:    "/v1/budgets",
			Goal:       "/v1/goal",
			Streak:     "/v1/streak",
			Archive:    "/v1/archive",
			Settings:   "/v1/settings",
			Export:     "/v1/export",
			Import:     "/v1/import",
			Rollover:   "/v1/rollover",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	c.Header("allow", "GET, DELETE")
	c.Status(http.StatusNoContent)
}
