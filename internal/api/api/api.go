package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/bhekani17/Eargleevents2/cmd/middleware"
	"github.com/bhekani17/Eargleevents2/internal/service"
)

type Routers struct {
	Service   service.Service
	JWTSecret string
}

func NewRouters(r *Routers) *ginext.Engine {
	app := ginext.New("release")

	app.Use(middleware.LoggingMiddleware())
	app.Use(cors.Default())

	apiGroup := app.Group("/v1")

	// Public site surface.
	apiGroup.GET("/packages", r.Service.GetAllPackages)
	apiGroup.GET("/packages/:id", r.Service.GetPackage)
	apiGroup.POST("/quotes", r.Service.SubmitQuote)
	apiGroup.POST("/messages", r.Service.CreateMessage)
	apiGroup.POST("/auth/login", r.Service.Login)

	// Back-office surface for the admin dashboard.
	adminGroup := apiGroup.Group("")
	adminGroup.Use(middleware.AuthMiddleware(r.JWTSecret))

	adminGroup.POST("/packages", r.Service.CreatePackage)
	adminGroup.PUT("/packages/:id", r.Service.UpdatePackage)
	adminGroup.DELETE("/packages/:id", r.Service.DeletePackage)

	adminGroup.GET("/quotes", r.Service.GetAllQuotes)
	adminGroup.GET("/quotes/:id", r.Service.GetQuote)
	adminGroup.POST("/quotes/:id/approve", r.Service.ApproveQuote)
	adminGroup.POST("/quotes/:id/reject", r.Service.RejectQuote)

	adminGroup.GET("/customers", r.Service.GetAllCustomers)
	adminGroup.POST("/customers/:id/cancel", r.Service.CancelCustomer)

	adminGroup.GET("/messages", r.Service.GetAllMessages)
	adminGroup.POST("/messages/:id/read", r.Service.MarkMessageRead)

	adminGroup.GET("/dashboard", r.Service.GetDashboard)
	adminGroup.POST("/auth/register", r.Service.RegisterAdmin)

	app.GET("/metrics", gin.WrapH(promhttp.Handler()))
	app.GET("/healthz", func(c *ginext.Context) {
		c.JSON(200, map[string]string{"status": "ok"})
	})

	return app
}
