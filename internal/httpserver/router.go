package httpserver

import (
	"buildpro-site/internal/api"
	"buildpro-site/internal/site"
	"buildpro-site/internal/webhook"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Site      *site.Handler
	Renderer  *site.Renderer
	Health    *api.HealthHandler
	Content   *api.ContentHandler
	Inquiries *api.InquiryHandler
	Webhook   *webhook.Handler
}

func NewRouter(h Handlers, adminToken string, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(logger), observeDuration(), recovery(logger))
	r.HTMLRender = h.Renderer

	r.StaticFS("/static", site.StaticFS())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Pages
	r.GET("/", h.Site.Home)
	r.GET("/about", h.Site.About)
	r.GET("/services", h.Site.Services)
	r.GET("/projects", h.Site.Projects)
	r.GET("/projects/:id", h.Site.ProjectDetail)
	r.GET("/projects/:id/details", h.Site.ProjectBody)
	r.GET("/contact", h.Site.Contact)
	r.POST("/contact", h.Site.SubmitContact)
	r.GET("/why-choose-us", h.Site.WhyChooseUs)

	// Content change notifications
	r.GET("/webhooks/content", h.Webhook.VerifyWebhook)
	r.POST("/webhooks/content", h.Webhook.HandleContentChange)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", h.Health.Health)
		apiGroup.GET("/ready", h.Health.Ready)
		apiGroup.GET("/projects", h.Content.ListProjects)
		apiGroup.GET("/projects/:id", h.Content.GetProject)
		apiGroup.GET("/services", h.Content.ListServices)
		apiGroup.GET("/testimonials", h.Content.ListTestimonials)

		admin := apiGroup.Group("/inquiries", requireBearer(adminToken))
		{
			admin.GET("", h.Inquiries.GetInquiries)
			admin.GET("/export", h.Inquiries.ExportInquiries)
		}
	}

	r.NoRoute(h.Site.NotFound)
	return r
}
