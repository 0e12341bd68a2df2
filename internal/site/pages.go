package site

import (
	"context"
	"errors"
	"net/http"
	"time"

	"buildpro-site/internal/config"
	"buildpro-site/internal/content"
	"buildpro-site/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const featuredProjects = 3

// Submitter accepts contact form inquiries.
type Submitter interface {
	Submit(ctx context.Context, inquiry *models.Inquiry) error
}

type Handler struct {
	catalog   *content.Catalog
	site      *config.Site
	inquiries Submitter
	logger    *zap.Logger
	now       func() time.Time
}

func NewHandler(catalog *content.Catalog, site *config.Site, inquiries Submitter, logger *zap.Logger) *Handler {
	return &Handler{
		catalog:   catalog,
		site:      site,
		inquiries: inquiries,
		logger:    logger,
		now:       time.Now,
	}
}

// Page is the data every layout render needs.
type Page struct {
	Site  *config.Site
	Title string
	Path  string
	Year  int
}

func (h *Handler) page(title, path string) Page {
	return Page{Site: h.site, Title: title, Path: path, Year: h.now().Year()}
}

type HomePage struct {
	Page
	Projects     []models.Project
	Services     []models.Service
	Testimonials []models.Testimonial
}

type ListingPage[T any] struct {
	Page
	Items    []T
	Options  []string
	Selected string
}

// ShowFilters reports whether there is anything to choose besides All.
func (p ListingPage[T]) ShowFilters() bool {
	return len(p.Options) > 1
}

type ProjectDetailPage struct {
	Page
	ID string
}

type ProjectBody struct {
	Site     *config.Site
	Project  *models.Project
	NotFound bool
	Failed   bool
}

func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		projects     []models.Project
		services     []models.Service
		testimonials []models.Testimonial
	)

	// Each read absorbs its own failure, so Wait never reports one.
	var g errgroup.Group
	g.Go(func() error {
		projects = content.ListOrEmpty(ctx, h.catalog.Projects, content.Projects, h.logger)
		return nil
	})
	g.Go(func() error {
		services = content.ListOrEmpty(ctx, h.catalog.Services, content.Services, h.logger)
		return nil
	})
	g.Go(func() error {
		testimonials = content.ListOrEmpty(ctx, h.catalog.Testimonials, content.Testimonials, h.logger)
		return nil
	})
	_ = g.Wait()

	if len(projects) > featuredProjects {
		projects = projects[:featuredProjects]
	}

	c.HTML(http.StatusOK, "home.html", HomePage{
		Page:         h.page("Building The Future Today", "/"),
		Projects:     projects,
		Services:     services,
		Testimonials: testimonials,
	})
}

func (h *Handler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", h.page("About Us", "/about"))
}

func (h *Handler) WhyChooseUs(c *gin.Context) {
	c.HTML(http.StatusOK, "why_choose_us.html", h.page("Why Choose Us", "/why-choose-us"))
}

func serviceCategory(s models.Service) string { return s.ServiceCategory }

func projectClientType(p models.Project) string { return p.ClientType }

func (h *Handler) Services(c *gin.Context) {
	all := content.ListOrEmpty(c.Request.Context(), h.catalog.Services, content.Services, h.logger)
	selected := selection(c.Query("category"))

	c.HTML(http.StatusOK, "services.html", ListingPage[models.Service]{
		Page:     h.page("Our Services", "/services"),
		Items:    content.Filter(all, selected, serviceCategory),
		Options:  content.Options(all, serviceCategory),
		Selected: selected,
	})
}

func (h *Handler) Projects(c *gin.Context) {
	all := content.ListOrEmpty(c.Request.Context(), h.catalog.Projects, content.Projects, h.logger)
	selected := selection(c.Query("type"))

	c.HTML(http.StatusOK, "projects.html", ListingPage[models.Project]{
		Page:     h.page("Our Projects", "/projects"),
		Items:    content.Filter(all, selected, projectClientType),
		Options:  content.Options(all, projectClientType),
		Selected: selected,
	})
}

func selection(q string) string {
	if q == "" {
		return content.All
	}
	return q
}

// ProjectDetail renders the page shell in its loading state; the record is
// fetched by ProjectBody once the shell is on screen.
func (h *Handler) ProjectDetail(c *gin.Context) {
	c.HTML(http.StatusOK, "project_detail.html", ProjectDetailPage{
		Page: h.page("Project Details", "/projects"),
		ID:   c.Param("id"),
	})
}

func (h *Handler) ProjectBody(c *gin.Context) {
	id := c.Param("id")
	project, err := h.catalog.Projects.GetOne(c.Request.Context(), id)
	switch {
	case errors.Is(err, content.ErrNotFound):
		c.HTML(http.StatusNotFound, "project_body.html", ProjectBody{Site: h.site, NotFound: true})
	case err != nil:
		h.logger.Warn("project fetch failed", zap.String("id", id), zap.Error(err))
		c.HTML(http.StatusBadGateway, "project_body.html", ProjectBody{Site: h.site, Failed: true})
	default:
		c.HTML(http.StatusOK, "project_body.html", ProjectBody{Site: h.site, Project: project})
	}
}

func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", h.page("Page Not Found", c.Request.URL.Path))
}
