package api

import (
	"errors"
	"net/http"

	"buildpro-site/internal/content"
	"buildpro-site/internal/models"
	pkgmodels "buildpro-site/pkg/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler exposes the content collections as JSON. Unlike the pages,
// it reports failed reads to the caller.
type ContentHandler struct {
	catalog *content.Catalog
	logger  *zap.Logger
}

func NewContentHandler(catalog *content.Catalog, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{catalog: catalog, logger: logger}
}

func (h *ContentHandler) ListProjects(c *gin.Context) {
	listCollection(c, h, h.catalog.Projects, content.Projects, c.Query("clientType"),
		func(p models.Project) string { return p.ClientType })
}

func (h *ContentHandler) ListServices(c *gin.Context) {
	listCollection(c, h, h.catalog.Services, content.Services, c.Query("category"),
		func(s models.Service) string { return s.ServiceCategory })
}

func (h *ContentHandler) ListTestimonials(c *gin.Context) {
	listCollection(c, h, h.catalog.Testimonials, content.Testimonials, "", nil)
}

func (h *ContentHandler) GetProject(c *gin.Context) {
	id := c.Param("id")
	project, err := h.catalog.Projects.GetOne(c.Request.Context(), id)
	if errors.Is(err, content.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		h.logger.Warn("project fetch failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch project"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func listCollection[T any](c *gin.Context, h *ContentHandler, r content.Reader[T], collection content.Collection, selection string, key func(T) string) {
	items, err := r.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Warn("content fetch failed",
			zap.String("collection", string(collection)),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch " + string(collection)})
		return
	}
	if key != nil {
		items = content.Filter(items, selection, key)
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, pkgmodels.ListResponse[T]{Items: items})
}
