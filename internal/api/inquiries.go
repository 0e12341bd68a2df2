package api

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"buildpro-site/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	defaultInquiryLimit = 100
	maxInquiryLimit     = 1000
)

// InquiryLister reads stored contact inquiries, newest first.
type InquiryLister interface {
	List(ctx context.Context, limit int) ([]models.Inquiry, error)
}

type InquiryHandler struct {
	inquiries InquiryLister
}

func NewInquiryHandler(inquiries InquiryLister) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

func (h *InquiryHandler) GetInquiries(c *gin.Context) {
	limit := defaultInquiryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxInquiryLimit)
	}

	inquiries, err := h.inquiries.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Return empty array instead of null
	if inquiries == nil {
		inquiries = []models.Inquiry{}
	}

	c.JSON(http.StatusOK, inquiries)
}

func (h *InquiryHandler) ExportInquiries(c *gin.Context) {
	inquiries, err := h.inquiries.List(c.Request.Context(), maxInquiryLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"ID", "Name", "Email", "Phone", "Project Type", "Message", "Created At"})
	for _, inq := range inquiries {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(inq.ID), 10),
			inq.Name,
			inq.Email,
			inq.Phone,
			inq.ProjectType,
			inq.Message,
			inq.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=inquiries.csv")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
