package site

import (
	"errors"
	"net/http"
	"strings"

	"buildpro-site/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ContactForm struct {
	Name        string `form:"name" binding:"required,max=255"`
	Email       string `form:"email" binding:"required,email,max=255"`
	Phone       string `form:"phone" binding:"max=50"`
	ProjectType string `form:"projectType" binding:"required"`
	Message     string `form:"message" binding:"required,max=5000"`
}

func (f *ContactForm) trim() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.ProjectType = strings.TrimSpace(f.ProjectType)
	f.Message = strings.TrimSpace(f.Message)
}

type ContactPage struct {
	Page
	Form   ContactForm
	Errors map[string]string
	Sent   bool
	Failed bool
}

var fieldMessages = map[string]string{
	"Name":        "Please enter your full name.",
	"Email":       "Please enter a valid email address.",
	"Phone":       "Phone number is too long.",
	"ProjectType": "Please select a project type.",
	"Message":     "Please tell us about your project.",
}

func (h *Handler) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", ContactPage{
		Page: h.page("Contact Us", "/contact"),
		Sent: c.Query("sent") == "1",
	})
}

// SubmitContact stores a contact form inquiry and redirects back to the
// contact page, or re-renders the form with field errors.
func (h *Handler) SubmitContact(c *gin.Context) {
	var form ContactForm
	err := c.ShouldBindWith(&form, binding.Form)
	var verrs validator.ValidationErrors
	if err == nil || errors.As(err, &verrs) {
		// The form is fully mapped once validation runs; judge the trimmed values.
		form.trim()
		err = binding.Validator.ValidateStruct(&form)
	}

	errs := formErrors(err)
	if err == nil && h.site.ProjectTypeLabel(form.ProjectType) == "" {
		errs["ProjectType"] = fieldMessages["ProjectType"]
	}
	if len(errs) > 0 {
		c.HTML(http.StatusBadRequest, "contact.html", ContactPage{
			Page:   h.page("Contact Us", "/contact"),
			Form:   form,
			Errors: errs,
		})
		return
	}

	inquiry := &models.Inquiry{
		Name:        form.Name,
		Email:       form.Email,
		Phone:       form.Phone,
		ProjectType: form.ProjectType,
		Message:     form.Message,
	}
	if err := h.inquiries.Submit(c.Request.Context(), inquiry); err != nil {
		h.logger.Error("failed to store inquiry", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "contact.html", ContactPage{
			Page:   h.page("Contact Us", "/contact"),
			Form:   form,
			Failed: true,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/contact?sent=1")
}

// formErrors maps binding errors to one message per form field.
func formErrors(err error) map[string]string {
	errs := make(map[string]string)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["Form"] = "We could not read the form. Please try again."
		return errs
	}
	for _, fe := range verrs {
		if msg, ok := fieldMessages[fe.Field()]; ok {
			errs[fe.Field()] = msg
		}
	}
	return errs
}
