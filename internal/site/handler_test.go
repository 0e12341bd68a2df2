package site

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"buildpro-site/internal/config"
	"buildpro-site/internal/content"
	"buildpro-site/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zaptest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeReader serves a fixed list, or fails every call when err is set.
type fakeReader[T any] struct {
	items []T
	err   error
	id    func(T) string

	mu        sync.Mutex
	requested []string
}

func (r *fakeReader[T]) ListAll(context.Context) ([]T, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.items, nil
}

func (r *fakeReader[T]) GetOne(_ context.Context, id string) (*T, error) {
	r.mu.Lock()
	r.requested = append(r.requested, id)
	r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.items {
		if r.id(r.items[i]) == id {
			return &r.items[i], nil
		}
	}
	return nil, content.ErrNotFound
}

type fakeSubmitter struct {
	submitted []models.Inquiry
	err       error
}

func (s *fakeSubmitter) Submit(_ context.Context, inquiry *models.Inquiry) error {
	if s.err != nil {
		return s.err
	}
	s.submitted = append(s.submitted, *inquiry)
	return nil
}

type fixture struct {
	projects     *fakeReader[models.Project]
	services     *fakeReader[models.Service]
	testimonials *fakeReader[models.Testimonial]
	submitter    *fakeSubmitter
	engine       *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		projects: &fakeReader[models.Project]{
			id: func(p models.Project) string { return p.ID },
			items: []models.Project{
				{ID: "p1", ProjectName: "Harbor Tower", ClientType: "Commercial"},
				{ID: "p2", ProjectName: "Oak Street House", ClientType: "Residential"},
				{ID: "p3", ProjectName: "Mill Conversion", ClientType: "Commercial"},
				{ID: "p4", ProjectName: "Lakeside Villas", ClientType: "Residential"},
			},
		},
		services: &fakeReader[models.Service]{
			id: func(s models.Service) string { return s.ID },
			items: []models.Service{
				{ID: "s1", ServiceName: "General Contracting", ServiceCategory: "Construction"},
				{ID: "s2", ServiceName: "Interior Fit-Out", ServiceCategory: "Design",
					CallToActionLabel: "Book a Designer", CallToActionLink: "/contact"},
			},
		},
		testimonials: &fakeReader[models.Testimonial]{
			id: func(t models.Testimonial) string { return t.ID },
			items: []models.Testimonial{
				{ID: "t1", ClientName: "Sarah Johnson", TestimonialText: "Delivered on time.", Rating: 4},
			},
		},
		submitter: &fakeSubmitter{},
	}

	profile, err := config.LoadSite("")
	if err != nil {
		t.Fatalf("LoadSite: %v", err)
	}
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	catalog := &content.Catalog{Projects: f.projects, Services: f.services, Testimonials: f.testimonials}
	h := NewHandler(catalog, profile, f.submitter, zaptest.NewLogger(t))

	r := gin.New()
	r.HTMLRender = renderer
	r.GET("/", h.Home)
	r.GET("/about", h.About)
	r.GET("/why-choose-us", h.WhyChooseUs)
	r.GET("/services", h.Services)
	r.GET("/projects", h.Projects)
	r.GET("/projects/:id", h.ProjectDetail)
	r.GET("/projects/:id/details", h.ProjectBody)
	r.GET("/contact", h.Contact)
	r.POST("/contact", h.SubmitContact)
	r.NoRoute(h.NotFound)
	f.engine = r
	return f
}

func (f *fixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func (f *fixture) postForm(t *testing.T, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func assertContains(t *testing.T, body string, want ...string) {
	t.Helper()
	for _, s := range want {
		if !strings.Contains(body, s) {
			t.Errorf("expected body to contain %q", s)
		}
	}
}

func assertNotContains(t *testing.T, body string, unwanted ...string) {
	t.Helper()
	for _, s := range unwanted {
		if strings.Contains(body, s) {
			t.Errorf("expected body not to contain %q", s)
		}
	}
}

func TestStaticPagesRender(t *testing.T) {
	f := newFixture(t)
	for path, want := range map[string]string{
		"/about":         "Our Core Values",
		"/why-choose-us": "Our Competitive Advantages",
		"/contact":       "Send Us a Message",
	} {
		w := f.get(t, path)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, w.Code)
			continue
		}
		assertContains(t, w.Body.String(), want, "BuildPro Construction", `data-reveal="up"`)
	}
}

func TestHomeShowsFirstThreeProjects(t *testing.T) {
	f := newFixture(t)
	w := f.get(t, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	assertContains(t, body, "Harbor Tower", "Oak Street House", "Mill Conversion",
		"General Contracting", "Sarah Johnson", "Client Trust")
	assertNotContains(t, body, "Lakeside Villas")
}

func TestHomeRendersWhenAFetchFails(t *testing.T) {
	f := newFixture(t)
	f.services.err = errors.New("content service unavailable")
	f.testimonials.err = errors.New("content service unavailable")

	w := f.get(t, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	assertContains(t, body, "Harbor Tower", "Comprehensive Services")
	assertNotContains(t, body, "General Contracting", "Client Trust")
}

func TestServicesFilterByCategory(t *testing.T) {
	f := newFixture(t)

	w := f.get(t, "/services?category=Design")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	assertContains(t, body, "Interior Fit-Out", `id="s2"`, "Book a Designer", `class="filter active"`)
	assertNotContains(t, body, "General Contracting")
}

func TestServicesAllShowsEverything(t *testing.T) {
	f := newFixture(t)
	body := f.get(t, "/services").Body.String()
	assertContains(t, body, "General Contracting", "Interior Fit-Out", "category=Construction", "category=Design")
}

func TestServicesHideFiltersWithoutCategories(t *testing.T) {
	f := newFixture(t)
	f.services.items = []models.Service{
		{ID: "s1", ServiceName: "Roofing"},
		{ID: "s2", ServiceName: "Glazing"},
	}
	body := f.get(t, "/services").Body.String()
	assertContains(t, body, "Roofing", "Glazing")
	assertNotContains(t, body, `class="filters"`, "category=All")
}

func TestServicesSingleCategoryShowsAllAndCategory(t *testing.T) {
	f := newFixture(t)
	f.services.items = f.services.items[:1]
	body := f.get(t, "/services").Body.String()
	assertContains(t, body, `class="filters"`, "category=All", "category=Construction")
}

func TestServicesCallToActionNeedsLabelAndLink(t *testing.T) {
	f := newFixture(t)
	f.services.items = []models.Service{
		{ID: "s1", ServiceName: "Roofing", CallToActionLabel: "Orphan Label"},
	}
	body := f.get(t, "/services").Body.String()
	assertContains(t, body, "Roofing")
	assertNotContains(t, body, "Orphan Label")
}

func TestProjectsFilterByType(t *testing.T) {
	f := newFixture(t)
	body := f.get(t, "/projects?type=Residential").Body.String()
	assertContains(t, body, "Oak Street House", "Lakeside Villas", `href="/projects/p2"`)
	assertNotContains(t, body, "Harbor Tower", "Mill Conversion")
}

func TestProjectsUnknownTypeShowsEmptyState(t *testing.T) {
	f := newFixture(t)
	body := f.get(t, "/projects?type=Industrial").Body.String()
	assertContains(t, body, "No projects found in this category.")
}

func TestProjectsFetchFailureRendersEmptyList(t *testing.T) {
	f := newFixture(t)
	f.projects.err = errors.New("timeout")

	w := f.get(t, "/projects")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	assertContains(t, w.Body.String(), "Our Projects", "No projects found in this category.")
}

func TestProjectDetailRendersLoadingShell(t *testing.T) {
	f := newFixture(t)
	w := f.get(t, "/projects/p3")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	assertContains(t, w.Body.String(), "Loading project details...", `hx-get="/projects/p3/details"`)
	if len(f.projects.requested) != 0 {
		t.Errorf("shell fetched %v before the fragment was requested", f.projects.requested)
	}
}

func TestProjectBodyFetchesExactID(t *testing.T) {
	f := newFixture(t)
	w := f.get(t, "/projects/p3/details")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(f.projects.requested) != 1 || f.projects.requested[0] != "p3" {
		t.Errorf("requested ids = %v, want [p3]", f.projects.requested)
	}
	body := w.Body.String()
	assertContains(t, body, "Mill Conversion", "Back to Projects", "Get a Quote")
	assertNotContains(t, body, "<html")
}

func TestProjectBodyNotFound(t *testing.T) {
	f := newFixture(t)
	w := f.get(t, "/projects/nope/details")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	assertContains(t, w.Body.String(), "Project not found")
}

func TestProjectBodyUpstreamFailure(t *testing.T) {
	f := newFixture(t)
	f.projects.err = errors.New("connection reset")
	w := f.get(t, "/projects/p1/details")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	assertContains(t, w.Body.String(), "Project unavailable")
}

func TestUnknownRouteRendersNotFoundPage(t *testing.T) {
	f := newFixture(t)
	w := f.get(t, "/privacy")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	assertContains(t, w.Body.String(), "Page not found")
}

func validForm() url.Values {
	return url.Values{
		"name":        {"  Jane Doe  "},
		"email":       {"jane@example.com"},
		"phone":       {"+1 555 0100"},
		"projectType": {"residential"},
		"message":     {"We would like a quote for a two-storey extension."},
	}
}

func TestSubmitContactStoresInquiry(t *testing.T) {
	f := newFixture(t)
	w := f.postForm(t, "/contact", validForm())
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/contact?sent=1" {
		t.Errorf("Location = %q", loc)
	}
	if len(f.submitter.submitted) != 1 {
		t.Fatalf("submitted %d inquiries, want 1", len(f.submitter.submitted))
	}
	if got := f.submitter.submitted[0]; got.Name != "Jane Doe" || got.ProjectType != "residential" {
		t.Errorf("inquiry = %+v", got)
	}
}

func TestSubmitContactRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		want  string
	}{
		{"missing name", "name", "", "Please enter your full name."},
		{"blank name", "name", "   ", "Please enter your full name."},
		{"bad email", "email", "not-an-email", "Please enter a valid email address."},
		{"unknown project type", "projectType", "spaceport", "Please select a project type."},
		{"missing message", "message", "", "Please tell us about your project."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			form := validForm()
			form.Set(tt.field, tt.value)

			w := f.postForm(t, "/contact", form)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			assertContains(t, w.Body.String(), tt.want)
			if len(f.submitter.submitted) != 0 {
				t.Error("invalid form should not be stored")
			}
		})
	}
}

func TestSubmitContactKeepsValuesOnError(t *testing.T) {
	f := newFixture(t)
	form := validForm()
	form.Set("email", "broken")
	body := f.postForm(t, "/contact", form).Body.String()
	assertContains(t, body, `value="Jane Doe"`, `value="broken"`, `<option value="residential" selected>`)
}

func TestSubmitContactStoreFailure(t *testing.T) {
	f := newFixture(t)
	f.submitter.err = errors.New("database is locked")
	w := f.postForm(t, "/contact", validForm())
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	assertContains(t, w.Body.String(), "Something went wrong")
}

func TestContactSentConfirmation(t *testing.T) {
	f := newFixture(t)
	body := f.get(t, "/contact?sent=1").Body.String()
	assertContains(t, body, "Message Sent!")
	assertNotContains(t, body, "<form")
}
