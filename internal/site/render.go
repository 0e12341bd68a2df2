package site

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html templates/partials/*.html
var templateFS embed.FS

//go:embed static/css/*.css static/js/*.js
var staticFS embed.FS

// StaticFS serves the embedded css and js under /static.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Full pages, each rendered inside layout.html.
var pages = []string{
	"home.html",
	"about.html",
	"services.html",
	"projects.html",
	"project_detail.html",
	"contact.html",
	"why_choose_us.html",
	"not_found.html",
}

// Fragments are swapped into an already rendered page and skip the layout.
var fragments = []string{
	"project_body.html",
}

// Renderer is a gin HTMLRender over the embedded templates. Every page gets
// its own template set so that each can define its own "content" block.
type Renderer struct {
	pages     map[string]*template.Template
	fragments map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := templateFuncs()
	r := &Renderer{
		pages:     make(map[string]*template.Template),
		fragments: make(map[string]*template.Template),
	}

	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/partials/*.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		r.pages[page] = t
	}

	for _, fragment := range fragments {
		t, err := template.New(fragment).Funcs(funcs).ParseFS(
			templateFS,
			"templates/partials/*.html",
			"templates/"+fragment,
		)
		if err != nil {
			return nil, fmt.Errorf("parsing fragment %s: %w", fragment, err)
		}
		r.fragments[fragment] = t
	}

	return r, nil
}

// Instance implements render.HTMLRender.
func (r *Renderer) Instance(name string, data any) render.Render {
	if t, ok := r.pages[name]; ok {
		return render.HTML{Template: t, Name: "layout.html", Data: data}
	}
	if t, ok := r.fragments[name]; ok {
		return render.HTML{Template: t, Name: name, Data: data}
	}
	return render.Data{
		ContentType: "text/plain; charset=utf-8",
		Data:        []byte("unknown template " + name),
	}
}
