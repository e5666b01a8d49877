package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
)

//go:embed templates/*.html
var templateFS embed.FS

// HomeData drives the URL entry page.
type HomeData struct {
	URL   string
	Alert string
	Hint  string
}

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
}

// NewRenderer parses the embedded templates. Course text is rendered as
// Markdown with raw HTML disabled.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{md: goldmark.New()}
	tmpl, err := template.New("pages").
		Funcs(template.FuncMap{"markdown": r.markdown}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// NewFailureHome builds the home page shown after a failed generation.
func NewFailureHome(rawURL, message string) HomeData {
	return HomeData{
		URL:   rawURL,
		Alert: "Failed to generate course: " + message,
		Hint:  ErrorHint(message),
	}
}

func (r *Renderer) RenderHome(w io.Writer, data HomeData) error {
	return r.execute(w, "home", data)
}

func (r *Renderer) RenderCourse(w io.Writer, page *Page) error {
	return r.execute(w, "course", page)
}

func (r *Renderer) RenderNotFound(w io.Writer) error {
	return r.execute(w, "notfound", nil)
}

// execute renders into a buffer so a template error never leaves a
// half-written page behind.
func (r *Renderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
