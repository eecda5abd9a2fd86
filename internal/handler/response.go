package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/Masterminds/sprig/v3"
	"github.com/go-chi/render"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates содержит разобранные HTML шаблоны страниц
type Templates struct {
	tmpl *template.Template
}

// ParseTemplates разбирает встроенные шаблоны страниц
func ParseTemplates() (*Templates, error) {
	tmpl, err := template.New("").Funcs(sprig.HtmlFuncMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Templates{tmpl: tmpl}, nil
}

// Execute рендерит шаблон в строку
func (t *Templates) Execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

// RespondWithJSON отправляет JSON ответ с указанным статус кодом
func RespondWithJSON(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	render.Status(r, statusCode)
	render.JSON(w, r, data)
}

// RespondWithHTML отправляет HTML ответ с указанным статус кодом
func RespondWithHTML(w http.ResponseWriter, r *http.Request, statusCode int, html string) {
	render.Status(r, statusCode)
	render.HTML(w, r, html)
}

// RedirectToPage отвечает 303 See Other на главную страницу после действия с формой
func RedirectToPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
