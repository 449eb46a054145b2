package webui

import (
	"embed"
	"html/template"
	"net/http"

	"carrierdash/internal/app"
	"carrierdash/internal/logging"
)

//go:embed debug_index.html dashboard.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "debug_index.html", "dashboard.html"))

// WebUI serves the HTML dashboard and the debug pages
type WebUI struct {
	*app.Application
}

func New(application *app.Application) *WebUI {
	return &WebUI{Application: application}
}

func (webUI *WebUI) render(w http.ResponseWriter, r *http.Request, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		logging.FromContext(r.Context()).Error("failed to render template",
			"template", name,
			"error", err,
			"component", "webui")
	}
}
