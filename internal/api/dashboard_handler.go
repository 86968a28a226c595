package api

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/index.html
var templateFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type dashboardContext struct {
	AppName          string
	APIPrefix        string
	DefaultThreshold int
}

// GET /
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := dashboardTemplate.Execute(w, dashboardContext{
		AppName:          "GEMBA-Score Analyst Console",
		APIPrefix:        "/api/v1",
		DefaultThreshold: 75,
	})
	if err != nil {
		h.logger.Error("failed to render dashboard", "error", err)
	}
}
