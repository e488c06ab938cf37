package webserver

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/GaneshChandgude/llm-selection-workbench/internal/guide"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/webapi"
	"github.com/GaneshChandgude/llm-selection-workbench/web"
)

// registerRoutes sets up API, guide, and static routes on the given mux.
func registerRoutes(mux *http.ServeMux, h *webapi.Handlers) error {
	webapi.RegisterRoutes(mux, h)

	mux.HandleFunc("GET /guide", handleGuide)

	staticFS, err := fs.Sub(web.Assets, "static")
	if err != nil {
		return fmt.Errorf("failed to create sub filesystem for web/static: %w", err)
	}
	mux.Handle("GET /", http.FileServer(http.FS(staticFS)))
	return nil
}

// handleGuide serves the selection guide rendered as HTML.
func handleGuide(w http.ResponseWriter, _ *http.Request) {
	html, err := guide.RenderHTML()
	if err != nil {
		http.Error(w, "failed to render guide", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html) //nolint:errcheck
}
