package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

//go:embed static/*
var staticFiles embed.FS

//go:embed templates/index.html.tmpl
var indexSource string

var indexTemplate = template.Must(template.New("index").Parse(indexSource))

const notReadyMessage = "map not ready"

type pageData struct {
	Title     string
	Container string
	View      mapJSON
}

func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	view, ok := s.views.View()
	if !ok {
		http.Error(w, notReadyMessage, http.StatusServiceUnavailable)
		return
	}

	title := view.FeedTitle
	if title == "" {
		title = "Earthquakes"
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, pageData{
		Title:     title,
		Container: view.Container,
		View:      newMapJSON(view),
	}); err != nil {
		s.logger.Error("render map page failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	s.metrics.PageRenders.WithLabelValues("page").Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck // client went away
}

func (s *Server) handleMapJSON(w http.ResponseWriter, _ *http.Request) {
	view, ok := s.views.View()
	if !ok {
		sharedobs.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"error": notReadyMessage})
		return
	}

	s.metrics.PageRenders.WithLabelValues("api").Inc()
	sharedobs.WriteJSON(w, http.StatusOK, newMapJSON(view))
}
