package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/dgallion1/gemdown/internal/gemtext"
	"github.com/dgallion1/gemdown/internal/render"
)

// handleConvert converts the request body synchronously and returns the
// result in the requested output format.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	renderer, err := render.ForFormat(r.URL.Query().Get("format"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "failed to read body: "+err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	out, err := renderer.Render(bytes.NewReader(data))
	if err != nil {
		var me *gemtext.MalformedError
		if errors.As(err, &me) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]any{
				"error": me.Error(),
				"kind":  me.Kind,
				"line":  me.Line,
			})
			return
		}
		jsonError(w, "conversion failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	s.orchestrator.Stats().Record(time.Since(start), int64(len(data)))

	w.Header().Set("Content-Type", renderer.ContentType())
	w.Write(out)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
