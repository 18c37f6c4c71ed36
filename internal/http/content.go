package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"docker-content-demo/internal/content"
)

type writeRequest struct {
	Content string `json:"content"`
}

func handleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, content.Greeting)
	}
}

func handleWrite(contentSvc ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// A missing "content" field, or no parseable body at all, degrades
		// to an empty line rather than a validation error.
		var req writeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		if err := contentSvc.Write(r.Context(), req.Content); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondJSON(w, map[string]string{"message": "Content written!"})
	}
}

func handleRead(contentSvc ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := contentSvc.Read(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondJSON(w, map[string]string{"content": text})
	}
}

func handleLogs(contentSvc ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, map[string]string{"log_hint": contentSvc.LogsHint()})
	}
}

func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
