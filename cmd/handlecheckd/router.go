package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/codeGROOVE-dev/handlecheck/pkg/handle"
	"github.com/codeGROOVE-dev/handlecheck/pkg/resultcache"
)

func newRouter(ev resultcache.Evaluator, results *resultcache.Cache, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	})

	r.Get("/v1/check/{handle}", func(w http.ResponseWriter, req *http.Request) {
		baseHandle := chi.URLParam(req, "handle")
		if !handle.Valid(baseHandle) {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "handle must be 1-30 alphanumeric/underscore characters",
			}, logger)
			return
		}

		var platforms []handle.Platform
		if list := req.URL.Query().Get("platforms"); list != "" {
			for _, name := range strings.Split(list, ",") {
				p, ok := handle.Lookup(name)
				if !ok {
					writeJSON(w, http.StatusBadRequest, map[string]string{
						"error": "unsupported platform: " + name,
					}, logger)
					return
				}
				platforms = append(platforms, p)
			}
		}

		result, err := results.Check(req.Context(), ev, baseHandle, platforms...)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, handle.ErrInvalidHandle) || errors.Is(err, handle.ErrUnsupportedPlatform) {
				status = http.StatusBadRequest
			}
			logger.Warn("check failed", "handle", baseHandle, "error", err)
			writeJSON(w, status, map[string]string{"error": err.Error()}, logger)
			return
		}
		writeJSON(w, http.StatusOK, result, logger)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Debug("write response", "error", err)
	}
}
