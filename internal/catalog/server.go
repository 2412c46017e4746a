package catalog

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"
)

// NewHandler serves the catalog file at /products.json and a liveness probe
// at /healthz. The file is re-read on every request so edits show up without
// a restart. Invalid JSON is reported as 500 rather than served.
func NewHandler(path string, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	r := mux.NewRouter()
	r.HandleFunc("/"+catalogPath, func(w http.ResponseWriter, req *http.Request) {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("read catalog", slog.String("path", path), slog.Any("err", err))
			http.Error(w, "catalog unavailable", http.StatusInternalServerError)
			return
		}
		if !json.Valid(data) {
			logger.Error("catalog is not valid json", slog.String("path", path))
			http.Error(w, "catalog unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}).Methods(http.MethodGet, http.MethodHead)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	return r
}
