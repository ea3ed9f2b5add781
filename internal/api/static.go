package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yegors/seat-side/pkg/logger"
)

// StaticFileHandler serves the web UI from a directory. Unknown paths without a file
// extension fall back to index.html so client-side routes load the app.
type StaticFileHandler struct {
	staticDir string
	logger    *logger.Logger
}

// NewStaticFileHandler creates a new static file handler
func NewStaticFileHandler(staticDir string, log *logger.Logger) *StaticFileHandler {
	return &StaticFileHandler{
		staticDir: staticDir,
		logger:    log.Named("static-handler"),
	}
}

// ServeHTTP serves static files without caching
func (h *StaticFileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	absStaticDir, err := filepath.Abs(h.staticDir)
	if err != nil {
		h.logger.Error("Failed to get absolute path for static directory", logger.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// path.Clean on a rooted path strips any ".." segments
	requested := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	fullPath := filepath.Join(absStaticDir, filepath.FromSlash(requested))

	if fullPath != absStaticDir && !strings.HasPrefix(fullPath, absStaticDir+string(filepath.Separator)) {
		h.logger.Warn("Attempted directory traversal",
			logger.String("requested_path", r.URL.Path))
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	file, ok := h.resolve(fullPath)
	if !ok {
		if filepath.Ext(requested) != "" {
			h.logger.Debug("File not found", logger.String("path", fullPath))
			http.NotFound(w, r)
			return
		}
		file, ok = h.resolve(filepath.Join(absStaticDir, "index.html"))
		if !ok {
			http.NotFound(w, r)
			return
		}
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")

	h.logger.Debug("Serving static file",
		logger.String("requested_path", r.URL.Path),
		logger.String("file_path", file))

	http.ServeFile(w, r, file)
}

// resolve returns a regular file for p, using index.html for directories
func (h *StaticFileHandler) resolve(p string) (string, bool) {
	info, err := os.Stat(p)
	if err != nil {
		return "", false
	}
	if !info.IsDir() {
		return p, true
	}

	index := filepath.Join(p, "index.html")
	if info, err := os.Stat(index); err == nil && !info.IsDir() {
		return index, true
	}
	return "", false
}
