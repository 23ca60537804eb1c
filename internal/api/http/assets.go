package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/schoolscout/schoolscout-api/internal/storage"
)

// UploadAssetHandler stores a school photo; routed behind the admin group.
func UploadAssetHandler(bs storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schoolID := chi.URLParam(r, "schoolID")
		f, hdr, err := r.FormFile("file")
		if err != nil {
			errJSON(w, 400, "file required")
			return
		}
		defer f.Close()

		name := "photo.jpg"
		if hdr != nil && hdr.Filename != "" {
			name = hdr.Filename
		}
		key := "schools/" + schoolID + "/" + name
		if _, err := bs.Put(key, f); err != nil {
			errJSON(w, 500, "store error: "+err.Error())
			return
		}
		writeJSON(w, map[string]string{"key": key})
	}
}

// GetAssetHandler returns the blob at whatever follows /assets/. Reads are
// public so cards can embed imagery URLs directly.
func GetAssetHandler(bs storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
		rc, err := bs.Get(key)
		if err != nil {
			errJSON(w, 404, "not found")
			return
		}
		defer rc.Close()
		switch {
		case strings.HasSuffix(key, ".png"):
			w.Header().Set("Content-Type", "image/png")
		case strings.HasSuffix(key, ".jpg"), strings.HasSuffix(key, ".jpeg"):
			w.Header().Set("Content-Type", "image/jpeg")
		default:
			w.Header().Set("Content-Type", "application/octet-stream")
		}
		_, _ = io.Copy(w, rc)
	}
}
