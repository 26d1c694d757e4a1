package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"vrms-backend/internal/storage"
)

const presignedURLTTL = 15 * time.Minute

var photoContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// PhotoUploadHandler serves the blob side of vehicle photos: it hands
// out presigned URLs and, for the local backend, receives the bytes.
type PhotoUploadHandler struct {
	store storage.PhotoStorage
}

func NewPhotoUploadHandler(store storage.PhotoStorage) *PhotoUploadHandler {
	return &PhotoUploadHandler{store: store}
}

type createUploadURLRequest struct {
	ContentType string `json:"content_type"`
}

type createUploadURLResponse struct {
	Key         string `json:"key"`
	UploadURL   string `json:"upload_url"`
	DownloadURL string `json:"download_url"`
}

// CreateUploadURL reserves a storage key under the vehicle and returns
// the presigned pair. The caller PUTs the image to upload_url, then
// registers download_url with the photos endpoint.
func (h *PhotoUploadHandler) CreateUploadURL(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := pathID(r, "vehicleID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req createUploadURLRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ext, ok := photoContentTypes[req.ContentType]
	if !ok {
		respondError(w, http.StatusBadRequest, "unsupported content type")
		return
	}

	key := fmt.Sprintf("vehicles/%d/%s%s", vehicleID, uuid.NewString(), ext)
	uploadURL, err := h.store.PresignedUploadURL(r.Context(), key, req.ContentType, presignedURLTTL)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create upload url")
		return
	}
	downloadURL, err := h.store.PresignedDownloadURL(r.Context(), key, presignedURLTTL)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create download url")
		return
	}

	respondJSON(w, http.StatusCreated, createUploadURLResponse{
		Key:         key,
		UploadURL:   uploadURL,
		DownloadURL: downloadURL,
	})
}

// HandleUpload receives the PUT against a presigned upload URL when the
// local backend is in use. The token in the path must match a grant the
// storage backend issued for this exact key.
func (h *PhotoUploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		respondError(w, http.StatusBadRequest, "missing key parameter")
		return
	}
	if _, ok := photoContentTypes[r.Header.Get("Content-Type")]; !ok {
		respondError(w, http.StatusBadRequest, "unsupported content type")
		return
	}

	if err := h.store.Save(mux.Vars(r)["token"], key, r.Body); err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidKey):
			respondError(w, http.StatusBadRequest, "invalid key")
		case errors.Is(err, storage.ErrUnauthorized):
			respondError(w, http.StatusForbidden, "upload not authorized")
		default:
			respondError(w, http.StatusInternalServerError, "failed to save photo")
		}
		return
	}
	w.WriteHeader(http.StatusOK)
}

// HandleDownload streams a stored photo back for the local backend.
func (h *PhotoUploadHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		respondError(w, http.StatusBadRequest, "missing key parameter")
		return
	}

	file, err := h.store.Open(mux.Vars(r)["sig"], key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidKey):
			respondError(w, http.StatusBadRequest, "invalid key")
		case errors.Is(err, storage.ErrUnauthorized):
			respondError(w, http.StatusForbidden, "download not authorized")
		default:
			respondError(w, http.StatusNotFound, "photo not found")
		}
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
