package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zynoshop/storefront-backend/internal/repository"
	"github.com/zynoshop/storefront-backend/internal/service"
)

// maxUploadSize caps multipart image uploads at 10 MiB
const maxUploadSize = 10 << 20

// ImageHandler handles image upload, download and filter requests
type ImageHandler struct {
	service *service.ImageService
	log     *slog.Logger
}

// NewImageHandler creates a new image handler
func NewImageHandler(service *service.ImageService, log *slog.Logger) *ImageHandler {
	return &ImageHandler{
		service: service,
		log:     log,
	}
}

// UploadImage handles POST /images/upload.
// Expects a multipart form with a "file" part and an optional "productId"
// field linking the image to a product.
func (h *ImageHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart form", h.log)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Missing file", h.log)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.log.Error("failed to read uploaded file", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	contentType := header.Header.Get("Content-Type")
	productID := r.FormValue("productId")

	image, err := h.service.SaveImage(r.Context(), data, header.Filename, contentType, productID)
	if err != nil {
		if errors.Is(err, service.ErrEmptyFile) {
			WriteError(w, http.StatusBadRequest, "File content is required", h.log)
			return
		}
		h.log.Error("failed to save image", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("image uploaded", "id", image.ID, "fileName", image.FileName, "size", len(data))
	WriteJSON(w, http.StatusOK, map[string]string{"id": image.ID}, h.log)
}

// DownloadImage handles GET /images/download/{id}, returning the raw bytes
// with a content-disposition derived from the image ID
func (h *ImageHandler) DownloadImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	image, err := h.service.GetImage(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Image not found", h.log)
			return
		}
		h.log.Error("failed to get image", "id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	contentType := image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=image_%s.jpg", image.ID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(image.Data); err != nil {
		h.log.Error("failed to write image bytes", "id", id, "error", err)
	}
}

// DeleteImage handles DELETE /images/delete/{id}
func (h *ImageHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteImage(r.Context(), id); err != nil {
		h.log.Error("failed to delete image", "id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// ListImages handles GET /images/all
func (h *ImageHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.ListImages(r.Context())
	if err != nil {
		h.log.Error("failed to list images", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, images, h.log)
}

// GetImagesByProductID handles GET /images/product/{productId}.
// Responds 404 when the product itself does not exist.
func (h *ImageHandler) GetImagesByProductID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	images, err := h.service.GetImagesByProductID(r.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
			return
		}
		h.log.Error("failed to filter images by product", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, images, h.log)
}

// GetImagesByContentType handles GET /images/content-type?contentType=
func (h *ImageHandler) GetImagesByContentType(w http.ResponseWriter, r *http.Request) {
	contentType := r.URL.Query().Get("contentType")

	images, err := h.service.GetImagesByContentType(r.Context(), contentType)
	if err != nil {
		h.log.Error("failed to filter images by content type", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, images, h.log)
}
