package handler

import (
	"errors"
	"math"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"fashionhub/internal/middleware"
	"fashionhub/internal/model"
	"fashionhub/internal/service"
	"fashionhub/internal/storage"

	"github.com/rs/zerolog"
)

// imageFormField is the multipart part carrying the product image.
const imageFormField = "image"

// multipartMemoryBytes is how much of a multipart body is held in memory
// before spilling to temporary files.
const multipartMemoryBytes = 8 << 20

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service        service.ProductService
	maxUploadBytes int64
	logger         zerolog.Logger
}

// NewProductHandler creates a new product handler. maxUploadBytes bounds
// multipart request bodies; zero or less leaves them unbounded.
func NewProductHandler(service service.ProductService, maxUploadBytes int64, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests with an optional ?category= filter.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products, h.logger)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product, h.logger)
}

// Create handles POST /api/products requests. A multipart/form-data body
// carries the product fields plus an image file; anything else is decoded
// as JSON with an image_url.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		h.createMultipart(w, r)
		return
	}

	var req model.ProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.audit(r, "create", product.ID)
	writeJSON(w, http.StatusCreated, product, h.logger)
}

func (h *ProductHandler) createMultipart(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadBytes > 0 {
		// Leave room for the text fields and part headers.
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+maxJSONBodyBytes)
	}

	if err := r.ParseMultipartForm(multipartMemoryBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusBadRequest, "request body too large", h.logger)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form", h.logger)
		return
	}
	defer r.MultipartForm.RemoveAll()

	req, err := productRequestFromForm(r.MultipartForm)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	file, header, err := r.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) {
		// No file: the form must name an image_url instead.
		product, err := h.service.Create(r.Context(), req)
		if err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		h.audit(r, "create", product.ID)
		writeJSON(w, http.StatusCreated, product, h.logger)
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid image file", h.logger)
		return
	}
	defer file.Close()

	img := storage.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}

	product, err := h.service.CreateWithImage(r.Context(), req, img)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.audit(r, "create", product.ID)
	writeJSON(w, http.StatusCreated, product, h.logger)
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.audit(r, "update", product.ID)
	writeJSON(w, http.StatusOK, product, h.logger)
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.audit(r, "delete", id)
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Product deleted successfully"}, h.logger)
}

// audit records which admin changed a product.
func (h *ProductHandler) audit(r *http.Request, action, productID string) {
	admin, _ := middleware.IdentityFromContext(r.Context())
	h.logger.Info().
		Str("admin", admin).
		Str("action", action).
		Str("product_id", productID).
		Msg("product changed")
}

// productRequestFromForm reads product fields from a parsed multipart form.
// Absent fields stay nil so validation reports them as missing.
func productRequestFromForm(form *multipart.Form) (*model.ProductRequest, error) {
	req := &model.ProductRequest{
		Name:        formValue(form, "name"),
		Category:    formValue(form, "category"),
		ImageURL:    formValue(form, "image_url"),
		Description: formValue(form, "description"),
	}

	if raw := formValue(form, "price"); raw != nil && strings.TrimSpace(*raw) != "" {
		price, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
		if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
			return nil, model.NewValidationError("price must be a number")
		}
		req.Price = &price
	}

	if raw := formValue(form, "sizes"); raw != nil {
		req.Sizes = model.ParseSizes(*raw)
	}

	return req, nil
}

func formValue(form *multipart.Form, key string) *string {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
