package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"

	"letterhead-service/internal/dto/request"
	"letterhead-service/internal/usecase"
	"letterhead-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LogoField is the multipart field carrying the logo file.
const LogoField = "logo"

// multipartMemory is how much of a multipart body is kept in memory before
// spilling to temp files.
const multipartMemory = 8 << 20

type LetterheadHandler struct {
	service        usecase.LetterheadService
	maxUploadBytes int64
	log            *zap.Logger
}

func NewLetterheadHandler(service usecase.LetterheadService, maxUploadBytes int64, log *zap.Logger) *LetterheadHandler {
	return &LetterheadHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		log:            log.With(zap.String("handler", "letterhead")),
	}
}

// CreateLetterhead handles POST /api/letterheads
func (h *LetterheadHandler) CreateLetterhead(w http.ResponseWriter, r *http.Request) {
	var req request.CreateLetterheadRequest

	// an empty body inserts a row with every field NULL
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := decodeOptionalJSON(r.Body, &req); err != nil {
		h.rejectBody(w, err)
		return
	}

	letterhead, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create letterhead")
		return
	}

	utils.ResponseCreated(w, letterhead)
}

// GetLetterheads handles GET /api/letterheads?email=
func (h *LetterheadHandler) GetLetterheads(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("email") {
		// no owner, nothing can match
		utils.ResponseSuccess(w, []any{})
		return
	}

	letterheads, err := h.service.ListByOwner(r.Context(), query.Get("email"))
	if err != nil {
		h.handleServiceError(w, err, "get letterheads")
		return
	}

	utils.ResponseSuccess(w, letterheads)
}

// GetLetterheadByID handles GET /api/letterheads/{id}
func (h *LetterheadHandler) GetLetterheadByID(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w, "Letterhead not found")
		return
	}

	letterhead, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get letterhead by ID")
		return
	}

	utils.ResponseSuccess(w, letterhead)
}

// UpsertLetterhead handles PUT /api/letterheads/email/{email}. The body is
// multipart (fields plus optional "logo" file) or JSON with the same keys.
func (h *LetterheadHandler) UpsertLetterhead(w http.ResponseWriter, r *http.Request) {
	ownerEmail := chi.URLParam(r, "email")
	if unescaped, err := url.PathUnescape(ownerEmail); err == nil {
		ownerEmail = unescaped
	}

	var (
		req  request.UpsertLetterheadRequest
		logo *usecase.LogoUpload
	)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			h.rejectBody(w, err)
			return
		}
		defer r.MultipartForm.RemoveAll()

		req = request.UpsertLetterheadFromForm(r.MultipartForm.Value)

		file, header, err := r.FormFile(LogoField)
		switch {
		case errors.Is(err, http.ErrMissingFile):
			// no new logo, the stored one is kept
		case err != nil:
			h.rejectBody(w, err)
			return
		default:
			defer file.Close()
			logo = &usecase.LogoUpload{
				Filename: header.Filename,
				Content:  file,
				BaseURL:  utils.RequestScheme(r) + "://" + r.Host,
			}
		}
	} else if err := decodeOptionalJSON(r.Body, &req); err != nil {
		h.rejectBody(w, err)
		return
	}

	letterhead, created, err := h.service.UpsertByOwner(r.Context(), ownerEmail, &req, logo)
	if err != nil {
		h.handleServiceError(w, err, "save letterhead")
		return
	}

	if created {
		utils.ResponseCreated(w, letterhead)
		return
	}
	utils.ResponseSuccess(w, letterhead)
}

// DeleteLetterhead handles DELETE /api/letterheads/{id}. Always 204 unless the
// database fails.
func (h *LetterheadHandler) DeleteLetterhead(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNoContent(w)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete letterhead")
		return
	}

	utils.ResponseNoContent(w)
}

// decodeOptionalJSON decodes body into dst; an empty body leaves dst zero.
func decodeOptionalJSON(body io.Reader, dst any) error {
	err := json.NewDecoder(body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (h *LetterheadHandler) rejectBody(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.log.Warn("Upload rejected - too large", zap.Int64("limit", tooLarge.Limit))
		utils.ResponseJSON(w, http.StatusRequestEntityTooLarge, utils.ErrorResponse{Error: "Upload too large"})
		return
	}

	h.log.Warn("Invalid request body", zap.Error(err))
	utils.ResponseBadRequest(w, "Invalid request body", nil)
}

func (h *LetterheadHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrLetterheadNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, "Letterhead not found")

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Database error")
	}
}
