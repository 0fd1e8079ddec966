package qr

import (
	"encoding/json"
	"errors"
	"log"
	"mime"
	"net/http"
	"runtime/debug"

	"github.com/qrdrop/service/internal/response"
)

// Handler holds HTTP handlers for QR generation.
type Handler struct {
	svc *Service
}

// NewHandler creates a new QR Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type generateRequest struct {
	URL string `json:"url" example:"https://example.com/path?x=1"`
}

type generateResponse struct {
	QRCodeURL string `json:"qr_code_url" example:"https://devops-ammar.s3.eu-north-1.amazonaws.com/qr_codes/example_com_path_x_1.png"`
}

// Generate godoc
//
//	@Summary		Generate QR code
//	@Description	Render url as a QR-code PNG, keep a local copy, upload it publicly to S3 and return the public URL. The url is read from the query string, a form body or a JSON body.
//	@Tags			qr
//	@Accept			json
//	@Produce		json
//	@Param			url		query		string				false	"URL to encode"
//	@Param			request	body		generateRequest		false	"URL to encode"
//	@Success		200		{object}	generateResponse
//	@Failure		413		{object}	response.ErrorBody
//	@Failure		422		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/generate-qr/ [post]
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	url, err := requestURL(w, r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
	}
	if url == "" {
		response.Unprocessable(w, "url is required")
		return
	}

	res, err := h.svc.Generate(r.Context(), url)
	if err != nil {
		// err carries the failing step; the stack only shows the request path that led here.
		log.Printf("qr: generation failed for url=%q: %v\nhandler stack:\n%s", url, err, debug.Stack())
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, generateResponse{QRCodeURL: res.PublicURL})
}

// maxBodyBytes bounds request bodies. Level L holds at most 2953 bytes; a
// full payload of \uXXXX escapes in JSON still fits.
const maxBodyBytes = 20 << 10

// requestURL reads the url parameter. The query string takes precedence
// over the body. A malformed body yields an empty url; an oversized one
// also returns the *http.MaxBytesError.
func requestURL(w http.ResponseWriter, r *http.Request) (string, error) {
	if v := r.URL.Query().Get("url"); v != "" {
		return v, nil
	}
	if r.Body == nil {
		return "", nil
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", err
		}
		return req.URL, nil
	}
	if err := r.ParseForm(); err != nil {
		return "", err
	}
	return r.PostForm.Get("url"), nil
}
