package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps request bodies; every accepted body is a small JSON object.
const maxBodyBytes = 1 << 20

// decodeAndValidate reads a JSON body into dst and runs the request
// validator over it.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return h.validator.Validate(r.Context(), dst)
}

func postIDParam(r *http.Request) (int64, error) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil || postID <= 0 {
		return 0, ErrInvalidPostID
	}
	return postID, nil
}
