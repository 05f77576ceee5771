package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Reason string `json:"reason"`
}

func renderError(w http.ResponseWriter, r *http.Request, status int, reason string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Reason: reason})
}

// decode reads a JSON body into v, rejecting unknown fields and trailing data.
func decode(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	if dec.More() {
		return errTrailingData
	}
	return nil
}

func badRequest(log *slog.Logger, w http.ResponseWriter, r *http.Request, msg string, err error) {
	log.Warn(msg, "err", err)
	renderError(w, r, http.StatusBadRequest, err.Error())
}
