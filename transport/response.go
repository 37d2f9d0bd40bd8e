package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/decomizer/storefront/constant"
	"github.com/decomizer/storefront/utils/errors"
)

type successResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, successResponse{Success: true, Data: data})
}

func toCustomError(err error) errors.CustomError {
	var ce errors.CustomError
	if stderrors.As(err, &ce) {
		return ce
	}
	return errors.SetCustomError(constant.ErrInternal)
}

func writeError(w http.ResponseWriter, err error) {
	ce := toCustomError(err)
	writeJSON(w, ce.ErrorHTTPCode(), errorResponse{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}
