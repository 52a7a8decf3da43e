package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ribslabs/giftwise/internal/domain"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, resp ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch resp.Error.Code {
	case errCodeBadRequest:
		statusCode = http.StatusBadRequest
	case errCodeNotFound:
		statusCode = http.StatusNotFound
	case errCodeUpstream:
		statusCode = http.StatusBadGateway
	}
	respondJSON(w, statusCode, resp)
}

func toError(err error) ErrorResp {
	code := errCodeInternal

	var validationErr *domain.ValidationErr
	var notFoundErr *domain.NotFoundErr
	var upstreamErr *domain.UpstreamErr
	switch {
	case errors.As(err, &validationErr):
		code = errCodeBadRequest
	case errors.As(err, &notFoundErr):
		code = errCodeNotFound
	case errors.As(err, &upstreamErr):
		code = errCodeUpstream
	}

	return ErrorResp{Error: ErrorDetail{Code: code, Message: err.Error()}}
}

func badRequest(message string) ErrorResp {
	return ErrorResp{Error: ErrorDetail{Code: errCodeBadRequest, Message: message}}
}
