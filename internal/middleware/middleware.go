package middleware

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

func WriteSuccessData(w http.ResponseWriter, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = jsoniter.NewEncoder(w).Encode(SuccessResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func WriteErrorResponse(w http.ResponseWriter, errCode int, err string) {
	WriteErrorResponseWithCode(w, errCode, err, "", "")
}

func WriteErrorResponseWithCode(w http.ResponseWriter, errCode int, err, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(errCode)

	_ = jsoniter.NewEncoder(w).Encode(ErrorResponse{
		Error:   err,
		Message: message,
		Code:    code,
	})
}
