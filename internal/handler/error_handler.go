package handler

import (
	"log"
	"net/http"
)

// handleError отвечает за единственный класс ошибок, который не
// кодируется в обычном теле ответа: сбой хранилища. Маскировать его
// двухсотым ответом нельзя - провайдер решил бы, что работа принята
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	log.Printf("delivery processing failed: %v", err)

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}
