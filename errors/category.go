package errors

import "net/http"

var (
	CategoryNotFound      = New("category not found")
	CategoryAlreadyExists = New("category already exists")
)

func init() {
	RegisterHTTPStatus(CategoryNotFound, http.StatusBadRequest)
	RegisterHTTPStatus(CategoryAlreadyExists, http.StatusBadRequest)
}
