package errors

import "net/http"

var (
	PageNotFound      = New("page not found")
	PageAlreadyExists = New("page already exists")
)

func init() {
	RegisterHTTPStatus(PageNotFound, http.StatusBadRequest)
	RegisterHTTPStatus(PageAlreadyExists, http.StatusBadRequest)
}
