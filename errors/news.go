package errors

import "net/http"

var (
	NewsNotFound   = New("news not found")
	AuthorNotFound = New("author not found")
)

func init() {
	RegisterHTTPStatus(NewsNotFound, http.StatusBadRequest)
	RegisterHTTPStatus(AuthorNotFound, http.StatusBadRequest)
}
