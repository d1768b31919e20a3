package errors

import "net/http"

var (
	UserRecordNotFound  = New("user not found")
	UserInvalidPassword = New("invalid credentials")
	UserAlreadyExists   = New("user already exists")
	// owner lookups made on behalf of an authenticated caller
	UserOwnerNotFound = New("user not found")
)

func init() {
	RegisterHTTPStatus(UserRecordNotFound, http.StatusNotFound)
	RegisterHTTPStatus(UserInvalidPassword, http.StatusBadRequest)
	RegisterHTTPStatus(UserAlreadyExists, http.StatusBadRequest)
	RegisterHTTPStatus(UserOwnerNotFound, http.StatusBadRequest)
}
