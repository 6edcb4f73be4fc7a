package server

import (
	"errors"
	"net/http"

	"github.com/Nanford/resumai/internal/store"
)

// httpStatus maps store errors onto response codes. Anything unrecognized is
// an internal error.
func httpStatus(err error) int {
	var notFound *store.ErrNotFound
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
