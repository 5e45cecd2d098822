package utils

import (
	"math"
	"net/http"
	"strconv"
)

// ParseID converts a path segment into a row id. Ids are SERIAL columns, so
// anything outside 1..MaxInt32 cannot exist.
func ParseID(value string) (int64, bool) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 || id > math.MaxInt32 {
		return 0, false
	}
	return id, true
}

// RequestScheme reports the scheme the client used to reach the server.
func RequestScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
