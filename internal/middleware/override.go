package middleware

import (
	"net/http"
	"strings"
)

// overrideParam is the query/form parameter carrying the overridden method.
const overrideParam = "_method"

// allowedOverrides lists methods an HTML form may escalate a POST to.
var allowedOverrides = map[string]bool{
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// MethodOverride lets HTML forms express PUT and DELETE semantics through
// a POST carrying a "_method" parameter. The query string is consulted
// first so multipart forms (whose bodies must stay unread until the
// handler parses them) can use action="...?_method=PUT"; urlencoded
// bodies may carry the field instead. Must run before routing.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if m := overrideMethod(r); m != "" {
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}

// overrideMethod extracts a valid override method from the request, or "".
func overrideMethod(r *http.Request) string {
	m := r.URL.Query().Get(overrideParam)

	if m == "" && strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		// ParseForm caches the parsed body, so handlers can still read
		// their own form values afterwards.
		if err := r.ParseForm(); err == nil {
			m = r.PostFormValue(overrideParam)
		}
	}

	m = strings.ToUpper(m)
	if allowedOverrides[m] {
		return m
	}
	return ""
}
