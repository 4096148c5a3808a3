package utils

import (
	"net/http"
	"strconv"
	"strings"
)

// QueryInt reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func QueryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return v
}

// QueryFloat reads an optional float query parameter; nil when absent or
// malformed.
func QueryFloat(r *http.Request, key string) *float64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return &v
}

// QueryAll returns every non-empty repeated value for key ("condition",
// "size", "brand" are all repeatable filters).
func QueryAll(r *http.Request, key string) []string {
	var out []string

	for _, v := range r.URL.Query()[key] {
		v = strings.TrimSpace(v)
		if v != "" && v != "all" {
			out = append(out, v)
		}
	}

	return out
}

// PathSegments splits a wildcard path value into its non-empty segments.
func PathSegments(raw string) []string {
	var segments []string

	for _, s := range strings.Split(raw, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	return segments
}
