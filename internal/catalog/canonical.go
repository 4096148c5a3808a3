package catalog

import (
	"net/url"
	"strings"
)

// legacySegmentParams maps the old flat query-parameter names onto path
// segment positions. Both naming generations are still seen in crawler
// traffic, so both redirect.
var legacySegmentParams = map[string]int{
	"category":    0,
	"subcategory": 1,
	"specific":    2,
	"level1":      0,
	"level2":      1,
	"level3":      2,
}

// Canonicalize decides whether the requested URL needs a permanent redirect
// to its canonical form. Two triggers: legacy flat query parameters, and a
// requested path that differs from the resolution's canonical path (stale or
// alias slugs). Unrelated query parameters survive the redirect verbatim, in
// their original order.
func Canonicalize(requestedPath, rawQuery string, res *Resolution) (bool, string) {
	if segments, remaining, found := extractLegacySegments(rawQuery); found {
		return true, buildURL("/category/"+strings.Join(segments, "/"), remaining)
	}

	if res == nil || !res.IsValid {
		return false, ""
	}

	path := strings.TrimSuffix(requestedPath, "/")
	if path == "" {
		path = "/"
	}

	if res.CanonicalPath != "" && res.CanonicalPath != "/" && res.CanonicalPath != path {
		return true, buildURL(res.CanonicalPath, rawQuery)
	}

	return false, ""
}

// SplitCombinedSlug recovers path segments from a legacy single-segment URL
// carrying a full stored slug ("women-clothing-dresses"). Returns nil when
// the segment is not a known combined slug.
func SplitCombinedSlug(tree *Tree, segment string) []string {
	if !strings.Contains(segment, "-") {
		return nil
	}

	node := tree.NodeByFullSlug(segment)
	if node == nil || node.Level < 2 {
		return nil
	}

	return tree.PathSlugs(node)
}

// extractLegacySegments pulls the legacy category parameters out of a raw
// query string, keeping every other pair untouched and in order.
func extractLegacySegments(rawQuery string) ([]string, string, bool) {
	if rawQuery == "" {
		return nil, "", false
	}

	var (
		slots [3]string
		kept  []string
		found bool
	)

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}

		key := pair

		value := ""
		if i := strings.IndexByte(pair, '='); i >= 0 {
			key = pair[:i]
			value = pair[i+1:]
		}

		slot, legacy := legacySegmentParams[key]
		if !legacy {
			kept = append(kept, pair)

			continue
		}

		decoded, err := url.QueryUnescape(value)
		if err != nil || decoded == "" {
			continue
		}

		if slots[slot] == "" {
			slots[slot] = decoded
			found = true
		}
	}

	if !found {
		return nil, rawQuery, false
	}

	var segments []string

	for _, s := range slots {
		if s == "" {
			break
		}

		segments = append(segments, s)
	}

	if len(segments) == 0 {
		return nil, rawQuery, false
	}

	return segments, strings.Join(kept, "&"), true
}

func buildURL(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}

	return path + "?" + rawQuery
}
