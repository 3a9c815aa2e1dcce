package shopify

import "regexp"

var nextLinkPattern = regexp.MustCompile(`<([^>]+)>;\s*rel="next"`)

// ParseLinkHeader extracts the next-page URL from a Link response header.
// Shopify communicates cursor pagination exclusively through this header;
// it may carry several relations (previous and next) and only the entry
// whose rel attribute is "next" counts, regardless of position. An empty
// or unparseable header returns "" and ends pagination.
func ParseLinkHeader(linkHeader string) string {
	if linkHeader == "" {
		return ""
	}

	match := nextLinkPattern.FindStringSubmatch(linkHeader)
	if match == nil {
		return ""
	}
	return match[1]
}
