package validation

import (
	"net/url"
	"path/filepath"
	"strings"
)

// MaxFilenameLength bounds uploaded file names.
const MaxFilenameLength = 255

// MaxKeywordLength bounds a single target keyword sent to the optimizer.
const MaxKeywordLength = 100

// ValidateServiceURL checks that a collaborator endpoint is an absolute
// http or https URL with a host.
func ValidateServiceURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	if u.RawQuery != "" || u.Fragment != "" {
		return false, "URL must not contain a query or fragment"
	}

	return true, ""
}

// ValidateUploadName checks an uploaded file name before its content is read.
// The format itself is checked by the document package.
func ValidateUploadName(filename string) (bool, string) {
	if strings.TrimSpace(filename) == "" {
		return false, "resume file is required"
	}
	if len(filename) > MaxFilenameLength {
		return false, "file name is too long"
	}
	if strings.ContainsAny(filename, "\x00/\\") || filepath.Base(filename) != filename {
		return false, "file name must not contain a path"
	}
	return true, ""
}

// NormalizeKeywords trims and lowercases keywords, dropping empty, oversized
// and repeated entries while keeping the first-seen order.
func NormalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || len(kw) > MaxKeywordLength {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
