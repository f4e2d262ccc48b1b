package llgram

import "strings"

// extractSection returns the trimmed text between the first occurrence of
// /start-<name> and the following /end-<name>, or false if either marker
// is missing. This is the section extractor of spec.md §4.1.
func extractSection(source, name string) (string, bool) {
	startMarker := "/start-" + name
	endMarker := "/end-" + name

	startIdx := strings.Index(source, startMarker)
	if startIdx < 0 {
		return "", false
	}
	rest := source[startIdx+len(startMarker):]

	endIdx := strings.Index(rest, endMarker)
	if endIdx < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:endIdx]), true
}
