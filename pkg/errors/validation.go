package errors

import (
	"strings"
	"unicode"
)

// ValidateQuery validates a free-text catalog search query.
//
// The validation rules are intentionally conservative:
//   - No empty queries
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return New(ErrCodeInvalidQuery, "search query cannot be empty")
	}

	if len(query) > 256 {
		return New(ErrCodeInvalidQuery, "search query too long (max 256 characters)")
	}

	for _, r := range query {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidQuery, "search query contains invalid control characters")
		}
	}

	return nil
}

// ValidateColumnName validates a dataset column name used to select a column
// for a chart.
func ValidateColumnName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidColumn, "column name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidColumn, "column name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidColumn, "column name contains invalid control characters")
		}
	}

	return nil
}

// ValidateArtifactFilename validates a chart artifact filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateArtifactFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "artifact filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidPath, "artifact filename cannot contain path separators")
	}

	// No hidden files (starting with .)
	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidPath, "artifact filename cannot be a hidden file")
	}

	if strings.Contains(filename, "..") {
		return New(ErrCodeInvalidPath, "artifact filename cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// chartKinds enumerates the chart kinds the renderers support.
var chartKinds = map[string]bool{
	"donut":     true,
	"bar":       true,
	"hbar":      true,
	"heatmap":   true,
	"wordcloud": true,
}

// ValidateChartKind validates a chart kind identifier.
func ValidateChartKind(kind string) error {
	if kind == "" {
		return New(ErrCodeInvalidChart, "chart kind cannot be empty")
	}

	if !chartKinds[kind] {
		return New(ErrCodeInvalidChart, "unknown chart kind: %q", kind)
	}

	return nil
}

// ValidateOutputFormat validates a chart output format identifier.
func ValidateOutputFormat(format string) error {
	switch format {
	case "svg", "png":
		return nil
	case "":
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	default:
		return New(ErrCodeInvalidFormat, "unknown output format: %q (expected svg or png)", format)
	}
}
