package restapi

import (
	"mime"
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"carrierdash/internal/report"
)

// CompressionConfig holds configuration options for response compression
type CompressionConfig struct {
	// MinSize is the minimum response size in bytes to compress
	MinSize int
	// Level is the compression level 1-9
	Level int
	// ExceptContentTypes are media types served uncompressed even when
	// gzhttp would otherwise compress them
	ExceptContentTypes []string
}

// DefaultCompressionConfig returns the compression settings used by the dashboard.
// Workbooks are already zip archives, so they are sent as-is.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize:            1024,
		Level:              6,
		ExceptContentTypes: []string{report.WorkbookContentType},
	}
}

// contentTypeFilter reports whether a response with content type ct should be gzipped
func (c CompressionConfig) contentTypeFilter() func(ct string) bool {
	excepted := make(map[string]struct{}, len(c.ExceptContentTypes))
	for _, ct := range c.ExceptContentTypes {
		excepted[ct] = struct{}{}
	}
	return func(ct string) bool {
		if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
			if _, skip := excepted[mediaType]; skip {
				return false
			}
		}
		return gzhttp.DefaultContentTypeFilter(ct)
	}
}

// NewCompressionMiddleware creates a compression middleware with the given configuration
func NewCompressionMiddleware(config CompressionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		wrapper, err := gzhttp.NewWrapper(
			gzhttp.MinSize(config.MinSize),
			gzhttp.CompressionLevel(config.Level),
			gzhttp.ContentTypeFilter(config.contentTypeFilter()),
		)
		if err != nil {
			return gzhttp.GzipHandler(next)
		}
		return wrapper(next)
	}
}

// CompressionMiddleware applies gzip compression with default settings
func CompressionMiddleware(next http.Handler) http.Handler {
	return NewCompressionMiddleware(DefaultCompressionConfig())(next)
}
