package constants

import "strings"

// File formats accepted for the format field on OcrJob.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// FileTypes holds the allowed values for the format field on OcrJob.
var FileTypes = []string{PDF, IMAGE}

// AllowedContentTypes holds the upload content types accepted by the OCR
// endpoint. Everything else is rejected with UNSUPPORTED_MEDIA_TYPE.
var AllowedContentTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
}

// MaxUploadBytes caps uploaded receipt files (10 MiB).
const MaxUploadBytes = 10 << 20

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ContentTypeForExt maps a filename extension onto an upload content type,
// or "" when the extension is not accepted.
func ContentTypeForExt(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "application/pdf"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	default:
		return ""
	}
}

// MapContentTypeToFormat maps an upload content type onto a job format.
func MapContentTypeToFormat(contentType string) string {
	if contentType == "application/pdf" {
		return PDF
	}
	if strings.HasPrefix(contentType, "image/") {
		return IMAGE
	}
	return ""
}
