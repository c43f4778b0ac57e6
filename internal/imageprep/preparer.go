package imageprep

import "context"

// Preparer is Stage 2 of the extraction pipeline: uploaded file -> single
// normalized JPEG byte buffer ready for the vision model. For PDFs only the
// first page is used.
type Preparer interface {
	Prepare(ctx context.Context, path string, contentType string) ([]byte, error)
}
