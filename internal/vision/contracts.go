package vision

import (
	"context"

	"github.com/finbot-vn/finbot/internal/ocrexpense"
)

// Extractor is Stage 3 of the extraction pipeline: normalized JPEG bytes ->
// raw JSON object from the vision model. Implementations own provider
// timeouts; callers treat any error (network, provider, empty response) as an
// external failure and do not retry.
type Extractor interface {
	Extract(ctx context.Context, imageBytes []byte, hints ocrexpense.Hints) (map[string]any, error)
}
