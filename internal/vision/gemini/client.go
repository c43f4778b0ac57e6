package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"google.golang.org/genai"

	"github.com/finbot-vn/finbot/internal/ocrexpense"
)

// Config holds Gemini client settings.
type Config struct {
	Model   string
	APIKey  string
	BaseURL string // optional custom endpoint
	Timeout time.Duration
}

// Client extracts expense data from receipt images via the Gemini vision API,
// constrained to the canonical expense schema through structured output.
type Client struct {
	cfg    Config
	genai  *genai.Client
	schema *jsonschema.Schema
	log    *slog.Logger
}

// NewClient builds the client. The canonical JSON-Schema is compiled once and
// reused to sanity-check provider output in debug runs.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: missing API key")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	cc := &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
		logger.Info("gemini.custom_base_url", "base_url", cfg.BaseURL)
	}
	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	schema, err := ocrexpense.CompileExpenseSchema()
	if err != nil {
		return nil, fmt.Errorf("gemini: compile expense schema: %w", err)
	}

	return &Client{cfg: cfg, genai: gc, schema: schema, log: logger}, nil
}

// Extract sends the normalized JPEG to the vision model and returns the
// decoded JSON object. An empty model response is an error.
func (c *Client) Extract(ctx context.Context, imageBytes []byte, hints ocrexpense.Hints) (map[string]any, error) {
	start := time.Now()
	c.log.Info("gemini.extract.start",
		"model", c.cfg.Model,
		"image_bytes", len(imageBytes),
		"language", hints.Language,
		"items_expected", hints.ItemsExpected,
	)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildExpensePrompt(hints)},
				{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: imageBytes}},
			},
		},
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   buildResponseSchema(),
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.cfg.Model, contents, config)
	if err != nil {
		c.log.Error("gemini.extract.error", "err", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("gemini: empty response from model")
	}

	clean := cleanModelJSON(rawText)
	var out map[string]any
	if err := json.Unmarshal([]byte(clean), &out); err != nil {
		return nil, fmt.Errorf("gemini: unmarshal response: %w", err)
	}

	// Structured output should already satisfy the schema; log deviations in
	// debug runs so prompt or schema drift shows up early. Repair is the
	// post-processor's job, not ours.
	if hints.Debug {
		if err := c.schema.Validate(any(out)); err != nil {
			c.log.Warn("gemini.extract.schema_mismatch", "err", err)
		}
	}

	c.log.Info("gemini.extract.ok", "elapsed_ms", time.Since(start).Milliseconds())
	return out, nil
}

// cleanModelJSON strips markdown fences in case the model ignored the JSON
// mime type.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
