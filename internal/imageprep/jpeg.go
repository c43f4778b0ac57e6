package imageprep

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoding
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoding

	"github.com/finbot-vn/finbot/constants"
)

// Config controls normalization output and PDF rasterization.
type Config struct {
	MaxDimension int    // longest edge of the output JPEG, default 2048
	Pdftoppm     string // binary name or absolute path; if empty -> "pdftoppm"
	DPI          int    // rasterization DPI for PDF pages, default 300
	JPEGQuality  int    // default 95
}

// JPEGPreparer normalizes uploads into a single JPEG buffer: images are
// decoded, bounded to MaxDimension and re-encoded; PDFs go through pdftoppm
// first (first page only).
type JPEGPreparer struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewJPEGPreparer(cfg Config, logger *slog.Logger) *JPEGPreparer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxDimension <= 0 {
		cfg.MaxDimension = 2048
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.JPEGQuality <= 0 {
		cfg.JPEGQuality = 95
	}
	return &JPEGPreparer{cfg: cfg, runner: execRunner{log: logger}, logger: logger}
}

// Prepare picks a strategy based on the upload content type.
func (p *JPEGPreparer) Prepare(ctx context.Context, path string, contentType string) ([]byte, error) {
	switch constants.MapContentTypeToFormat(contentType) {
	case constants.PDF:
		return p.preparePDF(ctx, path)
	case constants.IMAGE:
		return p.prepareImage(path)
	default:
		return nil, fmt.Errorf("prepare: unsupported content type %q", contentType)
	}
}

func (p *JPEGPreparer) prepareImage(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("prepare: open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("prepare: decode image: %w", err)
	}
	p.logger.Debug("imageprep.decoded", "path", path, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return p.encode(img)
}

// preparePDF rasterizes the first page with pdftoppm and normalizes the
// resulting image like any other upload.
func (p *JPEGPreparer) preparePDF(ctx context.Context, path string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "fb-prep-*")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			p.logger.Warn("imageprep.tmpdir_cleanup_failed", "dir", tmpDir, "err", err)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -f 1 -l 1 -r <dpi> -jpeg <in.pdf> <tmp/page>
	errb, err := p.runner.Run(ctx, p.cfg.Pdftoppm,
		"-f", "1", "-l", "1", "-r", fmt.Sprintf("%d", p.cfg.DPI), "-jpeg", path, prefix)
	if err != nil {
		return nil, fmt.Errorf("prepare: pdftoppm: %w: %s", err, strings.TrimSpace(string(errb)))
	}

	matches, _ := filepath.Glob(prefix + "-*.jpg")
	sort.Strings(matches)
	if len(matches) == 0 {
		return nil, fmt.Errorf("prepare: pdftoppm produced no pages")
	}
	return p.prepareImage(matches[0])
}

// encode bounds the image to MaxDimension (aspect preserved) and writes a
// JPEG buffer.
func (p *JPEGPreparer) encode(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if longest := max(w, h); longest > p.cfg.MaxDimension {
		scale := float64(p.cfg.MaxDimension) / float64(longest)
		dw := int(float64(w) * scale)
		dh := int(float64(h) * scale)
		if dw < 1 {
			dw = 1
		}
		if dh < 1 {
			dh = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.cfg.JPEGQuality}); err != nil {
		return nil, fmt.Errorf("prepare: encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
