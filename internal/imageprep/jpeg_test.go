package imageprep

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	path := filepath.Join(dir, "in.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func newTestPreparer(maxDim int) *JPEGPreparer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewJPEGPreparer(Config{MaxDimension: maxDim}, logger)
}

func TestPrepareImageReencodesToJPEG(t *testing.T) {
	path := writePNG(t, t.TempDir(), 100, 60)
	out, err := newTestPreparer(2048).Prepare(context.Background(), path, "image/png")
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
}

func TestPrepareImageBoundsLongestEdge(t *testing.T) {
	path := writePNG(t, t.TempDir(), 400, 200)
	out, err := newTestPreparer(100).Prepare(context.Background(), path, "image/png")
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestPrepareUnsupportedContentType(t *testing.T) {
	_, err := newTestPreparer(2048).Prepare(context.Background(), "whatever", "text/plain")
	assert.Error(t, err)
}

func TestPrepareMissingFile(t *testing.T) {
	_, err := newTestPreparer(2048).Prepare(context.Background(), filepath.Join(t.TempDir(), "nope.jpg"), "image/jpeg")
	assert.Error(t, err)
}

// fakeRunner stands in for pdftoppm: it drops a rasterized page next to the
// prefix it was given, or fails with stderr output.
type fakeRunner struct {
	fail   bool
	stderr string
	calls  [][]string
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	if r.fail {
		return []byte(r.stderr), errors.New("exit status 1")
	}
	prefix := args[len(args)-1]
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		return nil, err
	}
	return nil, os.WriteFile(prefix+"-1.jpg", buf.Bytes(), 0o644)
}

func TestPreparePDFUsesRunnerOutput(t *testing.T) {
	p := newTestPreparer(2048)
	runner := &fakeRunner{}
	p.runner = runner

	out, err := p.Prepare(context.Background(), "receipt.pdf", "application/pdf")
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "pdftoppm", runner.calls[0][0])
	assert.Contains(t, runner.calls[0], "-jpeg")
	assert.Contains(t, runner.calls[0], "receipt.pdf")
}

func TestPreparePDFSurfacesStderr(t *testing.T) {
	p := newTestPreparer(2048)
	p.runner = &fakeRunner{fail: true, stderr: "Syntax Error: couldn't read xref table"}

	_, err := p.Prepare(context.Background(), "broken.pdf", "application/pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "couldn't read xref table")
}

func TestPreparePDFNoPages(t *testing.T) {
	p := newTestPreparer(2048)
	p.runner = runnerFunc(func(context.Context, string, ...string) ([]byte, error) {
		return nil, nil
	})

	_, err := p.Prepare(context.Background(), "empty.pdf", "application/pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pages")
}

type runnerFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func (f runnerFunc) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return f(ctx, name, args...)
}
