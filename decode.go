package convolve

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"

	// Register input decoders, including BMP, TIFF and WebP via x/image.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/png"
)

// Decode reads an image from the reader, returning the decoded image and the
// detected format string ("bmp", "png", "jpeg", "webp", etc.).
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// DecodeImageBytes decodes raw image bytes into a grid.
func DecodeImageBytes(data []byte) (*Grid, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty image data: %w", ErrEmptyImage)
	}

	img, format, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	g, err := GridFromImage(img)
	if err != nil {
		return nil, "", err
	}
	return g, format, nil
}

// LoadImage opens path and decodes it into a grid.
func LoadImage(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	g, err := GridFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	Logger().Debug("loaded image", "path", path, "format", format, "width", g.Width, "height", g.Height)
	return g, nil
}

// OutputName returns the file name SaveImage writes for name. The name is
// used as given; nothing is escaped or validated.
func OutputName(name string) string {
	return "outFile_" + name + ".jpeg"
}

// EncodeJPEG writes g as a JPEG. JPEG carries no alpha, so only the red,
// green and blue channels are written.
func EncodeJPEG(w io.Writer, g *Grid) error {
	if err := g.validate(); err != nil {
		return err
	}
	return jpeg.Encode(w, g.opaqueImage(), &jpeg.Options{Quality: jpeg.DefaultQuality})
}

// SaveImage writes g to dir/outFile_<name>.jpeg, replacing any existing file,
// and returns the path written. An empty dir means the working directory.
func SaveImage(g *Grid, dir, name string) (string, error) {
	outPath := filepath.Join(dir, OutputName(name))

	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create output: %w", err)
	}

	if err := EncodeJPEG(f, g); err != nil {
		f.Close()
		return "", fmt.Errorf("encode output: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close output: %w", err)
	}

	Logger().Debug("saved image", "path", outPath)
	return outPath, nil
}
