package diagram

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/junkd0g/pokeviz/internal/scene"
)

// ErrUnsupportedFormat is returned for output paths that are neither .svg nor .png.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format is an image encoding for a single view.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// FormatOf picks the encoding from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return FormatSVG, nil
	case ".png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Generate encodes a scene and saves it to the output path. The format
// follows the file extension.
func Generate(s *scene.Scene, outputPath string) error {
	format, err := FormatOf(outputPath)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch format {
	case FormatPNG:
		err = scene.EncodePNG(&buf, s)
	default:
		err = scene.EncodeSVG(&buf, s)
	}
	if err != nil {
		return fmt.Errorf("failed to render scene: %w", err)
	}

	if err := writeFileBytes(outputPath, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func writeFileBytes(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
