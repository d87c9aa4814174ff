// Package image loads images from files and URLs and flattens them into the
// raw RGBA buffers the colour engine consumes.
package image

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/webp" // Register WebP format

	httputil "github.com/jmylchreest/paletta/internal/util/http"
)

// Loader decodes an image from a source path or URL.
type Loader interface {
	Load(source string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load decodes an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return img, nil
}

// SmartLoader loads images from both local files and HTTP(S) URLs.
type SmartLoader struct {
	fileLoader *FileLoader
}

// NewSmartLoader creates a new SmartLoader instance.
func NewSmartLoader() *SmartLoader {
	return &SmartLoader{fileLoader: NewFileLoader()}
}

// Load decodes an image from either a local file path or an HTTP(S) URL.
func (l *SmartLoader) Load(source string) (image.Image, error) {
	if isURL(source) {
		return l.loadFromURL(source)
	}
	return l.fileLoader.Load(source)
}

// loadFromURL fetches and decodes an image from an HTTP(S) URL.
func (l *SmartLoader) loadFromURL(url string) (image.Image, error) {
	data, err := httputil.Fetch(context.Background(), url, httputil.FetchOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return img, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// ToRGBABuffer flattens a decoded image into a contiguous RGBA byte buffer
// (4 bytes per pixel, row-major) plus its dimensions. This is the input
// format the extraction engine works on.
func ToRGBABuffer(img image.Image) ([]byte, int, int) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != width*4 || !bounds.Min.Eq(image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	return rgba.Pix, width, height
}

// ValidateSource checks that a source is usable before any heavy work:
// URLs pass on shape alone (fetching happens later), directories must
// exist, and local files must decode as a supported image format.
func ValidateSource(source string) error {
	if source == "" {
		return fmt.Errorf("image source cannot be empty")
	}
	if isURL(source) {
		return nil
	}

	info, err := os.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("image file or directory not found: %s", source)
		}
		return fmt.Errorf("failed to access image source: %w", err)
	}
	if info.IsDir() {
		return nil
	}

	file, err := os.Open(source) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	if _, _, err := image.DecodeConfig(file); err != nil {
		return fmt.Errorf("unsupported or invalid image format: %w", err)
	}

	return nil
}

// SupportedExtensions returns the image file extensions the loader accepts.
func SupportedExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}

func isImageFile(path string) bool {
	return slices.Contains(SupportedExtensions(), strings.ToLower(filepath.Ext(path)))
}

// ResolveSource turns a source that may be a directory into a concrete image
// path by picking a random image inside it. Files and URLs pass through.
func ResolveSource(source string) (string, error) {
	if isURL(source) {
		return source, nil
	}

	info, err := os.Stat(source)
	if err != nil {
		return "", fmt.Errorf("failed to access source: %w", err)
	}
	if !info.IsDir() {
		return source, nil
	}

	images, err := scanDirectory(source)
	if err != nil {
		return "", err
	}
	return images[rand.IntN(len(images))], nil
}

// scanDirectory returns all image files directly inside a directory.
// It does not recurse, but follows symlinks.
func scanDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var images []string
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())

		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			continue
		}
		if isImageFile(entry.Name()) {
			images = append(images, full)
		}
	}

	if len(images) == 0 {
		return nil, fmt.Errorf("no supported image files found in directory: %s", dir)
	}
	return images, nil
}

// Dimensions returns an image's width and height without fully decoding it.
func Dimensions(path string) (width, height int, err error) {
	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	config, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image config: %w", err)
	}

	return config.Width, config.Height, nil
}
