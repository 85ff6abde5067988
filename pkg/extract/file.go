package extract

import (
	stderrors "errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/matzehuels/colorbars/pkg/errors"
	"github.com/matzehuels/colorbars/pkg/freq"
)

var supportedExtensions = []string{"bmp", "gif", "jpeg", "jpg", "png", "tif", "tiff", "webp"}

// SupportedExtensions returns the image file extensions DecodeFile accepts.
func SupportedExtensions() []string {
	return slices.Clone(supportedExtensions)
}

// Supported reports whether path has an image extension DecodeFile accepts.
func Supported(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return slices.Contains(supportedExtensions, ext)
}

// DecodeFile reads the image at path. It returns the decoded image and the
// format name reported by the decoder.
func DecodeFile(path string) (image.Image, string, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, "", err
	}
	if !Supported(path) {
		return nil, "", errors.New(errors.ErrCodeUnsupported,
			"unsupported file type %q (supported: %s)", filepath.Ext(path), strings.Join(supportedExtensions, ", "))
	}

	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "%s does not exist", path)
		}
		return nil, "", errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", path)
	}
	return img, format, nil
}

// WriteFile writes t as a JSON object to path.
func WriteFile(path string, t *freq.Table) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := freq.Write(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
