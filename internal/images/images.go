// Package images downscales and re-encodes uploaded product photos before
// they are persisted as data URIs inside the catalog record.
package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"
)

// Profiles for the two upload paths. The gallery profile trades a little
// width for a smaller stored catalog, since records carry up to ten of them.
var (
	Main    = Profile{MaxWidth: 1920, Quality: 85}
	Gallery = Profile{MaxWidth: 1600, Quality: 85}
)

// MaxUploadBytes caps a single uploaded file before any processing.
const MaxUploadBytes = 5 << 20

var (
	ErrTooLarge   = errors.New("images: file exceeds the upload limit")
	ErrNotImage   = errors.New("images: payload is not a decodable image")
	ErrBadDataURI = errors.New("images: malformed data uri")
)

// Profile is one compression target.
type Profile struct {
	MaxWidth int
	Quality  int
}

// Compressor turns raw uploads into stored image payloads. The JPEG
// implementation is the only one; the interface exists so handlers can be
// tested without pulling in image decoding.
type Compressor interface {
	Compress(r io.Reader, p Profile) (string, error)
}

// JPEG re-encodes any decodable image as a JPEG data URI, downscaling to the
// profile width when the source is wider. Narrower images keep their size;
// upscaling never improves anything.
type JPEG struct{}

func (JPEG) Compress(r io.Reader, p Profile) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("images: read upload: %w", err)
	}
	if len(data) > MaxUploadBytes {
		return "", ErrTooLarge
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if p.MaxWidth > 0 && w > p.MaxWidth {
		h = h * p.MaxWidth / w
		w = p.MaxWidth
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: p.Quality}); err != nil {
		return "", fmt.Errorf("images: encode: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeDataURI extracts the media type and raw bytes from a stored data URI.
func DecodeDataURI(uri string) (mediaType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, ErrBadDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrBadDataURI
	}
	mediaType, isB64 := strings.CutSuffix(meta, ";base64")
	if !isB64 {
		return "", nil, fmt.Errorf("%w: only base64 payloads are stored", ErrBadDataURI)
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBadDataURI, err)
	}
	return mediaType, data, nil
}
