// Package rawimage turns the two upload shapes accepted by the API (a
// multipart file or a base64 string, optionally a data URL) into one
// validated in-memory image.
package rawimage

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"strings"

	"github.com/disintegration/imaging"
)

var (
	ErrEmpty    = errors.New("rawimage: empty payload")
	ErrTooLarge = errors.New("rawimage: payload too large")
	ErrNotImage = errors.New("rawimage: not a supported image")
	ErrBase64   = errors.New("rawimage: invalid base64")
)

// Payload is either Multipart or Base64.
type Payload interface{ isPayload() }

type Multipart struct{ File *multipart.FileHeader }

// Base64 holds "data:image/png;base64,...." or bare base64.
type Base64 struct{ Data string }

func (Multipart) isPayload() {}
func (Base64) isPayload()    {}

type Image struct {
	Bytes  []byte
	Format imaging.Format
	// file extension without the dot
	Ext    string
	Width  int
	Height int
}

// Resolve reads p fully (bounded by maxBytes when > 0) and validates it decodes as an image.
func Resolve(p Payload, maxBytes int64) (*Image, error) {
	var (
		raw []byte
		err error
	)
	switch v := p.(type) {
	case Multipart:
		raw, err = readMultipart(v.File, maxBytes)
	case *Multipart:
		raw, err = readMultipart(v.File, maxBytes)
	case Base64:
		raw, err = decodeBase64(v.Data)
	case *Base64:
		raw, err = decodeBase64(v.Data)
	case nil:
		return nil, ErrEmpty
	default:
		return nil, fmt.Errorf("rawimage: unknown payload %T", p)
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrEmpty
	}
	if maxBytes > 0 && int64(len(raw)) > maxBytes {
		return nil, ErrTooLarge
	}
	return Decode(raw)
}

// Decode sniffs the format from the header only; pixels are not decoded.
func Decode(raw []byte) (*Image, error) {
	cfg, name, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrNotImage
	}
	f, ext, ok := formatOf(name)
	if !ok {
		return nil, ErrNotImage
	}
	return &Image{Bytes: raw, Format: f, Ext: ext, Width: cfg.Width, Height: cfg.Height}, nil
}

// Fit downscales img to fit inside maxW x maxH and re-encodes it in the same
// format. Images already within bounds are returned unchanged.
func Fit(img *Image, maxW, maxH int) (*Image, error) {
	if img.Width <= maxW && img.Height <= maxH {
		return img, nil
	}
	src, err := imaging.Decode(bytes.NewReader(img.Bytes), imaging.AutoOrientation(true))
	if err != nil {
		return nil, ErrNotImage
	}
	dst := imaging.Fit(src, maxW, maxH, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, img.Format, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("rawimage: encode: %w", err)
	}
	b := dst.Bounds()
	return &Image{Bytes: buf.Bytes(), Format: img.Format, Ext: img.Ext, Width: b.Dx(), Height: b.Dy()}, nil
}

func readMultipart(fh *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	if fh == nil || fh.Size == 0 {
		return nil, ErrEmpty
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, ErrTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("rawimage: open upload: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if maxBytes > 0 {
		r = io.LimitReader(f, maxBytes+1)
	}
	return io.ReadAll(r)
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}
	if strings.HasPrefix(s, "data:") {
		i := strings.Index(s, ",")
		if i < 0 || !strings.Contains(s[:i], ";base64") {
			return nil, ErrBase64
		}
		s = s[i+1:]
	}
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t', ' ':
			return -1
		}
		return r
	}, s)

	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.RawStdEncoding, base64.URLEncoding, base64.RawURLEncoding} {
		if b, err := enc.DecodeString(s); err == nil {
			return b, nil
		}
	}
	return nil, ErrBase64
}

func formatOf(name string) (imaging.Format, string, bool) {
	switch name {
	case "jpeg":
		return imaging.JPEG, "jpg", true
	case "png":
		return imaging.PNG, "png", true
	case "gif":
		return imaging.GIF, "gif", true
	case "bmp":
		return imaging.BMP, "bmp", true
	case "tiff":
		return imaging.TIFF, "tiff", true
	}
	return 0, "", false
}
