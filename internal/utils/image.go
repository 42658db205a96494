// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decode support
)

// ErrDecodeImage is returned when the input is not an image in a supported
// format (jpeg, png, gif, bmp, webp).
var ErrDecodeImage = errors.New("cannot decode image")

const avatarJPEGQuality = 90

// maxSourceSide bounds either side of an image accepted for resizing, so the
// decoder never allocates a pixel buffer larger than maxSourceSide².
const maxSourceSide = 8000

// ResizeImage decodes src, scales it to exactly size×size pixels and encodes
// it back in its original format. Formats without an encoder (webp) are
// re-encoded as PNG.
//
// Returns the encoded bytes and the file extension (with leading dot) that
// matches the encoding actually used.
func ResizeImage(src io.Reader, size int) ([]byte, string, error) {
	var header bytes.Buffer
	cfg, _, err := image.DecodeConfig(io.TeeReader(src, &header))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecodeImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > maxSourceSide || cfg.Height > maxSourceSide {
		return nil, "", fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrDecodeImage, cfg.Width, cfg.Height, maxSourceSide, maxSourceSide)
	}

	img, format, err := image.Decode(io.MultiReader(&header, src))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecodeImage, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	var ext string
	switch format {
	case "jpeg":
		ext = ".jpg"
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: avatarJPEGQuality})
	case "gif":
		ext = ".gif"
		err = gif.Encode(&buf, dst, nil)
	case "bmp":
		ext = ".bmp"
		err = bmp.Encode(&buf, dst)
	default:
		ext = ".png"
		err = png.Encode(&buf, dst)
	}
	if err != nil {
		return nil, "", fmt.Errorf("error encoding %s image: %w", format, err)
	}

	return buf.Bytes(), ext, nil
}
