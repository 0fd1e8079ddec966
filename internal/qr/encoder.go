// Package qr renders URLs as QR-code PNGs and publishes them to local and
// remote artifact storage.
package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/skip2/go-qrcode"
)

// ModuleSize is the edge length in pixels of a single QR module. The quiet
// zone is go-qrcode's fixed 4-module border.
const ModuleSize = 10

// Encode renders content as a black-on-white QR symbol at recovery level L,
// using the smallest version that holds the payload.
func Encode(content string) (image.Image, error) {
	q, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return nil, err
	}
	q.ForegroundColor = color.Black
	q.BackgroundColor = color.White

	// A negative size asks for a fixed number of pixels per module.
	return q.Image(-ModuleSize), nil
}

// EncodePNG serializes img as PNG into a fresh buffer positioned at the start.
func EncodePNG(img image.Image) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf, nil
}
