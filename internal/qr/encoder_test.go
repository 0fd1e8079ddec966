package qr

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/makiuchi-d/gozxing"
	zxingqr "github.com/makiuchi-d/gozxing/qrcode"
)

func decodeQR(t *testing.T, img image.Image) string {
	t.Helper()
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		t.Fatalf("binary bitmap: %v", err)
	}
	result, err := zxingqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		t.Fatalf("decode qr: %v", err)
	}
	return result.GetText()
}

func TestEncodeRoundTrip(t *testing.T) {
	urls := []string{
		"https://example.com/path?x=1",
		"http://a!b",
		"not a url at all",
		"https://example.com/" + strings.Repeat("segment/", 40),
	}
	for _, u := range urls {
		t.Run(u, func(t *testing.T) {
			img, err := Encode(u)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			buf, err := EncodePNG(img)
			if err != nil {
				t.Fatalf("encode png: %v", err)
			}
			decoded, err := png.Decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("png decode: %v", err)
			}
			if got := decodeQR(t, decoded); got != u {
				t.Fatalf("round trip mismatch: got %q want %q", got, u)
			}
		})
	}
}

func TestEncodeLayout(t *testing.T) {
	// 11 bytes fit a version 1 symbol (21 modules) at level L, plus a
	// 4-module quiet zone on each side.
	img, err := Encode("https://a.b")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	want := (21 + 2*4) * ModuleSize
	b := img.Bounds()
	if b.Dx() != want || b.Dy() != want {
		t.Fatalf("expected %dx%d image, got %dx%d", want, want, b.Dx(), b.Dy())
	}

	if r, g, bl, _ := img.At(0, 0).RGBA(); r != 0xffff || g != 0xffff || bl != 0xffff {
		t.Fatalf("expected white quiet zone, got %v", img.At(0, 0))
	}
	// Top-left corner of the finder pattern.
	edge := 4 * ModuleSize
	if r, g, bl, _ := img.At(edge, edge).RGBA(); r != 0 || g != 0 || bl != 0 {
		t.Fatalf("expected black finder module, got %v", img.At(edge, edge))
	}
}

func TestEncodeRejectsOversizedPayload(t *testing.T) {
	// Level L tops out at 2953 bytes in byte mode.
	if _, err := Encode(strings.Repeat("a", 3000)); err == nil {
		t.Fatal("expected capacity error")
	}
}
