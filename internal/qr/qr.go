// Package qr builds the QR payload persisted on every product and the derived
// PDF download. Encoding is deterministic: identical inputs always produce an
// identical payload.
package qr

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"pasar/internal/apperrors"
)

// DataURIPrefix is prepended when the stored payload is served as an inline
// image.
const DataURIPrefix = "data:image/png;base64,"

// imageSize is the rasterized symbol edge in pixels, large enough for a
// default scan at phone-camera distance. go-qrcode adds the standard 4-module
// quiet zone itself.
const imageSize = 512

// Text renders the canonical payload template. Field order and labels are part
// of the wire contract: a scanning client decodes the symbol to exactly this
// text.
func Text(name, price, description string) string {
	return fmt.Sprintf("Name: %s\nPrice: %s\nDescription: %s", name, price, description)
}

// Encode renders the payload template for the given product fields into a QR
// symbol at error correction level High and returns the PNG bytes
// base64-encoded, without a data-URI prefix.
func Encode(name, price, description string) (string, error) {
	if strings.TrimSpace(name+price+description) == "" {
		return "", fmt.Errorf("no product fields to encode: %w", apperrors.ErrEncoding)
	}
	png, err := qrcode.Encode(Text(name, price, description), qrcode.High, imageSize)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, apperrors.ErrEncoding)
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

// PDF re-wraps a stored payload as a single-page PDF. Stateless: the document
// is rebuilt on every download, nothing extra is persisted.
func PDF(payload string) ([]byte, error) {
	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(payload, DataURIPrefix))
	if err != nil {
		return nil, fmt.Errorf("decode qr payload: %w", err)
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	pdf.ImageOptions("qr", 40, 40, 130, 130, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render qr pdf: %w", err)
	}
	return buf.Bytes(), nil
}
