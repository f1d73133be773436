package utils

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultQRSize = 256
	MinQRSize     = 64
	MaxQRSize     = 1024

	qrServiceBase  = "https://api.qrserver.com/v1/create-qr-code/"
	qrServiceColor = "111827"
)

var ErrInvalidQRSize = fmt.Errorf("qr size must be between %d and %d", MinQRSize, MaxQRSize)

// StoreQRPayload is the text a storefront QR code encodes.
func StoreQRPayload(storeID string) string {
	return "STORE:" + storeID
}

// GenerateStoreQR renders the storefront QR code as a PNG of size x size pixels.
func GenerateStoreQR(storeID string, size int) ([]byte, error) {
	if storeID == "" {
		return nil, errors.New("store id is required")
	}
	if size < MinQRSize || size > MaxQRSize {
		return nil, ErrInvalidQRSize
	}
	png, err := qrcode.Encode(StoreQRPayload(storeID), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}

// StoreQRServiceURL links to the hosted QR image of a storefront.
func StoreQRServiceURL(storeID string) string {
	q := url.Values{}
	q.Set("size", "200x200")
	q.Set("data", StoreQRPayload(storeID))
	q.Set("color", qrServiceColor)
	return qrServiceBase + "?" + q.Encode()
}
