package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const qrSize = 256

type QRGenerator interface {
	Generate(restaurantID string) ([]byte, error)
}

// DefaultQRGenerator encodes the public review page of a restaurant as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) ReviewURL(restaurantID string) string {
	return fmt.Sprintf("%s/restaurants/%s/reviews", strings.TrimRight(g.BaseURL, "/"), restaurantID)
}

func (g DefaultQRGenerator) Generate(restaurantID string) ([]byte, error) {
	return qrcode.Encode(g.ReviewURL(restaurantID), qrcode.Medium, qrSize)
}
