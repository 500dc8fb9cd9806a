package render

import (
	"image"
	"strings"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 256

// GenerateQRCodeImage returns a QR code image for the given payload.
// If payload is empty, it returns (nil, nil).
func GenerateQRCodeImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, errors.Wrap(err, "qr encode")
	}

	return qrCode.Image(sizePx), nil
}

// QRCodeText renders payload as a QR code made of half-block characters,
// two modules per text row, for printing to a terminal.
func QRCodeText(payload string) (string, error) {
	if payload == "" {
		return "", nil
	}

	qrCode, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return "", errors.Wrap(err, "qr encode")
	}

	return strings.TrimRight(qrCode.ToSmallString(false), "\n"), nil
}
