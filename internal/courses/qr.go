package courses

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/fogleman/gg"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	qrSize       = 256
	qrMergedPadX = 24
	qrMergedPadY = 48
)

// QRCode renders one link as a PNG QR code.
func QRCode(url string) ([]byte, error) {
	data, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr for %s: %w", url, err)
	}
	return data, nil
}

// MergedQR lays the per-course QR codes side by side in one labelled PNG,
// one column per course.
func MergedQR(list []Course) ([]byte, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("no courses to merge")
	}

	images := make([]image.Image, 0, len(list))
	for _, course := range list {
		data, err := QRCode(course.URL)
		if err != nil {
			return nil, err
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode qr png: %w", err)
		}
		images = append(images, img)
	}

	width := len(list)*(qrSize+qrMergedPadX) + qrMergedPadX
	height := qrSize + 2*qrMergedPadY
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for i, img := range images {
		x := qrMergedPadX + i*(qrSize+qrMergedPadX)
		dc.DrawImage(img, x, qrMergedPadY)

		dc.SetRGB(0.1, 0.1, 0.1)
		label := truncateLabel(list[i].Skill, 30)
		dc.DrawStringAnchored(label, float64(x)+qrSize/2, float64(qrMergedPadY)/2, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode merged qr png: %w", err)
	}
	return buf.Bytes(), nil
}

func truncateLabel(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
