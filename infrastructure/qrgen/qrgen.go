package qrgen

import (
	"image/color"
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"twqr-system/domain/value_objects"
)

// Generator renders a wire payload into a PNG code matrix. It implements
// repositories.IMatrixGenerator over skip2/go-qrcode.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Encode(text string, opts value_objects.MatrixOptions) ([]byte, error) {
	code, err := qrcode.New(text, recoveryLevel(opts.Level))
	if err != nil {
		return nil, err
	}

	code.DisableBorder = opts.Margin == 0
	if c, ok := parseHexColor(opts.Dark); ok {
		code.ForegroundColor = c
	}
	if c, ok := parseHexColor(opts.Light); ok {
		code.BackgroundColor = c
	}

	return code.PNG(opts.Width)
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	default:
		// "H", the tier required for the logo badge overlay
		return qrcode.Highest
	}
}

func parseHexColor(s string) (color.Color, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return nil, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, false
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, true
}
