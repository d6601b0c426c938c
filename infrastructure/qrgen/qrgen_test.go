package qrgen

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twqr-system/domain/constants"
	"twqr-system/domain/value_objects"
)

func TestGenerator_Encode(t *testing.T) {
	g := NewGenerator()

	raw, err := g.Encode("TWQRP://xn--gmqw5ax42ad01c/158/02/V1?D5=822&D6=0000001234567890", value_objects.MatrixOptions{
		Width:  constants.MatrixWidth,
		Margin: constants.MatrixMargin,
		Level:  constants.MatrixLevelHighest,
		Dark:   constants.MatrixDarkColor,
		Light:  constants.MatrixLightColor,
	})
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, constants.MatrixWidth, cfg.Width)
	assert.Equal(t, cfg.Width, cfg.Height)
}

func TestGenerator_EncodeOversizedPayload(t *testing.T) {
	g := NewGenerator()

	_, err := g.Encode(strings.Repeat("1", 8000), value_objects.MatrixOptions{Width: 400, Level: "H"})
	assert.Error(t, err)
}
