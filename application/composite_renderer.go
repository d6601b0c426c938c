package application

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	"github.com/dustin/go-humanize"
	"github.com/fogleman/gg"
	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/sync/errgroup"

	"twqr-system/domain/constants"
	"twqr-system/domain/entities"
	"twqr-system/domain/repositories"
	"twqr-system/domain/value_objects"
	"twqr-system/errors"
	"twqr-system/utils/helpers"
)

// CompositeRenderer combines the generated code matrix, the cached branding
// logo and the textual transfer summary into one raster artifact. Every
// failure degrades: a missing logo just drops the badge, anything else
// yields an empty artifact. Nothing propagates to the caller.
type CompositeRenderer struct {
	Matrix  repositories.IMatrixGenerator
	Assets  repositories.IAssetCache
	LogoKey string
	Logger  *zap.Logger

	// MatrixWidth overrides the default code width when positive.
	MatrixWidth int

	nameFace   font.Face
	infoFace   font.Face
	amountFace font.Face
}

func NewCompositeRenderer(matrix repositories.IMatrixGenerator, assets repositories.IAssetCache, logoKey string, logger *zap.Logger) (*CompositeRenderer, error) {
	nameFace, err := newFace(gobold.TTF, constants.LayoutNameFontSize)
	if err != nil {
		return nil, err
	}
	infoFace, err := newFace(gomono.TTF, constants.LayoutInfoFontSize)
	if err != nil {
		return nil, err
	}
	amountFace, err := newFace(gomonobold.TTF, constants.LayoutAmountFontSize)
	if err != nil {
		return nil, err
	}

	return &CompositeRenderer{
		Matrix:     matrix,
		Assets:     assets,
		LogoKey:    logoKey,
		Logger:     logger,
		nameFace:   nameFace,
		infoFace:   infoFace,
		amountFace: amountFace,
	}, nil
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Render produces the composite artifact as a self contained data URI.
// An empty string means the render degraded; the reason is logged here.
func (r *CompositeRenderer) Render(ctx context.Context, wirePayload string, req entities.TransferRequest) string {
	artifact, err := r.compose(ctx, wirePayload, req)
	if err != nil {
		r.Logger.With(
			zap.String("bank_code", req.BankCode),
			zap.Error(err),
		).Error("composite render failed")
		return ""
	}
	return artifact
}

func (r *CompositeRenderer) compose(ctx context.Context, wirePayload string, req entities.TransferRequest) (string, error) {
	var qrImage image.Image
	var logoImage image.Image

	width := r.MatrixWidth
	if width <= 0 {
		width = constants.MatrixWidth
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := r.Matrix.Encode(wirePayload, value_objects.MatrixOptions{
			Width:  width,
			Margin: constants.MatrixMargin,
			Level:  constants.MatrixLevelHighest,
			Dark:   constants.MatrixDarkColor,
			Light:  constants.MatrixLightColor,
		})
		if err != nil {
			return fmt.Errorf("%w: %v", errors.ErrMatrixFailed, err)
		}
		qrImage, err = png.Decode(bytes.NewReader(raw))
		return err
	})
	g.Go(func() error {
		// the logo is decorative, never load bearing
		asset, err := r.Assets.GetOrFetch(gctx, r.LogoKey)
		if err != nil {
			r.Logger.With(zap.Error(err)).Warn("logo unavailable, badge omitted")
			return nil
		}
		logoImage = decodeAsset(asset)
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	bounds := qrImage.Bounds()
	layout := computeLayout(req, bounds.Dx(), bounds.Dy())

	dc := gg.NewContext(layout.Width, layout.Height)
	dc.SetHexColor(constants.MatrixLightColor)
	dc.Clear()

	if req.PayeeName != "" {
		dc.SetFontFace(r.nameFace)
		dc.SetHexColor(constants.TextColor)
		dc.DrawStringAnchored(req.PayeeName, float64(layout.Width)/2, float64(layout.NameY), 0.5, 1)
	}

	dc.DrawImage(qrImage, constants.LayoutPadding, layout.CodeY)

	if logoImage != nil {
		r.drawLogoBadge(dc, logoImage, bounds.Dx(), bounds.Dy(), layout.CodeY)
	}

	infoText := fmt.Sprintf("(%s) %s", req.BankCode, helpers.GroupDigits(req.AccountID, constants.AccountGroupSize))
	dc.SetFontFace(r.infoFace)
	dc.SetHexColor(constants.TextColor)
	dc.DrawStringAnchored(infoText, float64(layout.Width)/2, float64(layout.InfoY), 0.5, 1)

	if req.HasAmount() {
		r.drawAmount(dc, req.Amount, layout)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// drawLogoBadge centers the logo over the code at 20% of its width, on a
// white rounded plate 1.25x the logo so the badge sits on a clean background
// regardless of the module pattern underneath.
func (r *CompositeRenderer) drawLogoBadge(dc *gg.Context, logo image.Image, qrWidth, qrHeight, codeY int) {
	logoSize := float64(qrWidth) * constants.LayoutLogoRatio
	plateSize := logoSize * constants.LayoutLogoPlateRatio

	plateX := constants.LayoutPadding + (float64(qrWidth)-plateSize)/2
	plateY := float64(codeY) + (float64(qrHeight)-plateSize)/2
	dc.SetHexColor(constants.MatrixLightColor)
	dc.DrawRoundedRectangle(plateX, plateY, plateSize, plateSize, constants.LayoutPlateRadius)
	dc.Fill()

	edge := int(logoSize)
	scaled := image.NewRGBA(image.Rect(0, 0, edge, edge))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), logo, logo.Bounds(), xdraw.Over, nil)

	logoX := constants.LayoutPadding + (qrWidth-edge)/2
	logoY := codeY + (qrHeight-edge)/2
	dc.DrawImage(scaled, logoX, logoY)
}

// drawAmount lays out the currency symbol and the grouped value as a pair:
// both are measured independently and the combined block is centered.
func (r *CompositeRenderer) drawAmount(dc *gg.Context, amount float64, layout layoutMetrics) {
	const spacing = 4

	value := humanize.Commaf(amount)

	dc.SetFontFace(r.amountFace)
	dc.SetHexColor(constants.AccentColor)

	symbolWidth, _ := dc.MeasureString(constants.CurrencySymbol)
	valueWidth, _ := dc.MeasureString(value)
	totalWidth := symbolWidth + spacing + valueWidth

	startX := (float64(layout.Width) - totalWidth) / 2
	y := float64(layout.AmountY)

	dc.DrawStringAnchored(constants.CurrencySymbol, startX, y, 0, 1)
	dc.DrawStringAnchored(value, startX+symbolWidth+spacing, y, 0, 1)
}

// layoutMetrics are derived deterministically from the presence flags of the
// optional fields, so the same request always yields the same canvas.
type layoutMetrics struct {
	Width   int
	Height  int
	NameY   int
	CodeY   int
	InfoY   int
	AmountY int
}

func computeLayout(req entities.TransferRequest, qrWidth, qrHeight int) layoutMetrics {
	nameHeight, nameGap := 0, 0
	if req.PayeeName != "" {
		nameHeight = constants.LayoutNameHeight
		nameGap = constants.LayoutNameGap
	}

	amountHeight := 0
	if req.HasAmount() {
		amountHeight = constants.LayoutAmountGap + constants.LayoutAmountFontSize
	}

	codeY := constants.LayoutPadding + nameHeight + nameGap
	infoY := codeY + qrHeight + constants.LayoutGap

	return layoutMetrics{
		Width:   qrWidth + constants.LayoutPadding*2,
		Height:  constants.LayoutPadding + nameHeight + nameGap + qrHeight + constants.LayoutGap + constants.LayoutInfoFontSize + amountHeight + constants.LayoutBottomPadding,
		NameY:   constants.LayoutPadding,
		CodeY:   codeY,
		InfoY:   infoY,
		AmountY: infoY + constants.LayoutInfoFontSize + constants.LayoutAmountGap,
	}
}

func decodeAsset(asset string) image.Image {
	raw, err := base64.StdEncoding.DecodeString(asset)
	if err != nil {
		return nil
	}
	decoded, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil
	}
	return decoded
}
