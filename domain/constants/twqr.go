package constants

// TWQRP personal transfer URI. The authority segment is the punycode form of
// the transfer category mandated by the standard, service code 158, version V1.
const (
	TWQRPScheme       = "TWQRP://"
	TWQRPTransferPath = "xn--gmqw5ax42ad01c/158/02/V1"
)

// Tagged query fields. Meaning is fixed by the TWQR standard.
const (
	TagAmount      = "D1"  // amount in minor units
	TagBankCode    = "D5"  // 3-digit bank code
	TagAccountID   = "D6"  // account number, zero padded to 16
	TagMessage     = "D9"  // free text, full-width characters
	TagCurrency    = "D10" // currency/purpose companion to D1
	TagGeneratedAt = "D97" // local timestamp YYYYMMDDHHMMSS
)

const (
	// CurrencyCodeTWD accompanies every amount field on the wire.
	CurrencyCodeTWD = "901"

	// AccountIDPaddedLength - D6 is left padded with '0' up to this length.
	// Longer account ids pass through unpadded.
	AccountIDPaddedLength = 16

	// TimestampLayout - D97 wire layout, seconds resolution.
	TimestampLayout = "20060102150405"
)

// Matrix generation parameters. Highest error correction is required so the
// logo badge overlay does not break decodability.
const (
	MatrixWidth        = 400
	MatrixMargin       = 0
	MatrixLevelHighest = "H"
	MatrixDarkColor    = "#000000"
	MatrixLightColor   = "#ffffff"
)

// Composite layout metrics, in canvas units (pixels).
const (
	LayoutPadding        = 40
	LayoutInfoFontSize   = 26
	LayoutGap            = 40
	LayoutBottomPadding  = 40
	LayoutNameHeight     = 40
	LayoutNameGap        = 20
	LayoutNameFontSize   = 32
	LayoutAmountFontSize = 32
	LayoutAmountGap      = 20
	LayoutLogoRatio      = 0.2
	LayoutLogoPlateRatio = 1.25
	LayoutPlateRadius    = 12
)

const (
	TextColor        = "#333333"
	AccentColor      = "#f97316"
	CurrencySymbol   = "NT$"
	AccountGroupSize = 4
)
