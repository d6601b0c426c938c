package twqr

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"twqr-system/domain/constants"
	"twqr-system/domain/entities"
	"twqr-system/utils/helpers"
)

// Options - optional encoder behaviour. Clock is only consulted when
// IncludeTimestamp is set and defaults to the device local time.
type Options struct {
	IncludeTimestamp bool
	Clock            func() time.Time
}

// GeneratePayload serializes a transfer request into the TWQRP wire string.
// The function is total: absent optional fields simply omit their tags, and
// no validation beyond padding is applied. Field order on the wire is fixed
// by the payment network: D5, D6, D1, D10, D9, D97.
func GeneratePayload(req entities.TransferRequest, opts Options) string {
	var b strings.Builder
	b.WriteString(constants.TWQRPScheme)
	b.WriteString(constants.TWQRPTransferPath)
	b.WriteByte('?')

	appendField(&b, constants.TagBankCode, req.BankCode, true)
	appendField(&b, constants.TagAccountID, padAccountID(req.AccountID), false)

	if req.HasAmount() {
		appendField(&b, constants.TagAmount, minorUnits(req.Amount), false)
		appendField(&b, constants.TagCurrency, constants.CurrencyCodeTWD, false)
	}

	if message := strings.TrimSpace(req.Message); message != "" {
		appendField(&b, constants.TagMessage, ToFullWidth(message), false)
	}

	if opts.IncludeTimestamp {
		clock := opts.Clock
		if clock == nil {
			clock = helpers.GetCurrentTime
		}
		appendField(&b, constants.TagGeneratedAt, clock().Format(constants.TimestampLayout), false)
	}

	return b.String()
}

func appendField(b *strings.Builder, tag, value string, first bool) {
	if !first {
		b.WriteByte('&')
	}
	b.WriteString(tag)
	b.WriteByte('=')
	b.WriteString(url.QueryEscape(value))
}

// padAccountID left pads with '0' to 16 characters. Longer account ids pass
// through unpadded, not truncated.
func padAccountID(accountID string) string {
	if len(accountID) >= constants.AccountIDPaddedLength {
		return accountID
	}
	return strings.Repeat("0", constants.AccountIDPaddedLength-len(accountID)) + accountID
}

// minorUnits converts currency units to minor units by multiplying by 100
// and truncating toward zero. No rounding, per the wire format.
func minorUnits(amount float64) string {
	return strconv.FormatInt(int64(amount*100), 10)
}

// ToFullWidth shifts printable ASCII into the full-width Unicode block
// (code point + 0xFEE0) and maps the space to the ideographic space, as the
// standard mandates for the D9 field. Other runes pass through.
func ToFullWidth(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '　'
		case r >= '!' && r <= '~':
			return r + 0xFEE0
		default:
			return r
		}
	}, s)
}
