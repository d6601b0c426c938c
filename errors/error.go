package errors

import (
	"errors"
)

var (
	// ErrMissingBankCode will throw if encoding is attempted without a bank code
	ErrMissingBankCode = errors.New("bank code is required")
	// ErrMissingAccountID will throw if encoding is attempted without an account id
	ErrMissingAccountID = errors.New("account id is required")
	ErrDatasetEmpty     = errors.New("bank dataset is empty")
	ErrAssetUnavailable = errors.New("branding asset is unavailable")
	ErrMatrixFailed     = errors.New("code matrix generation failed")
)
