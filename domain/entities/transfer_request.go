package entities

// TransferRequest carries the fields a payer fills in before a code is
// generated. BankCode and AccountID are required for encoding, everything
// else independently toggles a layout section on the composite image.
type TransferRequest struct {
	BankCode  string  `json:"bank_code"`
	AccountID string  `json:"account_id"`
	PayeeName string  `json:"payee_name,omitempty"`
	Amount    float64 `json:"amount,omitempty"`
	Message   string  `json:"message,omitempty"`
}

// IsEncodable reports whether the required wire fields are present.
func (r TransferRequest) IsEncodable() bool {
	return r.BankCode != "" && r.AccountID != ""
}

// HasAmount - a zero amount is treated as absent on the wire and on canvas.
func (r TransferRequest) HasAmount() bool {
	return r.Amount > 0
}
