package application

import (
	"fmt"
	"math"
	"strings"

	"github.com/leekchan/accounting"

	"twqr-system/domain/constants"
	"twqr-system/domain/entities"
	"twqr-system/utils/helpers"
)

// ResolveInput maps free text typed into the bank field onto a selection.
// An exact code match selects that bank and yields its display text, any
// other input passes through unselected. Pure: selection state lives with
// the caller, not the widget.
func (us *TransferApplication) ResolveInput(text string) (*entities.BankRecord, string) {
	selected := us.BankRepository.FindByCode(strings.TrimSpace(text))
	if selected == nil {
		return nil, text
	}
	return selected, fmt.Sprintf("%s %s", selected.Code, selected.LocalName)
}

// ShareText builds the human readable summary attached to a shared code.
func (us *TransferApplication) ShareText(req entities.TransferRequest) string {
	account := fmt.Sprintf("(%s) %s", req.BankCode, helpers.GroupDigits(req.AccountID, constants.AccountGroupSize))

	if bank := us.BankRepository.FindByCode(req.BankCode); bank != nil {
		account = fmt.Sprintf("%s %s", bank.LocalName, account)
	}

	if !req.HasAmount() {
		return "轉帳資訊：" + account
	}

	precision := 0
	if req.Amount != math.Trunc(req.Amount) {
		precision = 2
	}
	ac := accounting.Accounting{Symbol: constants.CurrencySymbol, Precision: precision}
	return fmt.Sprintf("轉帳資訊：%s，金額 %s", account, ac.FormatMoney(req.Amount))
}

// FileName names a downloaded artifact after its bank and account.
func (us *TransferApplication) FileName(req entities.TransferRequest) string {
	return fmt.Sprintf("twqr-%s-%s.png", req.BankCode, req.AccountID)
}
