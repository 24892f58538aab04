package gateway

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPercentMode = errors.New("percentMode must be 0 (fixed amount) or 1 (percentage)")
	ErrInvalidFeeMode     = errors.New("feeMode must be 0 (from transaction), 1 (from wallet) or 2 (paid by payer)")
)

// PercentMode selects how multiplexing amounts are interpreted.
type PercentMode int

const (
	PercentModeAmount     PercentMode = 0
	PercentModePercentage PercentMode = 1
)

// FeeMode selects who carries the gateway wage.
type FeeMode int

const (
	FeeModeFromTransaction FeeMode = 0
	FeeModeFromWallet      FeeMode = 1
	FeeModeByPayer         FeeMode = 2
)

// MultiplexingInformation describes one beneficiary of a split payment.
// Exactly one of BankAccount, SubMerchantID and WalletID should be set; the
// gateway documents this but neither it nor this model rejects violations.
type MultiplexingInformation struct {
	BankAccount   string `json:"bankAccount,omitempty"`
	SubMerchantID string `json:"subMerchantId,omitempty"`
	WalletID      string `json:"walletId,omitempty"`
	// Amount is a rial amount or a percentage, per the request PercentMode.
	Amount int64 `json:"amount"`
	// WagePayer marks this beneficiary as the fee payer. Only meaningful
	// under FeeModeFromTransaction.
	WagePayer bool `json:"wagePayer"`
}

func NewMultiplexingInformation(amount int64) *MultiplexingInformation {
	return &MultiplexingInformation{Amount: amount}
}

func (m *MultiplexingInformation) SetBankAccount(bankAccount string) *MultiplexingInformation {
	m.BankAccount = strings.TrimSpace(bankAccount)
	return m
}

func (m *MultiplexingInformation) SetSubMerchantID(subMerchantID string) *MultiplexingInformation {
	m.SubMerchantID = strings.TrimSpace(subMerchantID)
	return m
}

func (m *MultiplexingInformation) SetWalletID(walletID string) *MultiplexingInformation {
	m.WalletID = strings.TrimSpace(walletID)
	return m
}
