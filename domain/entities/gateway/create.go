package gateway

import (
	"encoding/json"
	"strings"

	"zibal-client/domain/constants"
)

// CreateTransactionRequest opens a new payment on the gateway. Free-text
// fields are trimmed on assignment; use the constructor and the Set methods
// to keep that invariant.
type CreateTransactionRequest struct {
	Merchant            string   `json:"merchant"`
	Amount              int64    `json:"amount"`
	CallbackURL         string   `json:"callbackUrl"`
	Description         string   `json:"description,omitempty"`
	OrderID             string   `json:"orderId,omitempty"`
	Mobile              string   `json:"mobile,omitempty"`
	AllowedCards        []string `json:"allowedCards,omitempty"`
	LedgerID            string   `json:"ledgerId,omitempty"`
	NationalCode        string   `json:"nationalCode,omitempty"`
	CheckMobileWithCard bool     `json:"checkMobileWithCard,omitempty"`
	// IsTest routes the request to the sandbox merchant. Never serialized.
	IsTest bool `json:"-"`
}

func NewCreateTransactionRequest(merchant string, amount int64, callbackURL string) *CreateTransactionRequest {
	return &CreateTransactionRequest{
		Merchant:    strings.TrimSpace(merchant),
		Amount:      amount,
		CallbackURL: strings.TrimSpace(callbackURL),
	}
}

func (r *CreateTransactionRequest) SetDescription(description string) *CreateTransactionRequest {
	r.Description = strings.TrimSpace(description)
	return r
}

func (r *CreateTransactionRequest) SetOrderID(orderID string) *CreateTransactionRequest {
	r.OrderID = strings.TrimSpace(orderID)
	return r
}

func (r *CreateTransactionRequest) SetMobile(mobile string) *CreateTransactionRequest {
	r.Mobile = strings.TrimSpace(mobile)
	return r
}

func (r *CreateTransactionRequest) SetAllowedCards(cards ...string) *CreateTransactionRequest {
	allowed := make([]string, 0, len(cards))
	for _, card := range cards {
		allowed = append(allowed, strings.TrimSpace(card))
	}
	r.AllowedCards = allowed
	return r
}

func (r *CreateTransactionRequest) SetLedgerID(ledgerID string) *CreateTransactionRequest {
	r.LedgerID = strings.TrimSpace(ledgerID)
	return r
}

func (r *CreateTransactionRequest) SetNationalCode(nationalCode string) *CreateTransactionRequest {
	r.NationalCode = strings.TrimSpace(nationalCode)
	return r
}

// WireMerchant is the merchant id actually transmitted: the sandbox sentinel
// when IsTest is set, the stored merchant otherwise. The stored value stays
// untouched either way.
func (r CreateTransactionRequest) WireMerchant() string {
	if r.IsTest {
		return constants.TestMerchant
	}
	return r.Merchant
}

// createTransactionPayload is the wire-side view of the request; Merchant
// already carries the test override.
type createTransactionPayload struct {
	Merchant            string   `json:"merchant"`
	Amount              int64    `json:"amount"`
	CallbackURL         string   `json:"callbackUrl"`
	Description         string   `json:"description,omitempty"`
	OrderID             string   `json:"orderId,omitempty"`
	Mobile              string   `json:"mobile,omitempty"`
	AllowedCards        []string `json:"allowedCards,omitempty"`
	LedgerID            string   `json:"ledgerId,omitempty"`
	NationalCode        string   `json:"nationalCode,omitempty"`
	CheckMobileWithCard bool     `json:"checkMobileWithCard,omitempty"`
}

func (r CreateTransactionRequest) payload() createTransactionPayload {
	return createTransactionPayload{
		Merchant:            r.WireMerchant(),
		Amount:              r.Amount,
		CallbackURL:         r.CallbackURL,
		Description:         r.Description,
		OrderID:             r.OrderID,
		Mobile:              r.Mobile,
		AllowedCards:        r.AllowedCards,
		LedgerID:            r.LedgerID,
		NationalCode:        r.NationalCode,
		CheckMobileWithCard: r.CheckMobileWithCard,
	}
}

func (r CreateTransactionRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.payload())
}

// CreateAdvancedTransactionRequest adds split-payment (multiplexing) fields
// to the standard request. PercentMode and FeeMode are range checked at
// assignment, so they are only reachable through their setters.
type CreateAdvancedTransactionRequest struct {
	CreateTransactionRequest
	percentMode PercentMode
	feeMode     FeeMode
	// MultiplexingInfos must hold at least one beneficiary.
	MultiplexingInfos []MultiplexingInformation `json:"multiplexingInfos"`
}

func NewCreateAdvancedTransactionRequest(merchant string, amount int64, callbackURL string, infos ...MultiplexingInformation) *CreateAdvancedTransactionRequest {
	return &CreateAdvancedTransactionRequest{
		CreateTransactionRequest: *NewCreateTransactionRequest(merchant, amount, callbackURL),
		MultiplexingInfos:        infos,
	}
}

func (r *CreateAdvancedTransactionRequest) SetPercentMode(mode PercentMode) error {
	if mode != PercentModeAmount && mode != PercentModePercentage {
		return ErrInvalidPercentMode
	}
	r.percentMode = mode
	return nil
}

func (r *CreateAdvancedTransactionRequest) PercentMode() PercentMode {
	return r.percentMode
}

func (r *CreateAdvancedTransactionRequest) SetFeeMode(mode FeeMode) error {
	if mode != FeeModeFromTransaction && mode != FeeModeFromWallet && mode != FeeModeByPayer {
		return ErrInvalidFeeMode
	}
	r.feeMode = mode
	return nil
}

func (r *CreateAdvancedTransactionRequest) FeeMode() FeeMode {
	return r.feeMode
}

func (r CreateAdvancedTransactionRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		createTransactionPayload
		PercentMode       PercentMode               `json:"percentMode"`
		FeeMode           FeeMode                   `json:"feeMode"`
		MultiplexingInfos []MultiplexingInformation `json:"multiplexingInfos"`
	}{r.payload(), r.percentMode, r.feeMode, r.MultiplexingInfos})
}

type CreateTransactionResponse struct {
	TrackID int64                `json:"trackId"`
	Result  constants.ResultCode `json:"result"`
	Message string               `json:"message"`
}

// CreateAdvancedTransactionResponse carries the echoed beneficiary list on
// top of the standard fields. The list stays nil unless the call was made
// with the advanced flag.
type CreateAdvancedTransactionResponse struct {
	CreateTransactionResponse
	MultiplexingInfos []MultiplexingInformation `json:"multiplexingInfos,omitempty"`
}
