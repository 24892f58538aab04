package gateway

import (
	"encoding/json"
	"strings"

	"zibal-client/domain/constants"
)

// InquiryTransactionRequest asks for the current state of a transaction.
// Same shape as the verify request, distinct type on the wire contract.
type InquiryTransactionRequest struct {
	Merchant string `json:"merchant"`
	TrackID  int64  `json:"trackId"`
	IsTest   bool   `json:"-"`
}

func NewInquiryTransactionRequest(merchant string, trackID int64) *InquiryTransactionRequest {
	return &InquiryTransactionRequest{
		Merchant: strings.TrimSpace(merchant),
		TrackID:  trackID,
	}
}

func (r InquiryTransactionRequest) WireMerchant() string {
	if r.IsTest {
		return constants.TestMerchant
	}
	return r.Merchant
}

func (r InquiryTransactionRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Merchant string `json:"merchant"`
		TrackID  int64  `json:"trackId"`
	}{r.WireMerchant(), r.TrackID})
}

type InquiryTransactionResponse struct {
	PaidAt      string                      `json:"paidAt"`
	CreatedAt   string                      `json:"createdAt"`
	VerifiedAt  string                      `json:"verifiedAt"`
	CardNumber  string                      `json:"cardNumber"`
	Status      constants.TransactionStatus `json:"status"`
	Amount      int64                       `json:"amount"`
	RefNumber   *int64                      `json:"refNumber"`
	Description string                      `json:"description"`
	OrderID     string                      `json:"orderId"`
	// Wage reports whether the merchant carried the transaction fee.
	Wage    bool                 `json:"wage"`
	Result  constants.ResultCode `json:"result"`
	Message string               `json:"message"`
}

type InquiryAdvancedTransactionResponse struct {
	InquiryTransactionResponse
	MultiplexingInfos []MultiplexingInformation `json:"multiplexingInfos,omitempty"`
}
