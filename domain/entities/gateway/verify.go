package gateway

import (
	"encoding/json"
	"strings"

	"zibal-client/domain/constants"
)

// VerifyTransactionRequest settles a paid transaction by its tracking id.
type VerifyTransactionRequest struct {
	Merchant string `json:"merchant"`
	TrackID  int64  `json:"trackId"`
	IsTest   bool   `json:"-"`
}

func NewVerifyTransactionRequest(merchant string, trackID int64) *VerifyTransactionRequest {
	return &VerifyTransactionRequest{
		Merchant: strings.TrimSpace(merchant),
		TrackID:  trackID,
	}
}

func (r VerifyTransactionRequest) WireMerchant() string {
	if r.IsTest {
		return constants.TestMerchant
	}
	return r.Merchant
}

func (r VerifyTransactionRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Merchant string `json:"merchant"`
		TrackID  int64  `json:"trackId"`
	}{r.WireMerchant(), r.TrackID})
}

type VerifyTransactionResponse struct {
	PaidAt      string                      `json:"paidAt"`
	CardNumber  string                      `json:"cardNumber"`
	Status      constants.TransactionStatus `json:"status"`
	Amount      int64                       `json:"amount"`
	RefNumber   *int64                      `json:"refNumber"`
	Description string                      `json:"description"`
	OrderID     string                      `json:"orderId"`
	Result      constants.ResultCode        `json:"result"`
	Message     string                      `json:"message"`
}

type VerifyAdvancedTransactionResponse struct {
	VerifyTransactionResponse
	MultiplexingInfos []MultiplexingInformation `json:"multiplexingInfos,omitempty"`
}
