package gateway

import (
	"net/url"

	"github.com/spf13/cast"

	"zibal-client/domain/constants"
)

// LazyCallbackResponse is the JSON body the gateway POSTs to the merchant
// callback URL in lazy mode. The gateway reports success as the string "1"
// or "0", not as a boolean.
type LazyCallbackResponse struct {
	Success          string                      `json:"success"`
	TrackID          int64                       `json:"trackId"`
	OrderID          string                      `json:"orderId"`
	Status           constants.TransactionStatus `json:"status,omitempty"`
	CardNumber       string                      `json:"cardNumber"`
	HashedCardNumber string                      `json:"hashedCardNumber"`
}

func (c LazyCallbackResponse) IsSuccessful() bool {
	return c.Success == "1"
}

// ParseCallbackValues reads the standard-mode callback, which arrives as
// query-string parameters on the merchant callback URL with the same field
// names as the lazy JSON body.
func ParseCallbackValues(values url.Values) LazyCallbackResponse {
	return LazyCallbackResponse{
		Success:    values.Get("success"),
		TrackID:    cast.ToInt64(values.Get("trackId")),
		OrderID:    values.Get("orderId"),
		Status:     constants.TransactionStatus(cast.ToInt(values.Get("status"))),
		CardNumber: values.Get("cardNumber"),
	}
}
