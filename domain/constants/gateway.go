package constants

const (
	// DefaultBaseURL is the production gateway endpoint.
	DefaultBaseURL = "https://gateway.zibal.ir"

	// TestMerchant is the sandbox merchant id. Every request carrying
	// IsTest sends this value instead of the configured merchant.
	TestMerchant = "zibal"

	RequestPath     = "/v1/request"
	LazyRequestPath = "/request/lazy"
	VerifyPath      = "/v1/verify"
	InquiryPath     = "/v1/inquiry"
	StartPath       = "/start/"
)

// ResultCode is the gateway "result" field, shared by every operation.
type ResultCode int

const (
	ResultSuccess             ResultCode = 100
	ResultMerchantNotFound    ResultCode = 102
	ResultMerchantInactive    ResultCode = 103
	ResultMerchantInvalid     ResultCode = 104
	ResultAmountTooLow        ResultCode = 105
	ResultInvalidCallbackURL  ResultCode = 106
	ResultAmountExceedsLimit  ResultCode = 113
	ResultAlreadyVerified     ResultCode = 201
	ResultNotPaid             ResultCode = 202
	ResultInvalidTrackID      ResultCode = 203
)

func (code ResultCode) IsSuccess() bool {
	return code == ResultSuccess
}

func (code ResultCode) IsAlreadyVerified() bool {
	return code == ResultAlreadyVerified
}

// Message returns the documented meaning of the result code.
func (code ResultCode) Message() string {
	switch code {
	case ResultSuccess:
		return "success"
	case ResultMerchantNotFound:
		return "merchant not found"
	case ResultMerchantInactive:
		return "merchant is inactive"
	case ResultMerchantInvalid:
		return "merchant is invalid"
	case ResultAmountTooLow:
		return "amount must be greater than 100 rials"
	case ResultInvalidCallbackURL:
		return "invalid callbackUrl"
	case ResultAmountExceedsLimit:
		return "amount exceeds the transaction ceiling"
	case ResultAlreadyVerified:
		return "transaction already verified"
	case ResultNotPaid:
		return "transaction not paid or unsuccessful"
	case ResultInvalidTrackID:
		return "invalid trackId"
	default:
		return "unknown result code"
	}
}

// TransactionStatus is the gateway "status" field of verify, inquiry and
// callback payloads.
type TransactionStatus int

const (
	StatusPendingPayment    TransactionStatus = -1
	StatusInternalError     TransactionStatus = -2
	StatusPaidVerified      TransactionStatus = 1
	StatusPaidUnverified    TransactionStatus = 2
	StatusCancelledByUser   TransactionStatus = 3
	StatusInvalidCardNumber TransactionStatus = 4
	StatusInsufficientFunds TransactionStatus = 5
	StatusWrongPIN          TransactionStatus = 6
	StatusTooManyRequests   TransactionStatus = 7
	StatusDailyCountLimit   TransactionStatus = 8
	StatusDailyAmountLimit  TransactionStatus = 9
	StatusInvalidIssuer     TransactionStatus = 10
	StatusSwitchError       TransactionStatus = 11
	StatusCardUnavailable   TransactionStatus = 12
	StatusRefunded          TransactionStatus = 15
	StatusRefundInProgress  TransactionStatus = 16
	StatusReversed          TransactionStatus = 18
)

func (status TransactionStatus) IsPaid() bool {
	return status == StatusPaidVerified || status == StatusPaidUnverified
}

func (status TransactionStatus) IsCancelled() bool {
	return status == StatusCancelledByUser
}

func (status TransactionStatus) Message() string {
	switch status {
	case StatusPendingPayment:
		return "awaiting payment"
	case StatusInternalError:
		return "internal error"
	case StatusPaidVerified:
		return "paid and verified"
	case StatusPaidUnverified:
		return "paid, not verified"
	case StatusCancelledByUser:
		return "cancelled by user"
	case StatusInvalidCardNumber:
		return "invalid card number"
	case StatusInsufficientFunds:
		return "insufficient balance"
	case StatusWrongPIN:
		return "wrong card password"
	case StatusTooManyRequests:
		return "too many PIN attempts"
	case StatusDailyCountLimit:
		return "daily transaction count exceeded"
	case StatusDailyAmountLimit:
		return "daily transaction amount exceeded"
	case StatusInvalidIssuer:
		return "invalid card issuer"
	case StatusSwitchError:
		return "switch error"
	case StatusCardUnavailable:
		return "card not reachable"
	case StatusRefunded:
		return "refunded"
	case StatusRefundInProgress:
		return "refund in progress"
	case StatusReversed:
		return "reversed"
	default:
		return "unknown status"
	}
}
