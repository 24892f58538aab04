package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultCode(t *testing.T) {
	assert.True(t, ResultSuccess.IsSuccess())
	assert.False(t, ResultNotPaid.IsSuccess())
	assert.True(t, ResultAlreadyVerified.IsAlreadyVerified())

	assert.Equal(t, "success", ResultSuccess.Message())
	assert.Equal(t, "transaction already verified", ResultAlreadyVerified.Message())
	assert.Equal(t, "unknown result code", ResultCode(999).Message())
}

func TestTransactionStatus(t *testing.T) {
	assert.True(t, StatusPaidVerified.IsPaid())
	assert.True(t, StatusPaidUnverified.IsPaid())
	assert.False(t, StatusPendingPayment.IsPaid())
	assert.True(t, StatusCancelledByUser.IsCancelled())

	assert.Equal(t, "paid and verified", StatusPaidVerified.Message())
	assert.Equal(t, "unknown status", TransactionStatus(99).Message())
}
