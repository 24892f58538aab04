package gateway

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zibal-client/domain/constants"
)

func TestParseCallbackValues(t *testing.T) {
	values := url.Values{}
	values.Set("success", "1")
	values.Set("trackId", "1533727744287")
	values.Set("orderId", "ord-77")
	values.Set("status", "2")

	callback := ParseCallbackValues(values)

	assert.True(t, callback.IsSuccessful())
	assert.Equal(t, int64(1533727744287), callback.TrackID)
	assert.Equal(t, "ord-77", callback.OrderID)
	assert.Equal(t, constants.StatusPaidUnverified, callback.Status)
}

func TestParseCallbackValues_Failure(t *testing.T) {
	values := url.Values{}
	values.Set("success", "0")
	values.Set("trackId", "9")
	values.Set("status", "3")

	callback := ParseCallbackValues(values)

	assert.False(t, callback.IsSuccessful())
	assert.True(t, callback.Status.IsCancelled())
}

func TestLazyCallbackResponse_Decode(t *testing.T) {
	body := `{"success":"1","trackId":1533727744287,"orderId":"ord-77","status":2,"cardNumber":"62198610****7260","hashedCardNumber":"c681ef93"}`

	var callback LazyCallbackResponse
	require.NoError(t, json.Unmarshal([]byte(body), &callback))

	assert.True(t, callback.IsSuccessful())
	assert.Equal(t, int64(1533727744287), callback.TrackID)
	assert.Equal(t, "62198610****7260", callback.CardNumber)
	assert.Equal(t, "c681ef93", callback.HashedCardNumber)
}
