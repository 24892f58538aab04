package gateway_service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"go.uber.org/zap"

	"zibal-client/domain/constants"
	entities "zibal-client/domain/entities/gateway"
)

// GatewayClient is a thin binding over the gateway's JSON endpoints. The
// HTTP transport is caller-owned; the client never closes or replaces it,
// and its pooling and timeout discipline is whatever the caller configured.
// The client keeps no state between calls, so one instance is safe for
// concurrent use.
type GatewayClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

func NewGatewayClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *GatewayClient {
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GatewayClient{
		BaseURL:    baseURL,
		HTTPClient: httpClient,
		Logger:     logger,
	}
}

// RequestTransaction opens a payment. Pass a CreateTransactionRequest or a
// CreateAdvancedTransactionRequest; lazy selects the lazy-callback endpoint.
// When advanced is false the multiplexing fields of the response body are
// ignored and the returned MultiplexingInfos stays nil.
func (c *GatewayClient) RequestTransaction(ctx context.Context, request interface{}, lazy bool, advanced bool) (response entities.CreateAdvancedTransactionResponse, err error) {
	path := constants.RequestPath
	if lazy {
		path = constants.LazyRequestPath
	}

	if advanced {
		err = c.httpRequest(ctx, path, request, &response)
	} else {
		err = c.httpRequest(ctx, path, request, &response.CreateTransactionResponse)
	}

	return response, err
}

// VerifyTransaction settles a paid transaction.
func (c *GatewayClient) VerifyTransaction(ctx context.Context, request *entities.VerifyTransactionRequest, advanced bool) (response entities.VerifyAdvancedTransactionResponse, err error) {
	if advanced {
		err = c.httpRequest(ctx, constants.VerifyPath, request, &response)
	} else {
		err = c.httpRequest(ctx, constants.VerifyPath, request, &response.VerifyTransactionResponse)
	}

	return response, err
}

// GetTransactionStatus inquires the current state of a transaction.
func (c *GatewayClient) GetTransactionStatus(ctx context.Context, request *entities.InquiryTransactionRequest, advanced bool) (response entities.InquiryAdvancedTransactionResponse, err error) {
	if advanced {
		err = c.httpRequest(ctx, constants.InquiryPath, request, &response)
	} else {
		err = c.httpRequest(ctx, constants.InquiryPath, request, &response.InquiryTransactionResponse)
	}

	return response, err
}

// PaymentURL is the hosted payment page for a created transaction.
func (c *GatewayClient) PaymentURL(trackID int64) string {
	return fmt.Sprintf("%v%v%v", c.BaseURL, constants.StartPath, trackID)
}

// httpRequest POSTs body as JSON and unmarshals the reply into response.
// The HTTP status code is not inspected: the gateway reports business
// failures through the result field of an ordinary body, and a body that
// does not decode surfaces as the unmarshal error.
func (c *GatewayClient) httpRequest(ctx context.Context, path string, body interface{}, response interface{}) error {
	jsonrequest, err := json.Marshal(body)
	if err != nil {
		return err
	}

	uri := c.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(jsonrequest))
	if err != nil {
		return err
	}

	req.Header.Add("Content-Type", "application/json; charset=utf-8")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	responseByte, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	c.Logger.With(
		zap.String("uri", uri),
		zap.String("request", string(jsonrequest)),
		zap.String("response", string(responseByte)),
	).Info("gateway_request_data")

	err = json.Unmarshal(responseByte, response)
	if err != nil {
		c.Logger.With(zap.Error(err)).Error("can not unmarshal gateway response")
		return err
	}

	return nil
}
