package currency

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// APISource pulls the live USD to INR rate from an exchangerate.host style
// endpoint.
type APISource struct {
	client *resty.Client
	url    string
}

// NewAPISource builds a source for the given endpoint URL.
func NewAPISource(url string) *APISource {
	client := resty.New().
		SetTimeout(5 * time.Second).
		SetRetryCount(0)
	return &APISource{client: client, url: url}
}

type ratesResponse struct {
	Rates struct {
		INR float64 `json:"INR"`
	} `json:"rates"`
}

// INRPerUSD fetches the rate once. Any transport or decode failure is
// returned to the resolver, which moves on to the next fallback tier.
func (s *APISource) INRPerUSD(ctx context.Context) (float64, error) {
	var body ratesResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get(s.url)
	if err != nil {
		return 0, fmt.Errorf("fetch exchange rate: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("fetch exchange rate: status %s", resp.Status())
	}
	if body.Rates.INR <= 0 {
		return 0, fmt.Errorf("exchange rate response missing INR rate")
	}
	return body.Rates.INR, nil
}
