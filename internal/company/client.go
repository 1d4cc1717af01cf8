// Package company fetches the applicant's record from the backend and
// keeps the derived navigation graph current. The service never mutates
// menus in place: every change to the record triggers a wholesale
// rebuild, so the graph is always a pure function of the latest record.
package company

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"onboarding-engine/internal/common/httpclient"
	"onboarding-engine/internal/common/logger"
	"onboarding-engine/internal/common/metrics"
	"onboarding-engine/internal/models"
)

// Fetcher retrieves the current company record.
type Fetcher interface {
	FetchRecord(ctx context.Context) (*models.CompanyRecord, error)
}

// Client talks to the company-info backend.
type Client struct {
	http    *httpclient.Client
	baseURL string
	apiKey  string
	log     logger.Logger
}

// NewClient creates a backend client with the given timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		http:    httpclient.NewClient(timeout),
		baseURL: baseURL,
		apiKey:  apiKey,
		log:     log,
	}
}

// FetchRecord fetches the applicant's company record. A successful
// envelope whose data block carries no company yields a nil record,
// which callers treat as "no application started yet".
func (c *Client) FetchRecord(ctx context.Context) (*models.CompanyRecord, error) {
	requestID := uuid.New().String()
	start := time.Now()

	headers := map[string]string{
		"X-Request-Id": requestID,
	}
	if c.apiKey != "" {
		headers["Authorization"] = "Bearer " + c.apiKey
	}

	var envelope models.CompanyInfoEnvelope
	err := c.http.GetJSON(ctx, c.baseURL+"/api/v1/company/info", headers, &envelope)
	metrics.RecordFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RecordFetches.WithLabelValues("error").Inc()
		c.log.Error("company record fetch failed", map[string]interface{}{
			"requestId": requestID,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("fetch company record: %w", err)
	}

	if !envelope.MetaData.Status {
		metrics.RecordFetches.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("backend rejected request: %s", envelope.Error.Reason)
	}

	metrics.RecordFetches.WithLabelValues("success").Inc()
	c.log.Debug("company record fetched", map[string]interface{}{
		"requestId":     requestID,
		"transactionId": envelope.MetaData.TransactionID,
		"hasRecord":     envelope.Data.Company != nil,
	})
	return envelope.Data.Company, nil
}
