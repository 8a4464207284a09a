// Package leads submits captured leads to the collection endpoint.
package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/psptechhub/leadcap/internal/logging"
)

var (
	// ErrSubmissionFailed is returned for any transport failure or non-2xx reply.
	ErrSubmissionFailed = errors.New("lead submission failed")
	// ErrEndpointNotConfigured is returned when no endpoint URL is set.
	ErrEndpointNotConfigured = errors.New("lead endpoint not configured")
)

// Lead is one captured prospect. Field names match the sheet columns.
type Lead struct {
	Name             string `json:"name"`
	CompanyName      string `json:"companyName"`
	Country          string `json:"country"`
	Email            string `json:"email"`
	MobileNumber     string `json:"mobileNumber"`
	BusinessCase     string `json:"businessCase"`
	Application      string `json:"application"`
	ApplicationValue string `json:"applicationValue"`
}

// Payload is the request body: {"sheet1": {...}}.
type Payload struct {
	Sheet1 Lead `json:"sheet1"`
}

type Submitter interface {
	Submit(ctx context.Context, lead Lead) error
}

type HTTPSubmitter struct {
	endpoint string
	http     *http.Client
	log      logging.Logger
}

func NewHTTPSubmitter(endpoint string, timeout time.Duration, log logging.Logger) *HTTPSubmitter {
	return &HTTPSubmitter{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		log:      log,
	}
}

// Submit POSTs the lead as JSON. Any 2xx status is success; the body is
// not inspected.
func (s *HTTPSubmitter) Submit(ctx context.Context, lead Lead) error {
	if s.endpoint == "" {
		return ErrEndpointNotConfigured
	}

	body, err := json.Marshal(Payload{Sheet1: lead})
	if err != nil {
		return fmt.Errorf("failed to encode lead: %w", err)
	}

	requestID := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Join(ErrSubmissionFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := s.http.Do(req)
	if err != nil {
		s.log.Warn(ctx, "lead submission failed", "request_id", requestID, "error", err)
		return errors.Join(ErrSubmissionFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.Warn(ctx, "lead submission rejected", "request_id", requestID, "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrSubmissionFailed, resp.StatusCode)
	}

	s.log.Info(ctx, "lead submitted", "request_id", requestID, "status", resp.StatusCode)
	return nil
}
