package upload

//go:generate mockgen -source=scanner.go -destination=../mock/scanner_mock.go -package=mock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vidabem/securechat/internal/config"
	"github.com/vidabem/securechat/models"
)

// Scanner produces a malware verdict for file content. A transport or
// service failure returns an unknown-status result together with a
// wrapped ErrScanFailed; the upload policy then decides whether the
// file is admitted.
type Scanner interface {
	Scan(ctx context.Context, data []byte) (models.ScanResult, error)
}

// scanVerdict is the response body of the scanning service.
type scanVerdict struct {
	Status    string `json:"status"`
	Signature string `json:"signature,omitempty"`
}

// restScanner talks to a ClamAV-style REST scanning service.
type restScanner struct {
	client *resty.Client
	now    func() time.Time
}

// NewRESTScanner builds a [Scanner] over the configured scanning
// service.
func NewRESTScanner(cfg config.Scanner) Scanner {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(timeout)

	return &restScanner{client: cli, now: time.Now}
}

func (s *restScanner) Scan(ctx context.Context, data []byte) (models.ScanResult, error) {
	unknown := models.ScanResult{Status: models.ScanUnknown, ScannedAt: s.now()}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		Post("/v1/scan")
	if err != nil {
		return unknown, fmt.Errorf("%w: scan request: %w", ErrScanFailed, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return unknown, fmt.Errorf("%w: scanner returned %d", ErrScanFailed, resp.StatusCode())
	}

	var verdict scanVerdict
	if err := json.Unmarshal(resp.Body(), &verdict); err != nil {
		return unknown, fmt.Errorf("%w: decode scan verdict: %w", ErrScanFailed, err)
	}

	switch verdict.Status {
	case "clean":
		return models.ScanResult{Status: models.ScanClean, ScannedAt: s.now()}, nil
	case "infected":
		return models.ScanResult{Status: models.ScanInfected, ScannedAt: s.now()}, nil
	default:
		return unknown, fmt.Errorf("%w: unrecognized verdict %q", ErrScanFailed, verdict.Status)
	}
}

// disabledScanner is used when no scanner URL is configured. Every
// file carries an unknown verdict and the policy decides its fate.
type disabledScanner struct {
	now func() time.Time
}

// NewDisabledScanner builds the [Scanner] used when remote scanning is
// turned off.
func NewDisabledScanner() Scanner {
	return &disabledScanner{now: time.Now}
}

func (s *disabledScanner) Scan(_ context.Context, _ []byte) (models.ScanResult, error) {
	return models.ScanResult{Status: models.ScanUnknown, ScannedAt: s.now()}, fmt.Errorf("%w: scanning disabled", ErrScanFailed)
}
