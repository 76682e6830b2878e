package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/patientkeeper/internal/client/models"
	"github.com/dmitrijs2005/patientkeeper/internal/logging"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response is kept for logging.
const maxErrorBody = 512

type HTTPClient struct {
	endpointURL string
	timeout     time.Duration
	httpClient  *http.Client
	logger      logging.Logger
}

// NewHTTPClient returns a Source reading from endpointURL. A positive
// timeout bounds each FetchAll call; zero leaves it to ctx. httpClient may
// be nil, in which case http.DefaultClient is used.
func NewHTTPClient(endpointURL string, timeout time.Duration, httpClient *http.Client, logger logging.Logger) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		endpointURL: endpointURL,
		timeout:     timeout,
		httpClient:  httpClient,
		logger:      logger.With("component", "remote", "url", endpointURL),
	}
}

// remotePatient is the wire shape. ID is kept raw because the endpoint may
// send it either as a string or as a number.
type remotePatient struct {
	ID          json.RawMessage `json:"id"`
	Name        string          `json:"name"`
	Avatar      string          `json:"avatar"`
	Description string          `json:"description"`
	Website     string          `json:"website"`
	CreatedAt   string          `json:"createdAt"`
}

func (c *HTTPClient) FetchAll(ctx context.Context) ([]models.Patient, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	requestID := uuid.NewString()
	log := c.logger.With("request_id", requestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error(ctx, "fetch patients", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Error(ctx, "fetch patients", "status", resp.Status, "body", string(b))
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, resp.Status)
	}

	var rows []remotePatient
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		log.Error(ctx, "decode patients", "error", err)
		return nil, fmt.Errorf("%w: decode: %v", ErrFetchFailed, err)
	}

	patients := make([]models.Patient, 0, len(rows))
	for _, row := range rows {
		patients = append(patients, row.toModel())
	}

	log.Debug(ctx, "patients fetched", "count", len(patients), "elapsed", time.Since(started))
	return patients, nil
}

func (r remotePatient) toModel() models.Patient {
	p := models.Patient{
		ID:          rawID(r.ID),
		Name:        r.Name,
		Avatar:      r.Avatar,
		Description: r.Description,
		Website:     r.Website,
		CreatedAt:   r.CreatedAt,
	}
	if p.Description == "" {
		p.Description = models.DefaultDescription
	}
	if p.Website == "" {
		p.Website = models.DefaultWebsite
	}
	return p
}

// rawID renders a JSON string or number as a plain string. null and
// missing ids become empty.
func rawID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.Trim(string(raw), `"`)
}
