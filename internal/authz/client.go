package authz

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"address-backend/internal/config"
)

// TokenHeader carries the opaque bearer token the access-control service
// understands.
const TokenHeader = "x-access-token"

// AccessChecker resolves a bearer token plus required access level into the
// caller's public id. Implementations must fail closed: any error means
// unauthorized.
type AccessChecker interface {
	CheckAccess(ctx context.Context, token string, level int) (string, error)
}

// Client is the HTTP call-out to the external access-control service. It is
// a pure pass-through: no retries, no caching, a bounded timeout so a stuck
// collaborator cannot hold requests indefinitely.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.CheckAccessConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type checkAccessResponse struct {
	PublicID string `json:"public_id"`
}

// CheckAccess asks the access-control service whether token clears the given
// minimum level. A non-200 response, or a success response without a
// public_id, is an authorization failure.
func (c *Client) CheckAccess(ctx context.Context, token string, level int) (string, error) {
	url := fmt.Sprintf("%s/authy/checkaccess/%d", c.baseURL, level)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build check-access request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(TokenHeader, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("check-access call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("check-access denied with status %d", resp.StatusCode)
	}

	var body checkAccessResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode check-access response: %w", err)
	}
	if body.PublicID == "" {
		return "", fmt.Errorf("check-access response carried no public_id")
	}

	return body.PublicID, nil
}
