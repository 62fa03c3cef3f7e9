// Package nodeapi is the HTTP client for the blockchain node's account
// query interface. The verification service uses it to fetch the
// credentials registered on a voter account.
package nodeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/zkvoting/exovote/log"
	"github.com/zkvoting/exovote/types"
)

const (
	// DefaultTimeout is the default timeout for the HTTP client
	DefaultTimeout = 10 * time.Second
	// accountsPath is the node endpoint serving account information
	accountsPath = "/v2/accounts/"
	// maxResponseSize bounds an account info response
	maxResponseSize = 1 << 20
)

// accountInfo is the node's account response; only the credential list is
// of interest here.
type accountInfo struct {
	Address     types.HexBytes            `json:"address"`
	Credentials []types.AccountCredential `json:"credentials"`
}

// Client queries a single node over HTTP. It is safe for concurrent use.
type Client struct {
	c    *http.Client
	host *url.URL
}

// New creates a client for the node reachable at host, e.g.
// "http://localhost:20000".
func New(host string) (*Client, error) {
	hostURL, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid node endpoint %q: %w", host, err)
	}
	if hostURL.Scheme == "" || hostURL.Host == "" {
		return nil, fmt.Errorf("invalid node endpoint %q: missing scheme or host", host)
	}
	tr := &http.Transport{
		IdleConnTimeout:    DefaultTimeout,
		DisableCompression: false,
	}
	c := &Client{
		c:    &http.Client{Transport: tr, Timeout: DefaultTimeout},
		host: hostURL,
	}
	log.Debugw("node client created", "host", hostURL.String())
	return c, nil
}

// SetTimeout configures the timeout for the HTTP client.
func (c *Client) SetTimeout(d time.Duration) {
	c.c.Timeout = d
}

// AccountCredentials returns the credentials registered on the account, in
// registration order. Any transport or decoding failure is a node access
// failure: the caller decides how to classify an account without
// credentials.
func (c *Client) AccountCredentials(ctx context.Context, addr types.AccountAddress) ([]types.AccountCredential, error) {
	hexAddr := types.HexBytes(addr.Bytes())
	u := c.host.JoinPath(accountsPath, hexAddr.Hex())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("node request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Warnw("failed to close response body", "error", err.Error())
		}
	}()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read node response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("node returned status %d: %s", resp.StatusCode, body)
	}
	var info accountInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to decode account info: %w", err)
	}
	return info.Credentials, nil
}
