package beatport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/handiism/beatport-downloader/internal/beatport/dto"
)

const (
	// DefaultBaseURL is the Beatport v4 API root.
	DefaultBaseURL = "https://api.beatport.com/v4/"

	// defaultClientID is the OAuth client ID of the Beatport mobile app.
	defaultClientID = "ryZ8LuyQVPqbK2mBX2Hwt4qSMtnWuTYSqBPO92yQ"

	defaultUserAgent = "Mozilla/5.0"

	// perPage is the fixed page size for paginated catalog listings.
	perPage = 100
)

// Session is the token triple produced by authentication and consumed by
// every catalog call. It is plain data: the host persists it between runs
// and hands it back via Client.SetSession.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Expires      time.Time `json:"expires"`
}

// Valid reports whether the session has a token that has not expired yet.
func (s Session) Valid() bool {
	return s.AccessToken != "" && time.Now().Before(s.Expires)
}

// CanRefresh reports whether a refresh token is available.
func (s Session) CanRefresh() bool {
	return s.RefreshToken != ""
}

// Client wraps the Beatport v4 REST API.
//
// Client handles:
//   - The 3-step credential login flow and token refresh
//   - Bearer authentication on catalog and account endpoints
//   - Translation of non-success statuses into typed errors
//   - Optional request/response tracing with credential redaction
//
// Calls are blocking and sequential; the client performs no retries and no
// caching. Example usage:
//
//	client := beatport.NewClient()
//	session, err := client.Authenticate(ctx, username, password)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	track, err := client.Track(ctx, 10844269)
type Client struct {
	baseURL    string
	clientID   string
	userAgent  string
	httpClient *http.Client
	session    Session
	trace      *Trace
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root. Used by tests to point the client at
// an httptest server. The URL must end with a slash.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithClientID overrides the OAuth client ID.
func WithClientID(id string) Option {
	return func(c *Client) { c.clientID = id }
}

// WithTrace enables request/response tracing to the given sink. Bodies are
// sanitized before logging; see Trace.
func WithTrace(w io.Writer) Option {
	return func(c *Client) { c.trace = NewTrace(w) }
}

// NewClient creates a Client for the production API.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		clientID:   defaultClientID,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the current token triple for persistence by the host.
func (c *Client) Session() Session {
	return c.session
}

// SetSession restores a previously persisted token triple.
func (c *Client) SetSession(s Session) {
	c.session = s
}

// Authenticate performs the credential login flow and installs the resulting
// session on the client:
//
//  1. POST auth/login/ with username/password; a sessionid cookie comes back.
//  2. GET auth/o/authorize/ with that cookie, redirects disabled; the
//     authorization code is parsed out of the 302 Location header.
//  3. POST auth/o/token/ exchanging the code for the token triple.
//
// The returned Session is also available via Session() afterwards.
func (c *Client) Authenticate(ctx context.Context, username, password string) (Session, error) {
	sessionID, err := c.login(ctx, username, password)
	if err != nil {
		return Session{}, err
	}

	code, err := c.authorize(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}

	form := url.Values{
		"client_id":  {c.clientID},
		"grant_type": {"authorization_code"},
		"code":       {code},
	}
	return c.exchangeToken(ctx, form)
}

// Refresh exchanges the refresh token for a fresh token triple and installs
// it on the client.
func (c *Client) Refresh(ctx context.Context) (Session, error) {
	if !c.session.CanRefresh() {
		return Session{}, &AuthError{Reason: "no refresh token"}
	}

	form := url.Values{
		"client_id":     {c.clientID},
		"grant_type":    {"refresh_token"},
		"refresh_token": {c.session.RefreshToken},
	}
	return c.exchangeToken(ctx, form)
}

// login performs step 1 of the flow and returns the sessionid cookie value.
func (c *Client) login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"auth/login/", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.traceRequest(req, body)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	respBody, err := c.readBody(resp)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", &AuthError{Reason: "login failed - invalid credentials", Body: string(respBody)}
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "sessionid" {
			return cookie.Value, nil
		}
	}
	return "", &AuthError{Reason: "login response carried no session cookie"}
}

// authorize performs step 2 and returns the authorization code from the
// redirect Location.
func (c *Client) authorize(ctx context.Context, sessionID string) (string, error) {
	u := c.baseURL + "auth/o/authorize/?" + url.Values{
		"client_id":     {c.clientID},
		"response_type": {"code"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: sessionID})

	c.traceRequest(req, nil)

	// The code lives in the redirect target; the redirect itself must not
	// be followed.
	noRedirect := *c.httpClient
	noRedirect.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	resp, err := noRedirect.Do(req)
	if err != nil {
		return "", err
	}
	respBody, err := c.readBody(resp)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusFound {
		return "", &AuthError{Reason: "authorization failed", Body: string(respBody)}
	}

	location := resp.Header.Get("Location")
	loc, err := url.Parse(location)
	if err != nil || loc.Query().Get("code") == "" {
		return "", &AuthError{Reason: "no authorization code in redirect", Body: location}
	}
	return loc.Query().Get("code"), nil
}

// exchangeToken performs the token endpoint POST shared by the code exchange
// and the refresh grant.
func (c *Client) exchangeToken(ctx context.Context, form url.Values) (Session, error) {
	body := form.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"auth/o/token/", strings.NewReader(body))
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	c.traceRequest(req, []byte(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Session{}, err
	}
	respBody, err := c.readBody(resp)
	if err != nil {
		return Session{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return Session{}, &AuthError{Reason: "token exchange failed", Body: string(respBody)}
	}

	var token dto.TokenResponse
	if err := json.Unmarshal(respBody, &token); err != nil {
		return Session{}, fmt.Errorf("decode token response: %w", err)
	}
	if token.ErrorDescription != "" {
		return Session{}, &AuthError{Reason: token.ErrorDescription}
	}

	c.session = Session{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expires:      time.Now().Add(time.Duration(token.ExpiresIn) * time.Second),
	}
	return c.session, nil
}

// get performs an authenticated GET against the API and decodes the JSON
// payload into out.
//
// Status handling is uniform across all catalog and account endpoints:
// 200/201/202 succeed, 401 becomes an AuthError, anything else becomes a
// StatusError carrying the raw body.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Authorization", "Bearer "+c.session.AccessToken)

	c.traceRequest(req, nil)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	body, err := c.readBody(resp)
	if err != nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
	case http.StatusUnauthorized:
		return &AuthError{Reason: "unauthorized", Body: string(body)}
	default:
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

// readBody drains and closes the response body, tracing the response.
func (c *Client) readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	c.traceResponse(resp, body)
	return body, nil
}

func (c *Client) traceRequest(req *http.Request, body []byte) {
	if c.trace != nil {
		c.trace.Request(req, body)
	}
}

func (c *Client) traceResponse(resp *http.Response, body []byte) {
	if c.trace != nil {
		c.trace.Response(resp, body)
	}
}

func pageQuery(page int) url.Values {
	return url.Values{
		"page":     {fmt.Sprintf("%d", page)},
		"per_page": {fmt.Sprintf("%d", perPage)},
	}
}
