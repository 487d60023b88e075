// Package zoom provides a minimal HTTP client for the Zoom meetings API using
// server-to-server OAuth (account credentials).
package zoom

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/jasimarif/psychology-app/config"
)

var (
	ErrAuth               = errors.New("zoom: authentication failed")
	ErrMeetingNotFound    = errors.New("zoom: meeting not found")
	ErrUnexpectedResponse = errors.New("zoom: unexpected response")
)

// tokenSkew renews the access token slightly before Zoom expires it.
const tokenSkew = time.Minute

// Client is a lightweight Zoom HTTP client. It is safe for concurrent use.
type Client struct {
	accountID    string
	clientID     string
	clientSecret string
	userID       string
	baseURL      string
	oauthURL     string
	httpClient   *http.Client
	limiter      *rate.Limiter
	now          func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// New creates a Client from config.
func New(cfg config.ZoomConfig) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	userID := cfg.UserID
	if userID == "" {
		userID = "me"
	}
	return &Client{
		accountID:    cfg.AccountID,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		userID:       userID,
		baseURL:      cfg.APIBaseURL,
		oauthURL:     cfg.OAuthURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		limiter:      rate.NewLimiter(rate.Limit(rps), 1),
		now:          time.Now,
	}
}

// Configured reports whether credentials are present.
func (c *Client) Configured() bool {
	return c.accountID != "" && c.clientID != "" && c.clientSecret != ""
}

// CreateMeetingRequest describes a scheduled meeting.
type CreateMeetingRequest struct {
	Topic    string
	Start    time.Time
	Duration time.Duration
	Timezone string
	Agenda   string
}

// Meeting is the subset of Zoom's meeting object this client returns.
type Meeting struct {
	ID       string
	JoinURL  string
	Password string
	StartURL string
}

type meetingSettings struct {
	JoinBeforeHost   bool `json:"join_before_host"`
	WaitingRoom      bool `json:"waiting_room"`
	HostVideo        bool `json:"host_video"`
	ParticipantVideo bool `json:"participant_video"`
}

type meetingBody struct {
	Topic     string           `json:"topic,omitempty"`
	Type      int              `json:"type,omitempty"`
	StartTime string           `json:"start_time,omitempty"`
	Duration  int              `json:"duration,omitempty"`
	Timezone  string           `json:"timezone,omitempty"`
	Agenda    string           `json:"agenda,omitempty"`
	Settings  *meetingSettings `json:"settings,omitempty"`
}

// scheduledMeeting is Zoom's meeting type 2.
const scheduledMeeting = 2

// CreateMeeting schedules a meeting for the configured host user.
func (c *Client) CreateMeeting(ctx context.Context, req CreateMeetingRequest) (*Meeting, error) {
	body := meetingBody{
		Topic:     req.Topic,
		Type:      scheduledMeeting,
		StartTime: req.Start.UTC().Format(time.RFC3339),
		Duration:  int(req.Duration / time.Minute),
		Timezone:  req.Timezone,
		Agenda:    req.Agenda,
		Settings:  &meetingSettings{WaitingRoom: true, HostVideo: true, ParticipantVideo: true},
	}

	var resp struct {
		ID       int64  `json:"id"`
		JoinURL  string `json:"join_url"`
		StartURL string `json:"start_url"`
		Password string `json:"password"`
	}
	path := "/users/" + url.PathEscape(c.userID) + "/meetings"
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, fmt.Errorf("zoom create meeting: %w", err)
	}
	if resp.ID == 0 || resp.JoinURL == "" {
		return nil, ErrUnexpectedResponse
	}

	return &Meeting{
		ID:       strconv.FormatInt(resp.ID, 10),
		JoinURL:  resp.JoinURL,
		Password: resp.Password,
		StartURL: resp.StartURL,
	}, nil
}

// UpdateMeeting moves a meeting to a new start and duration.
func (c *Client) UpdateMeeting(ctx context.Context, meetingID string, start time.Time, duration time.Duration, timezone string) error {
	body := meetingBody{
		StartTime: start.UTC().Format(time.RFC3339),
		Duration:  int(duration / time.Minute),
		Timezone:  timezone,
	}
	if err := c.do(ctx, http.MethodPatch, "/meetings/"+url.PathEscape(meetingID), body, nil); err != nil {
		return fmt.Errorf("zoom update meeting: %w", err)
	}
	return nil
}

// DeleteMeeting removes a meeting. Deleting a meeting Zoom no longer knows
// about is not an error.
func (c *Client) DeleteMeeting(ctx context.Context, meetingID string) error {
	err := c.do(ctx, http.MethodDelete, "/meetings/"+url.PathEscape(meetingID), nil, nil)
	if err != nil && !errors.Is(err, ErrMeetingNotFound) {
		return fmt.Errorf("zoom delete meeting: %w", err)
	}
	return nil
}

// accessToken returns a cached token, fetching a new one when it is close to expiry.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	q := url.Values{}
	q.Set("grant_type", "account_credentials")
	q.Set("account_id", c.accountID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.oauthURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do token request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w (status=%d)", ErrAuth, res.StatusCode)
	}

	var tok struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(res.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", ErrAuth
	}

	c.token = tok.AccessToken
	c.tokenExpiry = c.now().Add(time.Duration(tok.ExpiresIn)*time.Second - tokenSkew)
	return c.token, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// do sends an authenticated JSON request and decodes a JSON response into out
// when out is non-nil. A 401 drops the cached token so the next call re-authenticates.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized:
		c.invalidateToken()
		return ErrAuth
	case res.StatusCode == http.StatusNotFound:
		return ErrMeetingNotFound
	case res.StatusCode >= 300:
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("%w (status=%d, body=%s)", ErrUnexpectedResponse, res.StatusCode, bytes.TrimSpace(msg))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
