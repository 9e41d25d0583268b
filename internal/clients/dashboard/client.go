package dashboard

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	internal "github.com/KirkDiggler/dream-bot-discord/internal"
	dnderr "github.com/KirkDiggler/dream-bot-discord/internal/errors"
	"github.com/KirkDiggler/dream-bot-discord/internal/profile"
)

// DefaultPathPrefix is where the dashboard mounts its API
const DefaultPathPrefix = "/dashboard"

const (
	pathLogin   = "/login"
	pathLogout  = "/logout"
	pathProfile = "/profile"
	pathDLC     = "/dlc"
	pathPreview = "/previewskin"
)

type client struct {
	baseURL    string
	prefix     string
	httpClient *http.Client
}

type Config struct {
	BaseURL    string
	PathPrefix string
	HttpClient *http.Client
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.BaseURL == "" {
		return nil, internal.NewMissingParamError("BaseURL")
	}

	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	prefix := cfg.PathPrefix
	if prefix == "" {
		prefix = DefaultPathPrefix
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		prefix:     "/" + strings.Trim(prefix, "/"),
		httpClient: httpClient,
	}, nil
}

func (c *client) Login(ctx context.Context, gsid string) (Session, *profile.Status, error) {
	form := url.Values{"gsid": {gsid}}

	status := &profile.Status{}
	cookies, err := c.do(ctx, http.MethodPost, pathLogin, "", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", status)
	if err != nil {
		return "", nil, err
	}
	if status.Error {
		return "", status, nil
	}

	session := sessionFromCookies(cookies)
	if session == "" {
		return "", nil, dnderr.Unavailablef(op(pathLogin), "dashboard did not start a session")
	}
	return session, status, nil
}

func (c *client) GetProfile(ctx context.Context, session Session) (*profile.Document, error) {
	doc := &profile.Document{}
	if _, err := c.do(ctx, http.MethodGet, pathProfile, session, nil, "", doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *client) UpdateProfile(ctx context.Context, session Session, req *profile.UpdateRequest) (*profile.Status, error) {
	if req == nil {
		return nil, internal.NewMissingParamError("req")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to encode profile update")
	}

	status := &profile.Status{}
	if _, err := c.do(ctx, http.MethodPost, pathProfile, session, strings.NewReader(string(body)), "application/json", status); err != nil {
		return nil, err
	}
	return status, nil
}

func (c *client) ListDLC(ctx context.Context, session Session, dlcType profile.DLCType) ([]string, error) {
	path := pathDLC + "?" + url.Values{"type": {string(dlcType)}}.Encode()

	names := make([]string, 0)
	if _, err := c.do(ctx, http.MethodGet, path, session, nil, "", &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (c *client) Logout(ctx context.Context, session Session) error {
	_, err := c.do(ctx, http.MethodPost, pathLogout, session, nil, "", nil)
	if err != nil {
		log.Printf("[Dashboard] logout failed: %v", err)
	}
	return err
}

func (c *client) PreviewURL(dlcType profile.DLCType, name string) string {
	query := url.Values{"type": {string(dlcType)}, "name": {name}}
	return c.baseURL + c.prefix + pathPreview + "?" + query.Encode()
}

func op(path string) string {
	return "fetching " + path
}

// do sends one request. 401 maps to an auth error; any other non-200 status,
// a transport failure or an undecodable body maps to an unavailable error
// naming the path.
func (c *client) do(ctx context.Context, method, path string, session Session, body io.Reader, contentType string, out any) ([]*http.Cookie, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+c.prefix+path, body)
	if err != nil {
		return nil, dnderr.Unavailable(op(path), err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if session != "" {
		req.Header.Set("Cookie", string(session))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, dnderr.Unavailable(op(path), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, dnderr.AuthExpired(op(path))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, dnderr.Unavailablef(op(path), "Server returned status code %d while %s", resp.StatusCode, op(path)).
			WithMeta("status", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "Could not deserialize JSON response").
				WithOp(op(path))
		}
	}

	return resp.Cookies(), nil
}

func sessionFromCookies(cookies []*http.Cookie) Session {
	parts := make([]string, 0, len(cookies))
	for _, cookie := range cookies {
		if cookie.Value == "" {
			continue
		}
		parts = append(parts, cookie.Name+"="+cookie.Value)
	}
	return Session(strings.Join(parts, "; "))
}

type boundClient struct {
	client  Client
	session Session
}

// Bind returns a profile gateway that posts with the given session
func Bind(c Client, session Session) profile.Gateway {
	return &boundClient{client: c, session: session}
}

func (b *boundClient) UpdateProfile(ctx context.Context, req *profile.UpdateRequest) (*profile.Status, error) {
	return b.client.UpdateProfile(ctx, b.session, req)
}
