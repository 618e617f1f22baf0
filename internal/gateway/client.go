package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"algonest_webclient/pkg/logger"
	"go.uber.org/zap"

	"github.com/goccy/go-json"
)

const maxBodySize = 4 << 20

type Config struct {
	BaseURL    string        `mapstructure:"baseURL"`
	PathSuffix string        `mapstructure:"pathSuffix"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Retry      RetryConfig   `mapstructure:"retry"`
}

// Credentials supplies the bearer token of the session bound to ctx and
// expires that session when the backend rejects it.
type Credentials interface {
	Token(ctx context.Context) (string, error)
	Expire(ctx context.Context) error
}

type Client struct {
	baseURL    string
	pathSuffix string
	http       *http.Client
	retry      RetryConfig
	creds      Credentials
}

func New(cfg Config, creds Credentials) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend base url %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(u.String(), "/"),
		pathSuffix: cfg.PathSuffix,
		http:       &http.Client{Timeout: timeout},
		retry:      cfg.Retry,
		creds:      creds,
	}, nil
}

type call struct {
	method   string
	path     string
	query    url.Values
	body     any
	form     *multipartForm
	auth     bool
	field    string
	required bool
	fallback string
}

// Result carries the envelope fields that screens display besides the payload.
type Result struct {
	Status  int
	Message string
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/") + c.pathSuffix
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) do(ctx context.Context, cl call, out any) (*Result, error) {
	log := logger.Logger()

	var token string
	if cl.auth {
		t, err := c.creds.Token(ctx)
		if err == nil && t == "" {
			err = errors.New("empty bearer token")
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", c.expire(ctx, cl.path), err)
		}
		token = t
	}

	var (
		payload     []byte
		contentType string
		err         error
	)
	switch {
	case cl.form != nil:
		payload, contentType, err = cl.form.encode()
	case cl.body != nil:
		payload, err = json.Marshal(cl.body)
		contentType = "application/json"
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	target := c.endpoint(cl.path, cl.query)
	buildReq := func() (*http.Request, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return req, nil
	}

	var resp *http.Response
	if cl.method == http.MethodGet {
		resp, err = doWithRetry(ctx, c.http, c.retry, buildReq)
	} else {
		var req *http.Request
		req, err = buildReq()
		if err == nil {
			resp, err = c.http.Do(req)
		}
	}
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}

	if cl.auth && resp.StatusCode == http.StatusUnauthorized {
		return nil, c.expire(ctx, cl.path)
	}

	env, decodeErr := decodeEnvelope(raw)
	if decodeErr != nil {
		log.Warn("undecodable backend response",
			zap.String("path", cl.path),
			zap.Int("status", resp.StatusCode),
			zap.Error(decodeErr))
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w (%d)", ErrUnavailable, resp.StatusCode)
		}
		return nil, ErrInvalidResponse
	}

	if cl.auth && IsUnauthorizedMessage(env.errorText) {
		return nil, c.expire(ctx, cl.path)
	}

	res := &Result{Status: resp.StatusCode, Message: env.message}

	ok := resp.StatusCode < http.StatusBadRequest
	if env.success != nil {
		ok = ok && *env.success
	}
	if !ok {
		if env.errorText == "" && resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w (%d)", ErrUnavailable, resp.StatusCode)
		}
		msg := env.errorText
		if msg == "" {
			msg = cl.fallback
		}
		return res, &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return res, nil
	}

	src := raw
	if cl.field != "" {
		field, present := env.fields[cl.field]
		if !present || isNull(field) {
			if cl.required {
				return res, &APIError{Status: resp.StatusCode, Message: cl.fallback}
			}
			return res, nil
		}
		src = field
	}

	if err := json.Unmarshal(src, out); err != nil {
		log.Warn("unexpected backend payload",
			zap.String("path", cl.path),
			zap.String("field", cl.field),
			zap.Error(err))
		return res, ErrInvalidResponse
	}

	return res, nil
}

func (c *Client) expire(ctx context.Context, path string) error {
	if err := c.creds.Expire(ctx); err != nil {
		logger.Logger().Error("failed to expire session", zap.String("path", path), zap.Error(err))
	}
	return ErrUnauthorized
}

type envelope struct {
	success   *bool
	errorText string
	message   string
	fields    map[string]json.RawMessage
}

func decodeEnvelope(raw []byte) (*envelope, error) {
	env := &envelope{fields: map[string]json.RawMessage{}}
	if len(bytes.TrimSpace(raw)) == 0 {
		return env, nil
	}

	if err := json.Unmarshal(raw, &env.fields); err != nil {
		return nil, err
	}

	if v, ok := env.fields["success"]; ok {
		var b bool
		if err := json.Unmarshal(v, &b); err == nil {
			env.success = &b
		}
	}
	env.errorText = textField(env.fields["error"])
	env.message = textField(env.fields["message"])

	return env, nil
}

// textField reads a string field, tolerating numbers and objects with a
// message key that some endpoints return.
func textField(v json.RawMessage) string {
	if len(v) == 0 || isNull(v) {
		return ""
	}

	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(v, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}

	return strings.Trim(string(v), `"`)
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

func classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return ctx.Err()
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %v", ErrNetwork, err)
}
