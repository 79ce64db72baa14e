package apiclient

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
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/saulo-duarte/planner-miniapp/internal/config"
	"github.com/saulo-duarte/planner-miniapp/internal/metrics"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	UserIDParam     = "tguser_id"
	maxErrorBodyLen = 4 << 10
)

// MessageResponse is the body the REST service returns on delete.
type MessageResponse struct {
	Message string `json:"message"`
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func New(settings config.APISettings) (*Client, error) {
	base, err := url.Parse(settings.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", settings.BaseURL)
	}

	httpClient := &http.Client{Timeout: settings.Timeout}
	if settings.OAuth.ClientID != "" {
		cc := clientcredentials.Config{
			ClientID:     settings.OAuth.ClientID,
			ClientSecret: settings.OAuth.ClientSecret,
			TokenURL:     settings.OAuth.TokenURL,
			Scopes:       settings.OAuth.Scopes,
		}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: settings.Timeout})
		httpClient = cc.Client(ctx)
		httpClient.Timeout = settings.Timeout
	}

	return &Client{baseURL: base, httpClient: httpClient}, nil
}

func ItemPath(collection string, id int64) string {
	return collection + "/" + strconv.FormatInt(id, 10)
}

func (c *Client) Get(ctx context.Context, path string, userID int64, out any) error {
	return c.do(ctx, http.MethodGet, path, userID, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, userID int64, body, out any) error {
	return c.do(ctx, http.MethodPost, path, userID, body, out)
}

func (c *Client) Put(ctx context.Context, path string, userID int64, body, out any) error {
	return c.do(ctx, http.MethodPut, path, userID, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, userID int64, out any) error {
	return c.do(ctx, http.MethodDelete, path, userID, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, userID int64, body, out any) error {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"method":    method,
		"path":      path,
		"tguser_id": userID,
	})

	u := c.baseURL.JoinPath(path)
	q := u.Query()
	q.Set(UserIDParam, strconv.FormatInt(userID, 10))
	u.RawQuery = q.Encode()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.RequestIDHeader, requestID(ctx))

	resource := resourceLabel(path)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordAPIRequest(method, resource, "error", time.Since(start))
		log.WithError(err).Error("REST service unreachable")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	metrics.RecordAPIRequest(method, resource, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		statusErr := &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
		log.WithField("status", resp.StatusCode).Warn("REST service returned an error status")
		return statusErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		log.WithError(err).Error("Failed to decode REST service response")
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}

	log.Debug("REST call completed")
	return nil
}

func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}

// resourceLabel collapses numeric path segments so metrics keep a bounded
// label set: "/tasks/17" becomes "/tasks/:id".
func resourceLabel(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, p := range parts {
		if _, err := strconv.ParseInt(p, 10, 64); err == nil {
			parts[i] = ":id"
		}
	}
	return "/" + strings.Join(parts, "/")
}
