// Package apisvc talks to the course administration backend over HTTP.
package apisvc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kat-co/vala"
	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/trezcool/courseadmin/core"
)

const (
	mimeJSON = "application/json"
	mimeHTML = "text/html"

	HeaderRequestID = "X-Request-ID"

	methodOptions rest.Method = http.MethodOptions
)

// Client is the backend client: the course-edit endpoint, the student endpoints and rendered pages.
// It never retries; a failed call is reported to the caller once.
type Client struct {
	rest           *rest.Client
	baseURL        string
	coursePagePath string
	courseEditPath string
	studentsPath   string
	timeout        time.Duration
	logger         core.Logger
}

// NewClient builds a Client from conf. httpClient is optional.
func NewClient(conf *core.Config, logger core.Logger, httpClient ...*http.Client) (*Client, error) {
	if conf == nil {
		return nil, errors.New("apisvc: nil config")
	}
	err := vala.BeginValidation().Validate(
		vala.IsNotNil(logger, "logger"),
		isAbsoluteURL(conf.BaseURL, "baseURL"),
		isPath(conf.CoursePagePath, "coursePagePath"),
		isPath(conf.CourseEditPath, "courseEditPath"),
		isPath(conf.StudentsPath, "studentsPath"),
	).Check()
	if err != nil {
		return nil, errors.Wrap(err, "apisvc: invalid config")
	}

	hc := &http.Client{}
	if len(httpClient) > 0 && httpClient[0] != nil {
		hc = httpClient[0]
	}
	return &Client{
		rest:           &rest.Client{HTTPClient: hc},
		baseURL:        strings.TrimRight(conf.BaseURL, "/"),
		coursePagePath: conf.CoursePagePath,
		courseEditPath: conf.CourseEditPath,
		studentsPath:   strings.TrimRight(conf.StudentsPath, "/"),
		timeout:        conf.RequestTimeout,
		logger:         logger,
	}, nil
}

func isAbsoluteURL(raw, paramName string) vala.Checker {
	return func() (bool, string) {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return false, fmt.Sprintf("Parameter is not an absolute URL: %s", paramName)
		}
		return true, ""
	}
}

func isPath(raw, paramName string) vala.Checker {
	return func() (bool, string) {
		if !strings.HasPrefix(raw, "/") {
			return false, fmt.Sprintf("Parameter is not an absolute path: %s", paramName)
		}
		return true, ""
	}
}

// send issues a single request. payload is JSON-encoded when not nil.
func (c *Client) send(ctx context.Context, method rest.Method, path, accept string, payload interface{}) (*rest.Response, error) {
	reqID := uuid.New().String()
	req := rest.Request{
		Method:  method,
		BaseURL: c.baseURL + path,
		Headers: map[string]string{
			"Accept":        accept,
			HeaderRequestID: reqID,
		},
	}
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "encoding request body")
		}
		req.Headers["Content-Type"] = mimeJSON
		req.Body = body
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := c.rest.SendWithContext(ctx, req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	c.logger.Debug("api request", map[string]interface{}{
		"method":     string(method),
		"path":       path,
		"status":     res.StatusCode,
		"request_id": reqID,
		"took":       time.Since(start).String(),
	})
	return res, nil
}

// rawJSON returns the response body verbatim, provided it is well-formed JSON.
func rawJSON(res *rest.Response) (json.RawMessage, error) {
	body := strings.TrimSpace(res.Body)
	if !json.Valid([]byte(body)) {
		if res.StatusCode >= http.StatusBadRequest {
			return nil, &core.ServerError{StatusCode: res.StatusCode, Message: http.StatusText(res.StatusCode)}
		}
		return nil, errors.Errorf("malformed JSON response (status %d)", res.StatusCode)
	}
	return json.RawMessage(body), nil
}
