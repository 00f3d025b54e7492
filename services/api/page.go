package apisvc

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"
	"golang.org/x/net/html"

	"github.com/trezcool/courseadmin/core"
	"github.com/trezcool/courseadmin/core/page"
)

var _ page.Fetcher = (*Client)(nil)

// CoursePagePath is the page listing the editable courses.
func (c *Client) CoursePagePath() string {
	return c.coursePagePath
}

// FetchPage GETs a server-rendered page and parses it.
func (c *Client) FetchPage(ctx context.Context, path string) (*html.Node, error) {
	res, err := c.send(ctx, rest.Get, path, mimeHTML, nil)
	if err != nil {
		return nil, err
	}
	if res.StatusCode >= http.StatusBadRequest {
		return nil, errors.Wrapf(
			&core.ServerError{StatusCode: res.StatusCode, Message: http.StatusText(res.StatusCode)},
			"fetching %s", path,
		)
	}
	return page.Parse(res.Body)
}
