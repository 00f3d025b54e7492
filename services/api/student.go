package apisvc

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/sendgrid/rest"

	"github.com/trezcool/courseadmin/core/student"
)

var _ student.API = (*Client)(nil)

func (c *Client) studentPath(id string) string {
	return c.studentsPath + "/" + url.PathEscape(id)
}

func (c *Client) studentCall(ctx context.Context, method rest.Method, path string, payload interface{}) (json.RawMessage, error) {
	res, err := c.send(ctx, method, path, mimeJSON, payload)
	if err != nil {
		return nil, err
	}
	return rawJSON(res)
}

// UpdateStudent PUTs the full record.
func (c *Client) UpdateStudent(ctx context.Context, id string, s student.Student) (json.RawMessage, error) {
	return c.studentCall(ctx, rest.Put, c.studentPath(id), s)
}

// PatchStudent PATCHes a subset of the record.
func (c *Client) PatchStudent(ctx context.Context, id string, f student.Fields) (json.RawMessage, error) {
	return c.studentCall(ctx, rest.Patch, c.studentPath(id), f)
}

func (c *Client) DeleteStudent(ctx context.Context, id string) (json.RawMessage, error) {
	return c.studentCall(ctx, rest.Delete, c.studentPath(id), nil)
}

func (c *Client) StudentOptions(ctx context.Context) (json.RawMessage, error) {
	return c.studentCall(ctx, methodOptions, c.studentsPath, nil)
}
