package apisvc

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/trezcool/courseadmin/core/course"
)

var _ course.Editor = (*Client)(nil)

// EditCourse POSTs req to the course-edit endpoint and decodes its {success, error} answer.
func (c *Client) EditCourse(ctx context.Context, req course.EditRequest) (course.EditResult, error) {
	res, err := c.send(ctx, rest.Post, c.courseEditPath, mimeJSON, req)
	if err != nil {
		return course.EditResult{}, err
	}
	body, err := rawJSON(res)
	if err != nil {
		return course.EditResult{}, errors.Wrap(err, "course-edit response")
	}
	var result course.EditResult
	if err := json.Unmarshal(body, &result); err != nil {
		return course.EditResult{}, errors.Wrap(err, "decoding course-edit response")
	}
	return result, nil
}
