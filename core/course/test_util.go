package course

import (
	"context"
)

// EditorMock records the requests it receives and answers with Result, or Err when set.
type EditorMock struct {
	Requests []EditRequest
	Result   EditResult
	Err      error
}

var _ Editor = (*EditorMock)(nil)

func (m *EditorMock) EditCourse(_ context.Context, req EditRequest) (EditResult, error) {
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return EditResult{}, m.Err
	}
	return m.Result, nil
}

// ReloadCounter counts reloads.
type ReloadCounter struct {
	Count int
}

func (r *ReloadCounter) Reload(context.Context) error {
	r.Count++
	return nil
}
