package course

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/courseadmin/core"
)

// user-facing texts
const (
	MsgAdded        = "Course added successfully!"
	MsgUpdated      = "Course updated successfully!"
	MsgDeleted      = "Course deleted successfully!"
	MsgGenericError = "An error occurred."
	MsgConfirmDel   = "Are you sure you want to delete this course?"

	PromptID        = "Enter Course ID:"
	PromptName      = "Enter Course Name:"
	PromptProfessor = "Enter Professor Name:"
)

var ErrModalClosed = errors.New("no course is being edited")

type (
	// Editor sends requests to the course-edit endpoint.
	Editor interface {
		EditCourse(ctx context.Context, req EditRequest) (EditResult, error)
	}

	// Reloader re-fetches the server-rendered state after a successful edit.
	Reloader interface {
		Reload(ctx context.Context) error
	}

	// ReloaderFunc adapts a function to a Reloader.
	ReloaderFunc func(ctx context.Context) error

	// Modal is the single edit dialog shared by every course row.
	Modal struct {
		Visible   bool
		ID        string
		Name      string
		Professor string
	}

	// Widget drives the add/edit/delete course workflow.
	// It keeps no course state besides the Modal inputs: the server is the only source of truth.
	Widget struct {
		editor   Editor
		ui       core.Prompter
		reloader Reloader
		logger   core.Logger
		modal    Modal
	}
)

func (f ReloaderFunc) Reload(ctx context.Context) error { return f(ctx) }

func NewWidget(editor Editor, ui core.Prompter, reloader Reloader, logger core.Logger) *Widget {
	return &Widget{
		editor:   editor,
		ui:       ui,
		reloader: reloader,
		logger:   logger,
	}
}

// Modal exposes the edit dialog inputs so the user can change them before Update.
func (w *Widget) Modal() *Modal {
	return &w.modal
}

// Add prompts for a new course and asks the server to create it.
func (w *Widget) Add(ctx context.Context) (Outcome, error) {
	var nc NewCourse
	for _, p := range []struct {
		msg string
		dst *string
	}{
		{PromptID, &nc.ID},
		{PromptName, &nc.Name},
		{PromptProfessor, &nc.Professor},
	} {
		val, err := w.ui.Prompt(p.msg)
		if err != nil {
			return Invalid, errors.Wrap(err, "prompting course")
		}
		*p.dst = val
	}

	if err := nc.Validate(); err != nil {
		return w.invalid(err)
	}
	req := EditRequest{
		Action:    ActionAdd,
		ID:        nc.ID,
		Name:      nc.Name,
		Professor: nc.Professor,
	}
	return w.submit(ctx, req, MsgAdded)
}

// OpenEdit fills the modal with row's values and shows it. Values of a previous row are overwritten.
func (w *Widget) OpenEdit(row Course) {
	w.modal.ID = row.ID
	w.modal.Name = row.Name
	w.modal.Professor = row.Professor
	w.modal.Visible = true
}

// Update sends the modal inputs as the new course values.
func (w *Widget) Update(ctx context.Context) (Outcome, error) {
	if !w.modal.Visible {
		return Invalid, ErrModalClosed
	}
	uc := UpdateCourse{
		ID:        w.modal.ID,
		Name:      w.modal.Name,
		Professor: w.modal.Professor,
	}
	if err := uc.Validate(); err != nil {
		return w.invalid(err)
	}
	req := EditRequest{
		Action:    ActionUpdate,
		ID:        uc.ID,
		Name:      uc.Name,
		Professor: uc.Professor,
	}
	return w.submit(ctx, req, MsgUpdated)
}

// Delete removes the course being edited, once the user confirms.
func (w *Widget) Delete(ctx context.Context) (Outcome, error) {
	if !w.modal.Visible {
		return Invalid, ErrModalClosed
	}
	ok, err := w.ui.Confirm(MsgConfirmDel)
	if err != nil {
		return Declined, errors.Wrap(err, "confirming deletion")
	}
	if !ok {
		return Declined, nil
	}
	return w.submit(ctx, EditRequest{Action: ActionDelete, ID: w.modal.ID}, MsgDeleted)
}

// Cancel hides the modal.
func (w *Widget) Cancel() {
	w.modal.Visible = false
}

func (w *Widget) invalid(err error) (Outcome, error) {
	vErr, ok := errors.Cause(err).(*core.ValidationError)
	if !ok {
		return Invalid, err
	}
	w.logger.Debug("course input rejected", map[string]interface{}{"fields": vErr.FieldNames()})
	return Invalid, w.ui.Alert(vErr.Error())
}

// submit sends req, reports the result to the user and reloads on success.
// Transport errors are returned as is: the user is not alerted and may simply retry.
func (w *Widget) submit(ctx context.Context, req EditRequest, successMsg string) (Outcome, error) {
	res, err := w.editor.EditCourse(ctx, req)
	if err != nil {
		return Failed, errors.Wrapf(err, "%s course %q", req.Action, req.ID)
	}
	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = MsgGenericError
		}
		w.logger.Info("course "+string(req.Action)+" rejected", map[string]interface{}{"course_id": req.ID, "error": msg})
		return Failed, w.ui.Alert(msg)
	}

	if err := w.ui.Alert(successMsg); err != nil {
		return Succeeded, err
	}
	// a reload discards every client-side input
	w.modal = Modal{}
	if err := w.reloader.Reload(ctx); err != nil {
		return Succeeded, errors.Wrap(err, "reloading courses")
	}
	return Succeeded, nil
}
