package student

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/trezcool/courseadmin/core"
)

var (
	ErrMissingID     = errors.New("a student id is required")
	ErrInvalidRecord = errors.New("name and email are required")
	ErrNoFields      = errors.New("at least one field is required")
)

type (
	// API performs the student REST calls. Every method returns the response body verbatim.
	API interface {
		UpdateStudent(ctx context.Context, id string, s Student) (json.RawMessage, error)
		PatchStudent(ctx context.Context, id string, f Fields) (json.RawMessage, error)
		DeleteStudent(ctx context.Context, id string) (json.RawMessage, error)
		StudentOptions(ctx context.Context) (json.RawMessage, error)
	}

	Service struct {
		api    API
		logger core.Logger
	}
)

func NewService(api API, logger core.Logger) *Service {
	return &Service{api: api, logger: logger}
}

func checkID(id string) error {
	if core.CleanString(id) == "" {
		return core.NewValidationError(ErrMissingID, core.FieldError{Field: "id", Error: ErrMissingID.Error()})
	}
	return nil
}

// Update replaces every field of the student.
func (svc *Service) Update(ctx context.Context, id string, s Student) (json.RawMessage, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := core.CheckStruct(s, ErrInvalidRecord.Error()); err != nil {
		return nil, err
	}
	res, err := svc.api.UpdateStudent(ctx, core.CleanString(id), s)
	svc.log("update", id, err)
	return res, err
}

// Patch replaces the given subset of the student's fields.
func (svc *Service) Patch(ctx context.Context, id string, f Fields) (json.RawMessage, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if len(f) == 0 {
		return nil, core.NewValidationError(ErrNoFields)
	}
	res, err := svc.api.PatchStudent(ctx, core.CleanString(id), f)
	svc.log("patch", id, err)
	return res, err
}

func (svc *Service) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	res, err := svc.api.DeleteStudent(ctx, core.CleanString(id))
	svc.log("delete", id, err)
	return res, err
}

// Options lists the methods the students endpoint allows.
func (svc *Service) Options(ctx context.Context) (json.RawMessage, error) {
	res, err := svc.api.StudentOptions(ctx)
	svc.log("options", "", err)
	return res, err
}

func (svc *Service) log(op, id string, err error) {
	svc.logger.Debug("student "+op, map[string]interface{}{"id": id, "ok": err == nil})
}
