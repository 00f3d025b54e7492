package course

// Action is the discriminator telling the course-edit endpoint which operation to perform.
type Action string

const (
	ActionAdd    Action = "add"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Course is a course row as rendered by the server.
type Course struct {
	ID        string `json:"course_id"`
	Name      string `json:"course_name"`
	Professor string `json:"professor_name"`
}

// NewCourse is the input of the add action.
type NewCourse struct {
	ID        string `json:"course_id" validate:"required,notblank"`
	Name      string `json:"course_name" validate:"required,notblank"`
	Professor string `json:"professor_name" validate:"required,notblank"`
}

// UpdateCourse is the input of the update action.
// ID comes from the page and is not re-validated.
type UpdateCourse struct {
	ID        string `json:"course_id"`
	Name      string `json:"course_name" validate:"required,notblank"`
	Professor string `json:"professor_name" validate:"required,notblank"`
}

// EditRequest is the body POSTed to the course-edit endpoint.
type EditRequest struct {
	Action    Action `json:"action"`
	ID        string `json:"course_id"`
	Name      string `json:"course_name,omitempty"`
	Professor string `json:"professor_name,omitempty"`
}

// EditResult is the course-edit endpoint response.
type EditResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Outcome is the result kind of a widget operation.
type Outcome int

const (
	// Invalid: presence checks failed, nothing was sent.
	Invalid Outcome = iota
	// Declined: the user refused the confirmation, nothing was sent.
	Declined
	// Succeeded: the server reported success and the page was reloaded.
	Succeeded
	// Failed: the server reported a failure.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Invalid:
		return "invalid"
	case Declined:
		return "declined"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
