package student

// Student is the full record sent on update.
type Student struct {
	ID    int    `json:"id,omitempty"`
	Name  string `json:"name" validate:"required,notblank"`
	Email string `json:"email" validate:"required,notblank"`
}

// Fields is a partial record sent on patch, e.g. {"email": "jane@example.com"}.
type Fields map[string]interface{}
