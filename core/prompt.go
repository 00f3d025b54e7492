package core

// Prompter is the blocking user dialog surface: free-text prompts, yes/no confirmations and alerts.
type Prompter interface {
	// Prompt asks for a line of text. A dismissed prompt yields an empty string.
	Prompt(msg string) (string, error)
	Confirm(msg string) (bool, error)
	Alert(msg string) error
}
