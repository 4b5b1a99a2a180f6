package models

// ContactRequest is a contact form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResponse reports whether the submission was relayed.
type ContactResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
