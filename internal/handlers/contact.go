package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"portfolio-backend/internal/models"
)

type contactSender interface {
	SendContactEmail(to, name, email, subject, message string) error
}

type ContactHandler struct {
	sender    contactSender
	recipient string
}

func NewContactHandler(sender contactSender, recipient string) *ContactHandler {
	return &ContactHandler{sender: sender, recipient: recipient}
}

// Submit relays a contact form submission to the fixed recipient address.
// One blocking SMTP call; the caller gets success or a generic failure.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ContactResponse{Success: false, Error: "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, models.ContactResponse{Success: false, Error: "Name, email and message are required"})
		return
	}

	if err := h.sender.SendContactEmail(h.recipient, req.Name, req.Email, req.Subject, req.Message); err != nil {
		log.Printf("Contact API error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ContactResponse{Success: false, Error: "Failed to send email."})
		return
	}

	writeJSON(w, http.StatusOK, models.ContactResponse{Success: true})
}
