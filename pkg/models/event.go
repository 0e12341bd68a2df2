package models

// ContentEvent is posted by the content service whenever a record changes
type ContentEvent struct {
	Collection string `json:"collection" binding:"required"`
	Event      string `json:"event"` // created, updated, deleted
	ItemID     string `json:"itemId"`
}

// InquiryCreated is published after a contact form submission is stored
type InquiryCreated struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
	CreatedAt   string `json:"createdAt"`
}
