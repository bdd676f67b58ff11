package models

// Mail is a plain-text message queued for delivery.
type Mail struct {
	To      string
	Subject string
	Text    string
}
