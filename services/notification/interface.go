package notification

import "context"

// NotificationService defines methods for delivering meeting emails.
type NotificationService interface {
	SendEmail(ctx context.Context, toEmail, subject, message string) error
}
