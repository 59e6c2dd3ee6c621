package notification

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"meetplan/config"
	"meetplan/utils"

	"go.uber.org/zap"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailNotificationService sends invitation emails through the Gmail API.
type GmailNotificationService struct {
	svc    *gmail.Service
	sender string
}

// NewGmailNotificationService builds the Gmail sender from the configured
// OAuth credentials.
func NewGmailNotificationService(ctx context.Context) (*GmailNotificationService, error) {
	client, err := utils.GoogleOAuthClient(ctx, gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("gmail auth failed: %w", err)
	}
	svc, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	sender := config.AppConfig.SenderEmail
	if sender == "" {
		return nil, fmt.Errorf("SENDER_EMAIL is not configured")
	}
	return &GmailNotificationService{svc: svc, sender: sender}, nil
}

// SendEmail delivers one plain-text email.
func (s *GmailNotificationService) SendEmail(ctx context.Context, toEmail, subject, message string) error {
	logger := utils.GetLogger()

	raw := buildRFC2822(s.sender, toEmail, subject, message)
	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	if _, err := s.svc.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}
	logger.Info("Invitation email sent", zap.String("to", toEmail), zap.String("subject", subject))
	return nil
}

// buildRFC2822 assembles a minimal UTF-8 plain-text message.
func buildRFC2822(from, to, subject, body string) string {
	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)
	return sb.String()
}
