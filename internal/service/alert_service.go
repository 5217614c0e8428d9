package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// AlertService sends operational emails via Amazon SES. The only alert
// today is the low-content warning raised when a day cannot be filled.
type AlertService struct {
	client    *sesv2.Client
	fromEmail string
	toEmail   string
	enabled   bool

	mu   sync.Mutex
	sent map[string]bool // dedupe key game|date
}

// NewAlertService creates a new alert service. With no recipient
// configured the service is disabled and alerts only log.
func NewAlertService(awsRegion, fromEmail, toEmail string, enabled bool) (*AlertService, error) {
	s := &AlertService{
		fromEmail: fromEmail,
		toEmail:   toEmail,
		sent:      make(map[string]bool),
	}

	if !enabled || fromEmail == "" || toEmail == "" {
		log.Println("Alert service disabled: alert email not configured")
		return s, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s.client = sesv2.NewFromConfig(cfg)
	s.enabled = true
	log.Printf("Alert service enabled: from=%s, to=%s, region=%s", fromEmail, toEmail, awsRegion)
	return s, nil
}

// LowContent raises a low-content alert for a game and date. Repeat
// alerts for the same game and date are suppressed.
func (s *AlertService) LowContent(ctx context.Context, gameName, date string, missing []string) {
	key := gameName + "|" + date

	s.mu.Lock()
	if s.sent[key] {
		s.mu.Unlock()
		return
	}
	s.sent[key] = true
	s.mu.Unlock()

	log.Printf("Low content: game=%s date=%s missing=%v", gameName, date, missing)

	if !s.enabled {
		return
	}

	subject := fmt.Sprintf("PlayDay low content: %s has no puzzle for %s", gameName, date)
	textBody := fmt.Sprintf(`The daily puzzle for %s could not be built for %s.

Empty difficulty pools: %s

Add more content in the admin panel so the day can be filled.
`, gameName, date, strings.Join(missing, ", "))

	if err := s.sendEmail(ctx, subject, textBody); err != nil {
		log.Printf("Failed to send low-content alert: %v", err)
	}
}

// sendEmail sends a plain-text email using Amazon SES
func (s *AlertService) sendEmail(ctx context.Context, subject, textBody string) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{s.toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", s.toEmail, err)
	}

	log.Printf("Email sent successfully: to=%s, subject=%s", s.toEmail, subject)
	return nil
}
