package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/golang-jwt/jwt/v5"

	"starquest/internal/i18n"
	"starquest/internal/models"
	"starquest/internal/render"
)

// EmailService delivers rendered reports via Amazon SES
type EmailService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	appBaseURL string
	linkSecret []byte
	enabled    bool
}

// NewEmailService creates a new email service. An empty fromEmail
// yields a disabled service whose send methods are no-ops, so the rest
// of the app can run without SES credentials.
func NewEmailService(awsRegion, fromEmail, fromName, appBaseURL, linkSecret string) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false, appBaseURL: appBaseURL}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:     sesv2.NewFromConfig(cfg),
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		linkSecret: []byte(linkSecret),
		enabled:    true,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendWeeklyReport renders and delivers the weekly report email. The
// Markdown rendering doubles as the plain-text part.
func (s *EmailService) SendWeeklyReport(ctx context.Context, toEmail string, report *models.PeriodReport) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): weekly report to %s", toEmail)
		return nil
	}

	subject := i18n.Tf("subject.weekly", report.Locale, report.FamilyName)
	viewURL := s.viewURL(report.FamilyID, "weekly-report")
	htmlBody := render.WeeklyEmailHTML(report, viewURL)
	textBody := render.Markdown(report)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// SendSettlementNotice renders and delivers the credit settlement
// notice for an externally computed settlement result
func (s *EmailService) SendSettlementNotice(ctx context.Context, toEmail string, result *models.SettlementResult, locale string) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): settlement notice to %s", toEmail)
		return nil
	}

	locale = i18n.Normalize(locale)
	subject := i18n.Tf("subject.settlement", locale, result.FamilyName)
	viewURL := s.viewURL(result.FamilyID, "settlement-notice")
	htmlBody := render.SettlementEmailHTML(result, locale, viewURL)
	textBody := fmt.Sprintf("%s\n\n%s: %d\n",
		subject, i18n.T("settlement.total", locale), result.TotalInterestCharged)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// viewURL builds the view-in-app link. With a link secret configured
// the URL carries a short-lived signed token so the app can deep-link
// straight to the report.
func (s *EmailService) viewURL(familyID int64, kind string) string {
	base := fmt.Sprintf("%s/reports?family=%d&kind=%s", s.appBaseURL, familyID, kind)
	if len(s.linkSecret) == 0 {
		return base
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"family_id": familyID,
		"kind":      kind,
		"exp":       time.Now().Add(7 * 24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(s.linkSecret)
	if err != nil {
		log.Printf("failed to sign view link token: %v", err)
		return base
	}
	return base + "&token=" + signed
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	log.Printf("Email sent: to=%s, subject=%s", toEmail, subject)
	return nil
}
