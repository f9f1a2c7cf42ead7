package mailer

import (
	"fmt"
	"net"
	"net/smtp"

	"github.com/rs/zerolog"
)

type Config struct {
	Addr     string // host:port
	From     string
	Password string
}

// SendQuoteEmail notifies a customer about the state of their quote request.
// kind is one of received, reminder, approved, rejected.
func SendQuoteEmail(log *zerolog.Logger, cfg Config, kind, recipientEmail, eventType string, total float64) error {
	var subject, body string
	switch kind {
	case "received":
		subject = "We received your quote request"
		body = fmt.Sprintf("Hello!\n\nThank you for requesting a quote for your %s. "+
			"The estimated total is R%.2f. Our team will review it and get back to you shortly.",
			eventType, total)
	case "reminder":
		subject = "Your quote request is still open"
		body = fmt.Sprintf("Hello!\n\nYour quote request for your %s (estimated total R%.2f) "+
			"is still awaiting confirmation. Reply to this email if you would like to proceed.",
			eventType, total)
	case "approved":
		subject = "Your quote has been approved"
		body = fmt.Sprintf("Hello!\n\nGood news: your quote for your %s has been approved "+
			"at a total of R%.2f. We will be in touch to arrange delivery and setup.",
			eventType, total)
	case "rejected":
		subject = "Update on your quote request"
		body = fmt.Sprintf("Hello!\n\nUnfortunately we are unable to fulfil your quote request "+
			"for your %s. Please contact us if you would like to discuss alternatives.",
			eventType)
	default:
		return fmt.Errorf("unknown notification kind %q", kind)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		cfg.From, recipientEmail, subject, body,
	)

	host, _, err := net.SplitHostPort(cfg.Addr)
	if err != nil {
		return fmt.Errorf("invalid smtp address %q: %w", cfg.Addr, err)
	}
	auth := smtp.PlainAuth("", cfg.From, cfg.Password, host)

	if err := smtp.SendMail(cfg.Addr, auth, cfg.From, []string{recipientEmail}, []byte(msg)); err != nil {
		log.Warn().Msgf("failed to send %s email to %s: %v", kind, recipientEmail, err)
		return fmt.Errorf("send email: %w", err)
	}

	log.Info().Msgf("email sent to %s (kind: %s)", recipientEmail, kind)
	return nil
}
