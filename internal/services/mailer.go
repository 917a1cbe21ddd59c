package services

import (
	"fmt"
	"net/mail"
	"net/smtp"
	"strings"
	"time"

	"travelapi/internal/config"
	"travelapi/internal/domain/models"
)

// Mailer sends the owner-facing booking notification. Implementations must be
// safe to call concurrently.
type Mailer interface {
	SendBookingNotification(b models.Booking) error
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	Host       string
	Port       string
	User       string
	Pass       string
	OwnerEmail string
}

func NewSMTPMailer(env config.Env) SMTPMailer {
	return SMTPMailer{
		Host:       env.SMTPHost,
		Port:       env.SMTPPort,
		User:       env.SMTPUser,
		Pass:       env.SMTPPass,
		OwnerEmail: env.OwnerEmail,
	}
}

// Enabled reports whether the relay is configured. When it is not, callers
// skip sending instead of failing.
func (m SMTPMailer) Enabled() bool {
	return m.Host != "" && m.OwnerEmail != ""
}

func (m SMTPMailer) SendBookingNotification(b models.Booking) error {
	if !m.Enabled() {
		return fmt.Errorf("smtp relay not configured")
	}

	msg, err := m.message(b)
	if err != nil {
		return err
	}

	addr := m.Host + ":" + m.Port
	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	return smtp.SendMail(addr, auth, m.User, []string{m.OwnerEmail}, msg)
}

// message assembles the raw RFC 822 message. Name, title and email come from
// the public booking form, so everything header-bound is folded to a single
// line and the Reply-To address must parse as a bare address.
func (m SMTPMailer) message(b models.Booking) ([]byte, error) {
	replyTo, err := mail.ParseAddress(headerValue(b.Email))
	if err != nil {
		return nil, fmt.Errorf("invalid reply-to address %q: %w", b.Email, err)
	}

	fromName := headerValue(b.FullName)
	subject := fmt.Sprintf("New Booking Request: %s – %s", headerValue(b.ItemTitle), fromName)
	body := bookingNotificationHTML(b)

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %q <%s>\r\n", fromName, m.User))
	msg.WriteString("To: " + m.OwnerEmail + "\r\n")
	msg.WriteString("Reply-To: " + replyTo.Address + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	return []byte(msg.String()), nil
}

// headerValue folds user input destined for a header line: CR/LF collapse to
// spaces so a crafted field can never start a new header or the body.
func headerValue(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

func bookingNotificationHTML(b models.Booking) string {
	travelDate := b.TravelDate
	if travelDate == "" {
		travelDate = "<em>Not specified</em>"
	}

	messageBlock := ""
	if b.Message != "" {
		messageBlock = fmt.Sprintf(`
      <h3 style="color: #1a3a6e;">Additional Message</h3>
      <div style="background-color: #f9f9f9; padding: 16px; border-radius: 6px; border: 1px solid #eee;">%s</div>`,
			strings.ReplaceAll(b.Message, "\n", "<br>"))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>New Booking Request</title></head>
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:Arial,Helvetica,sans-serif;">
  <table role="presentation" width="600" style="margin:20px auto;background-color:#ffffff;border-radius:12px;" cellpadding="0" cellspacing="0">
    <tr>
      <td align="center" style="background-color:#1a3a6e;padding:24px;">
        <h1 style="color:#ffffff;margin:0;">New Booking Request</h1>
      </td>
    </tr>
    <tr>
      <td style="padding:32px;">
        <p>You have received a new booking request from <strong>%s</strong> for:</p>
        <div style="background-color:#f0f7ff;border-left:4px solid #1a3a6e;padding:16px;margin:16px 0;border-radius:6px;">
          <p style="margin:0;font-size:18px;color:#1a3a6e;"><strong>%s</strong></p>
          <p style="margin:8px 0 0;color:#555;">Booking Type: %s</p>
        </div>
        <h3 style="color:#1a3a6e;">Customer Details</h3>
        <table role="presentation" width="100%%" style="font-size:15px;color:#444;">
          <tr><td style="padding:8px 0;font-weight:bold;width:140px;">Name:</td><td>%s</td></tr>
          <tr><td style="padding:8px 0;font-weight:bold;">Email:</td><td><a href="mailto:%s">%s</a></td></tr>
          <tr><td style="padding:8px 0;font-weight:bold;">Phone:</td><td><a href="tel:%s">%s</a></td></tr>
          <tr><td style="padding:8px 0;font-weight:bold;">Travel Date:</td><td>%s</td></tr>
          <tr><td style="padding:8px 0;font-weight:bold;">Travelers:</td><td>%d</td></tr>
        </table>
        %s
      </td>
    </tr>
    <tr>
      <td style="background-color:#f8f9fa;padding:20px;text-align:center;font-size:13px;color:#777;">
        Submitted through the website on %s.
      </td>
    </tr>
  </table>
</body>
</html>`,
		b.FullName, b.ItemTitle, b.BookingType,
		b.FullName, b.Email, b.Email, b.Phone, b.Phone,
		travelDate, b.Travelers,
		messageBlock,
		time.Now().Format("Monday, January 2, 2006"))
}
