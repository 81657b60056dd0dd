package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/tfdeleon/bdnetworking/internal/domain"
	"github.com/tfdeleon/bdnetworking/internal/slots"
)

// Logger is the logging interface the mailer depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Mailer sends the booking confirmation email. Delivery is
// best-effort: the reservation is the durable fact, the email is not.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	log    Logger
}

// New creates an SMTP-backed mailer.
func New(host string, port int, username, password, from string, log Logger) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		log:    log,
	}
}

// SendConfirmation emails the visitor that the consultation is booked.
func (m *Mailer) SendConfirmation(booking *domain.Booking) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "Bdlvsolutions")
	msg.SetHeader("To", booking.Email)
	msg.SetHeader("Subject", "Your Consultation is Confirmed")
	msg.SetBody("text/html", confirmationBody(booking))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	m.log.Info("Confirmation email sent to %s (reference=%s)", booking.Email, booking.Reference)
	return nil
}

func confirmationBody(booking *domain.Booking) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: auto;">
  <h2 style="color: #2d3748;">Hi %s,</h2>
  <p>Your consultation has been successfully scheduled.</p>
  <p><strong>Date:</strong> %s<br><strong>Time:</strong> %s</p>
  <p><strong>Booking reference:</strong> %s</p>
  <p>We look forward to speaking with you!</p>
  <hr style="margin: 30px 0; border: none; border-top: 1px solid #ddd;" />
  <p style="font-size: 12px; color: #999; text-align: center;">
    You received this email because you booked a consultation with Bdlvsolutions.<br />
    If you did not make this booking, please contact us.
  </p>
</div>`,
		booking.Name,
		booking.Date.Format(domain.DateFormat),
		slots.FormatTo12Hour(booking.StartTime),
		booking.Reference,
	)
}
