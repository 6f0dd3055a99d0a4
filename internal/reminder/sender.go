package reminder

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
)

// Message renders the reminder subject and plain-text body.
func Message(d Due) (subject, body string) {
	subject = fmt.Sprintf("Reminder: %s on %s", d.ServiceName, d.Date.Format("2006-01-02"))

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\r\n\r\n", d.PatientName)
	fmt.Fprintf(&b, "this is a reminder of your appointment for %s with %s",
		d.ServiceName, d.DoctorName)
	if d.ClinicName != "" {
		fmt.Fprintf(&b, " at %s", d.ClinicName)
	}
	fmt.Fprintf(&b, " on %s at %s.\r\n",
		d.Date.Format("2006-01-02"), schedule.Clock(d.StartsAt))

	return subject, b.String()
}

// SMTPSender e-mails the patient.
type SMTPSender struct {
	Host string
	Port int
	From string
	Auth smtp.Auth
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPSender{
		Host: host,
		Port: port,
		From: from,
		Auth: auth,
	}
}

func (s *SMTPSender) Send(_ context.Context, d Due) error {
	if d.PatientEmail == "" {
		return fmt.Errorf("appointment %d: patient has no e-mail", d.AppointmentID)
	}

	subject, body := Message(d)
	msg := "From: " + s.From + "\r\n" +
		"To: " + d.PatientEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" + body

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	return smtp.SendMail(addr, s.Auth, s.From, []string{d.PatientEmail}, []byte(msg))
}

// LogSender writes reminders to the log; used when no mail server is configured.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, d Due) error {
	subject, _ := Message(d)
	s.log.Info("reminder",
		zap.Uint("appointment_id", d.AppointmentID),
		zap.String("to", d.PatientEmail),
		zap.String("subject", subject),
	)
	return nil
}
