package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"

	"github.com/resend/resend-go/v2"

	"github.com/ntgiang/attt-survey-server/models"
)

// MailProvider chọn kênh gửi thư qua biến môi trường EMAIL_PROVIDER
type MailProvider string

const (
	ProviderSMTP   MailProvider = "smtp"
	ProviderResend MailProvider = "resend"
)

// Mailer gửi thư xác nhận mã khảo sát. Gửi thư là best-effort: lỗi chỉ
// được ghi log, không bao giờ chặn luồng tạo khảo sát.
type Mailer struct {
	provider MailProvider

	// SMTP
	smtpHost  string
	smtpPort  string
	smtpUser  string
	smtpPass  string
	fromEmail string

	// Resend
	resendClient *resend.Client
	resendFrom   string
}

func NewMailerFromEnv() *Mailer {
	provider := MailProvider(os.Getenv("EMAIL_PROVIDER"))
	if provider == "" {
		provider = ProviderSMTP
	}

	m := &Mailer{provider: provider}
	switch provider {
	case ProviderResend:
		if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
			m.resendClient = resend.NewClient(apiKey)
		}
		m.resendFrom = os.Getenv("RESEND_FROM_EMAIL")
	default:
		m.provider = ProviderSMTP
		m.smtpHost = os.Getenv("SMTP_HOST")
		m.smtpPort = os.Getenv("SMTP_PORT")
		m.smtpUser = os.Getenv("SMTP_USER")
		m.smtpPass = os.Getenv("SMTP_PASS")
		m.fromEmail = os.Getenv("SMTP_FROM_EMAIL")
		if m.fromEmail == "" {
			m.fromEmail = m.smtpUser
		}
	}
	return m
}

// NotifyRespondentCreated gửi mã khảo sát cho người vừa đăng ký. Thường
// được gọi trong goroutine riêng; mọi lỗi nuốt tại chỗ sau khi ghi log.
func (m *Mailer) NotifyRespondentCreated(nks models.NguoiKhaoSat) {
	if nks.Email == "" {
		return
	}

	subject := "Mã khảo sát an toàn thông tin của bạn"
	body := fmt.Sprintf(
		"Xin chào %s,\r\n\r\n"+
			"Bạn vừa bắt đầu bài khảo sát an toàn thông tin cho tổ chức %s.\r\n"+
			"Mã khảo sát của bạn là: %s\r\n\r\n"+
			"Hãy lưu lại mã này để tiếp tục làm bài hoặc tra cứu kết quả sau khi hoàn thành.\r\n",
		nks.Ten, nks.TenToChuc, nks.ID,
	)

	var err error
	switch m.provider {
	case ProviderResend:
		err = m.sendResend(nks.Email, subject, body)
	default:
		err = m.sendSMTP(nks.Email, subject, body)
	}
	if err != nil {
		log.Printf("Không gửi được email xác nhận cho %s: %v", nks.Email, err)
	}
}

func (m *Mailer) sendSMTP(to, subject, body string) error {
	if m.smtpHost == "" {
		return fmt.Errorf("SMTP chưa được cấu hình")
	}
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.fromEmail, to, subject, body))
	auth := smtp.PlainAuth("", m.smtpUser, m.smtpPass, m.smtpHost)
	return smtp.SendMail(m.smtpHost+":"+m.smtpPort, auth, m.fromEmail, []string{to}, msg)
}

func (m *Mailer) sendResend(to, subject, body string) error {
	if m.resendClient == nil {
		return fmt.Errorf("RESEND_API_KEY chưa được thiết lập")
	}
	_, err := m.resendClient.Emails.Send(&resend.SendEmailRequest{
		From:    m.resendFrom,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	})
	return err
}
