package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Emmynem/alphaprimeclub-api/internals/configs"
)

// Mail is one outbound notification.
type Mail struct {
	ToEmail string
	Subject string
	Text    string
	HTML    string
}

// MailResult mirrors the cloud mailer response envelope.
type MailResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// DataIsNull reports whether the relay accepted the request but produced no
// delivery data, which the engine treats as a distinct failure.
func (r *MailResult) DataIsNull() bool {
	return len(r.Data) == 0 || string(r.Data) == "null"
}

// Mailer dispatches a rendered notification and reports the relay's verdict.
type Mailer interface {
	Send(ctx context.Context, mail Mail) (*MailResult, error)
}

// CloudMailer posts to the cloud mailer relay's /send endpoint with the
// configured SMTP credentials.
type CloudMailer struct {
	cfg    configs.Config
	client *http.Client
}

func NewCloudMailer(cfg configs.Config) *CloudMailer {
	return &CloudMailer{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (m *CloudMailer) Send(ctx context.Context, mail Mail) (*MailResult, error) {
	payload := map[string]string{
		"host_type":  m.cfg.HostType,
		"smtp_host":  m.cfg.SMTPHost,
		"username":   m.cfg.MailerUsername,
		"password":   m.cfg.MailerPassword,
		"from_email": m.cfg.FromEmail,
		"to_email":   mail.ToEmail,
		"subject":    mail.Subject,
		"text":       mail.Text,
		"html":       mail.HTML,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.MailerURL+"/send", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("mailer-access-key", m.cfg.MailerKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result MailResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("mailer response decode: %w", err)
	}
	return &result, nil
}
