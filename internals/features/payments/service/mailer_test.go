package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Emmynem/alphaprimeclub-api/internals/configs"
)

func mailerConfig(url string) configs.Config {
	return configs.Config{
		MailerURL:      url,
		MailerKey:      "access-key-1",
		HostType:       "GMAIL",
		SMTPHost:       "smtp.gmail.com",
		MailerUsername: "noreply@example.com",
		MailerPassword: "app-password",
		FromEmail:      "noreply@example.com",
	}
}

func TestCloudMailerSend(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("mailer-access-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"success":true,"data":{"accepted":["ada@example.com"]},"message":"Email sent"}`))
	}))
	defer server.Close()

	mailer := NewCloudMailer(mailerConfig(server.URL))
	result, err := mailer.Send(context.Background(), Mail{
		ToEmail: "ada@example.com",
		Subject: "Payment complete for Alpha Prime Club registration",
		Text:    "body",
		HTML:    "body",
	})

	require.NoError(t, err)
	assert.Equal(t, "/send", gotPath)
	assert.Equal(t, "access-key-1", gotKey)
	assert.Equal(t, "ada@example.com", gotBody["to_email"])
	assert.Equal(t, "noreply@example.com", gotBody["from_email"])
	assert.Equal(t, "smtp.gmail.com", gotBody["smtp_host"])
	assert.True(t, result.Success)
	assert.False(t, result.DataIsNull())
}

func TestCloudMailerRelayFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"data":null,"message":"Invalid access key"}`))
	}))
	defer server.Close()

	mailer := NewCloudMailer(mailerConfig(server.URL))
	result, err := mailer.Send(context.Background(), Mail{ToEmail: "ada@example.com"})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid access key", result.Message)
}

func TestCloudMailerNullData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":null,"message":"queued"}`))
	}))
	defer server.Close()

	mailer := NewCloudMailer(mailerConfig(server.URL))
	result, err := mailer.Send(context.Background(), Mail{ToEmail: "ada@example.com"})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.DataIsNull())
}

func TestCloudMailerTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	mailer := NewCloudMailer(mailerConfig(server.URL))
	_, err := mailer.Send(context.Background(), Mail{ToEmail: "ada@example.com"})

	require.Error(t, err)
}
