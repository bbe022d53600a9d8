package mail

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPSender_Send(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p", From: "no-reply@example.com"})

	var gotAddr string
	var gotTo []string
	var gotMsg string
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		return nil
	}

	require.NoError(t, s.Send(context.Background(), "alice@example.com", "Your code", "123456"))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"alice@example.com"}, gotTo)
	assert.True(t, strings.HasPrefix(gotMsg, "From: no-reply@example.com\r\n"))
	assert.Contains(t, gotMsg, "Subject: Your code\r\n")
	assert.True(t, strings.HasSuffix(gotMsg, "\r\n\r\n123456"))
}

func TestSMTPSender_WrapsErrors(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "h", Port: 25})
	relay := errors.New("relay down")
	s.send = func(string, smtp.Auth, string, []string, []byte) error { return relay }

	err := s.Send(context.Background(), "a@b.co", "s", "b")
	assert.ErrorIs(t, err, relay)
}
