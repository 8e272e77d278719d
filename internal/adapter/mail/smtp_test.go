package mail

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"estate-transfer/config"
	"estate-transfer/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMessage = ports.Message{
	To:      "alice@example.com",
	Subject: "Block Estate - Seller OTP for Property prop-1",
	Text:    "OTP: 042917",
	HTML:    "<p>042917</p>",
}

func TestBuildMessage(t *testing.T) {
	msg, err := buildMessage("no-reply@blockestate.local", testMessage)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "alice@example.com")
	assert.Contains(t, raw, "no-reply@blockestate.local")
	assert.Contains(t, raw, "Block Estate - Seller OTP for Property prop-1")
	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "text/html")
	assert.Contains(t, raw, "042917")
}

func TestBuildMessage_InvalidAddresses(t *testing.T) {
	_, err := buildMessage("not an address", testMessage)
	assert.Error(t, err)

	bad := testMessage
	bad.To = "@@"
	_, err = buildMessage("no-reply@blockestate.local", bad)
	assert.Error(t, err)
}

func TestNewSMTPMailer_RequiresHost(t *testing.T) {
	_, err := NewSMTPMailer(config.SMTPConfig{Port: 587})
	assert.Error(t, err)
}

func TestSMTPMailer_SendUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	m, err := NewSMTPMailer(config.SMTPConfig{
		Host:     "127.0.0.1",
		Port:     port,
		Username: "mailer",
		Password: "secret",
		From:     "no-reply@blockestate.local",
		Timeout:  time.Second,
	})
	require.NoError(t, err)

	assert.Error(t, m.Send(context.Background(), testMessage))
}
