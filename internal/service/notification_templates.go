package service

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"estate-transfer/internal/core/domain"
	"estate-transfer/internal/core/ports"
)

var codeIntro = map[domain.Role]string{
	domain.RoleSeller: "Use this OTP to confirm you are initiating a transfer for the property.",
	domain.RoleBuyer:  "Use this OTP to confirm you are the buyer for the property transfer.",
}

var codeText = texttemplate.Must(texttemplate.New("code.txt").Parse(
	`{{.Intro}}

OTP: {{.Code}}

{{if .ValidFor}}This OTP is valid for {{.ValidFor}}. {{end}}If you did not request this, you can ignore this email.
- Block Estate
`))

var codeHTML = htmltemplate.Must(htmltemplate.New("code.html").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Title}}</title>
  </head>
  <body style="background:#f6f7fb;margin:0;font-family:Segoe UI,Roboto,Helvetica,Arial,sans-serif;color:#111827;">
    <div style="max-width:560px;margin:0 auto;padding:24px 16px;">
      <div style="background:#ffffff;border-radius:16px;overflow:hidden;">
        <div style="padding:20px 24px;background:linear-gradient(135deg,#7c3aed,#06b6d4);color:#ffffff;font-size:20px;font-weight:600;">Block Estate</div>
        <div style="padding:24px;">
          <h1 style="margin:0 0 8px 0;font-size:22px;">Hello {{.Name}},</h1>
          <p style="line-height:1.6;color:#374151;">{{.Intro}}</p>
          <div style="margin:18px 0;border:2px dashed #d1d5db;border-radius:12px;padding:18px;text-align:center;">
            <div style="font-size:32px;letter-spacing:6px;font-weight:700;color:#2563eb;">{{.Code}}</div>
            {{if .ValidFor}}<div style="color:#6b7280;font-size:13px;">This OTP is valid for {{.ValidFor}}</div>{{end}}
          </div>
          <p style="background:#fff7ed;border-left:4px solid #f59e0b;padding:12px 14px;color:#92400e;font-size:13px;">
            <strong>Security Notice:</strong> Never share this OTP with anyone. Block Estate will never ask for your OTP via phone or email.
          </p>
        </div>
      </div>
    </div>
  </body>
</html>
`))

type codeView struct {
	Title    string
	Name     string
	Intro    string
	Code     string
	ValidFor string
}

// RenderCodeMessage builds the email carrying a one-time code.
func RenderCodeMessage(n domain.Notification, validFor time.Duration) (ports.Message, error) {
	title := roleTitle(n.Role) + " OTP"
	view := codeView{
		Title: title,
		Name:  displayName(n),
		Intro: codeIntro[n.Role],
		Code:  n.Code,
	}
	if validFor > 0 {
		view.ValidFor = formatValidity(validFor)
	}

	var text, html bytes.Buffer
	if err := codeText.Execute(&text, view); err != nil {
		return ports.Message{}, fmt.Errorf("rendering text body: %w", err)
	}
	if err := codeHTML.Execute(&html, view); err != nil {
		return ports.Message{}, fmt.Errorf("rendering html body: %w", err)
	}

	return ports.Message{
		To:      n.To,
		Subject: fmt.Sprintf("Block Estate - %s for Property %s", title, n.PropertyID),
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}

func roleTitle(r domain.Role) string {
	if r == domain.RoleSeller {
		return "Seller"
	}
	return "Buyer"
}

func displayName(n domain.Notification) string {
	if n.Name != "" {
		return n.Name
	}
	local, _, _ := strings.Cut(n.To, "@")
	return local
}

func formatValidity(d time.Duration) string {
	if d%time.Minute == 0 {
		m := int(d / time.Minute)
		if m == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", m)
	}
	return d.String()
}
