package notify

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"
)

//go:embed templates/*
var templateFS embed.FS

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html"))
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt"))
)

type inviteData struct {
	InviterName string
	Role        string
	Link        string
	ExpiresIn   int
	Year        int
}

type welcomeData struct {
	Name      string
	LoginLink string
	Year      int
}

// InviteEmail renders the invitation email. inviterName may be empty.
func InviteEmail(to, inviterName, role, link string, ttl time.Duration) Message {
	data := inviteData{
		InviterName: inviterName,
		Role:        role,
		Link:        link,
		ExpiresIn:   int(ttl.Hours()),
		Year:        time.Now().Year(),
	}
	return Message{
		Kind:    KindInvite,
		To:      to,
		Subject: fmt.Sprintf("You're invited to join NexusAdmin as %s", role),
		HTML:    renderHTML("invite.html", data),
		Text:    renderText("invite.txt", data),
	}
}

// WelcomeEmail renders the email sent after a successful registration.
func WelcomeEmail(to, name, loginLink string) Message {
	data := welcomeData{Name: name, LoginLink: loginLink, Year: time.Now().Year()}
	return Message{
		Kind:    KindWelcome,
		To:      to,
		Subject: "Welcome to NexusAdmin!",
		HTML:    renderHTML("welcome.html", data),
		Text:    renderText("welcome.txt", data),
	}
}

// The templates are embedded and parsed at init, so execution only fails
// on a programming error.
func renderHTML(name string, data any) string {
	var buf bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		panic(fmt.Sprintf("notify: render %s: %v", name, err))
	}
	return buf.String()
}

func renderText(name string, data any) string {
	var buf bytes.Buffer
	if err := textTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		panic(fmt.Sprintf("notify: render %s: %v", name, err))
	}
	return strings.TrimSpace(buf.String()) + "\n"
}
