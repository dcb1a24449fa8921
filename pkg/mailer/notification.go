package mailer

import (
	"bytes"
	"strings"
	"text/template"
	"time"
)

// AuditNotification is the JSON payload queued for the audit worker after
// a user lifecycle action commits. It mirrors the audit record, not the
// aggregate; the worker only needs enough to write a readable email.
type AuditNotification struct {
	Action       string    `json:"action"`
	ActorID      int64     `json:"actor_id"`
	TargetUserID int64     `json:"target_user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	RoleNames    []string  `json:"role_names,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

var notificationTmpl = template.Must(template.New("notification").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(`User account change on the employee directory.

Action:    {{.Action}}
User:      {{.Username}} <{{.Email}}> (id {{.TargetUserID}})
{{- if .RoleNames}}
Roles:     {{join .RoleNames ", "}}
{{- end}}
Actor id:  {{.ActorID}}
When:      {{.OccurredAt.Format "2006-01-02 15:04:05 MST"}}
`))

// RenderNotification returns the subject and plain-text body for an
// admin notification email.
func RenderNotification(n AuditNotification) (subject, text string, err error) {
	subject = "[user-admin] " + n.Action + ": " + n.Username
	var buf bytes.Buffer
	if err := notificationTmpl.Execute(&buf, n); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}
