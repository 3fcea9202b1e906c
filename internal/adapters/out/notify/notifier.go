// Package notify renders resident and staff emails. Delivery belongs to the
// mail relay; this adapter hands the rendered message to the structured log,
// which the relay tails.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"text/template"
	"time"

	"mailroom/internal/core/ports"
)

var weekdayOrder = map[string]int{
	"monday": 0, "tuesday": 1, "wednesday": 2, "thursday": 3,
	"friday": 4, "saturday": 5, "sunday": 6,
}

var templates = template.Must(template.New("notify").Funcs(template.FuncMap{
	"hours": formatHours,
	"date":  func(t time.Time) string { return t.UTC().Format("Mon, 02 Jan 2006 15:04 MST") },
}).Parse(`
{{- define "arrived" -}}
Hi {{.ResidentName}},

A {{.Provider}} package is waiting for you at {{.MailroomName}}.
Your package number is #{{.PackageNumber}}.
{{- with hours .Hours}}

Pickup hours:
{{.}}
{{- end}}
{{- with .AdditionalText}}

{{.}}
{{- end}}
{{end -}}

{{- define "retrieved" -}}
Hi {{.ResidentName}},

Package #{{.PackageNumber}} ({{.Provider}}) was picked up from {{.MailroomName}} on {{date .OccurredAt}}.
If this was not you, contact the mailroom.
{{end -}}

{{- define "invitation" -}}
You have been invited to join the mailroom staff as {{.Role}}.

Accept invitation {{.InvitationID}} before {{date .ExpiresAt}}.
{{end -}}
`))

// Message is a rendered email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// LogNotifier implements ports.Notifier by logging rendered messages.
type LogNotifier struct {
	logger *slog.Logger
	from   string
}

func NewLogNotifier(logger *slog.Logger, from string) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "notifier"), from: from}
}

func (n *LogNotifier) PackageArrived(ctx context.Context, notice ports.PackageNotice) error {
	msg, err := render("arrived", notice.ResidentEmail,
		fmt.Sprintf("Package #%d is waiting at %s", notice.PackageNumber, notice.MailroomName), notice)
	if err != nil {
		return err
	}
	n.send(ctx, "package_arrived", msg)
	return nil
}

func (n *LogNotifier) PackageRetrieved(ctx context.Context, notice ports.PackageNotice) error {
	msg, err := render("retrieved", notice.ResidentEmail,
		fmt.Sprintf("Package #%d picked up", notice.PackageNumber), notice)
	if err != nil {
		return err
	}
	n.send(ctx, "package_retrieved", msg)
	return nil
}

func (n *LogNotifier) InvitationCreated(ctx context.Context, notice ports.InvitationNotice) error {
	msg, err := render("invitation", notice.Email, "You're invited to the mailroom", notice)
	if err != nil {
		return err
	}
	n.send(ctx, "invitation_created", msg)
	return nil
}

func (n *LogNotifier) send(ctx context.Context, kind string, msg Message) {
	n.logger.InfoContext(ctx, "email queued",
		"kind", kind,
		"from", n.from,
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
}

func render(name, to, subject string, data any) (Message, error) {
	if strings.TrimSpace(to) == "" {
		return Message{}, fmt.Errorf("%s email has no recipient", name)
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name, data); err != nil {
		return Message{}, fmt.Errorf("render %s email: %w", name, err)
	}
	return Message{To: to, Subject: subject, Body: body.String()}, nil
}

// formatHours lists opening hours Monday first, one day per line.
func formatHours(hours map[string]string) string {
	days := make([]string, 0, len(hours))
	for day := range hours {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return weekdayOrder[days[i]] < weekdayOrder[days[j]] })

	lines := make([]string, 0, len(days))
	for _, day := range days {
		lines = append(lines, fmt.Sprintf("  %s: %s", strings.ToUpper(day[:1])+day[1:], hours[day]))
	}
	return strings.Join(lines, "\n")
}

var _ ports.Notifier = (*LogNotifier)(nil)
