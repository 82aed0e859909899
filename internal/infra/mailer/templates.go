package mailer

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"tutor-booking/internal/pkg/errs"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	tmplBookingConfirmation = "booking_confirmation.html"
	tmplTutorAssignment     = "tutor_assignment.html"
	tmplStudentAssignment   = "student_assignment.html"
	tmplOpening             = "opening.html"
	tmplAdminAlert          = "admin_alert.html"
)

// Renderer turns notification payloads into HTML bodies. Times are shown in loc.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer(loc *time.Location) (*Renderer, error) {
	funcs := template.FuncMap{
		"date": func(t time.Time) string { return t.In(loc).Format("Monday, 2 January 2006") },
		"time": func(t time.Time) string { return t.In(loc).Format("15:04") },
		"orDefault": func(fallback, s string) string {
			if s == "" {
				return fallback
			}
			return s
		},
	}
	tmpl, err := template.New("mail").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errs.Wrap(err, "parse mail templates")
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errs.Wrapf(err, "render %s", name)
	}
	return buf.String(), nil
}
