package directory

import (
	"os"
	"sort"
	"strings"

	"tutor-booking/internal/pkg/errs"
	"tutor-booking/internal/usecase/shared"

	"gopkg.in/yaml.v3"
)

type calendarEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type file struct {
	Calendars struct {
		Default  calendarEntry            `yaml:"default"`
		Subjects map[string]calendarEntry `yaml:"subjects"`
	} `yaml:"calendars"`
	// university -> subject -> tutor emails
	Universities map[string]map[string][]string `yaml:"universities"`
}

// Directory routes subjects to calendars and lists tutors per university and subject.
// Lookups are case-insensitive.
type Directory struct {
	fallback  shared.CalendarRef
	calendars map[string]shared.CalendarRef
	tutors    map[string]map[string][]string
}

// Load reads the YAML directory at path. A missing file yields an empty
// directory that routes everything to defaultCalendarID.
func Load(path, defaultCalendarID string) (*Directory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Parse(nil, defaultCalendarID)
		}
		return nil, errs.Wrapf(err, "read tutor directory %s", path)
	}
	return Parse(raw, defaultCalendarID)
}

func Parse(raw []byte, defaultCalendarID string) (*Directory, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "parse tutor directory"), errs.ErrConfiguration)
	}

	d := &Directory{
		calendars: make(map[string]shared.CalendarRef),
		tutors:    make(map[string]map[string][]string),
	}

	d.fallback = shared.CalendarRef{ID: f.Calendars.Default.ID, Name: f.Calendars.Default.Name}
	if defaultCalendarID != "" {
		d.fallback.ID = defaultCalendarID
	}
	if d.fallback.Name == "" {
		d.fallback.Name = "Default"
	}

	for subject, c := range f.Calendars.Subjects {
		if c.ID == "" {
			continue
		}
		name := c.Name
		if name == "" {
			name = subject
		}
		d.calendars[key(subject)] = shared.CalendarRef{ID: c.ID, Name: name}
	}

	for uni, subjects := range f.Universities {
		bySubject := make(map[string][]string, len(subjects))
		for subject, emails := range subjects {
			bySubject[key(subject)] = normalizeEmails(emails)
		}
		d.tutors[key(uni)] = bySubject
	}
	return d, nil
}

func (d *Directory) CalendarFor(subject string) shared.CalendarRef {
	if c, ok := d.calendars[key(subject)]; ok {
		return c
	}
	return d.fallback
}

// Calendars lists every distinct calendar, the fallback first.
func (d *Directory) Calendars() []shared.CalendarRef {
	seen := make(map[string]bool)
	var out []shared.CalendarRef
	if d.fallback.ID != "" {
		out = append(out, d.fallback)
		seen[d.fallback.ID] = true
	}
	rest := make([]shared.CalendarRef, 0, len(d.calendars))
	for _, c := range d.calendars {
		if !seen[c.ID] {
			seen[c.ID] = true
			rest = append(rest, c)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Name < rest[j].Name })
	return append(out, rest...)
}

func (d *Directory) TutorEmails(organization, subject string) []string {
	return d.tutors[key(organization)][key(subject)]
}

func (d *Directory) Status() shared.CollaboratorStatus {
	return shared.CollaboratorStatus{Name: "directory", Configured: len(d.Calendars()) > 0}
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeEmails(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, e := range in {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
