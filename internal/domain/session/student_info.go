package session

import (
	"bufio"
	"strings"
)

type InfoSource int

const (
	SourceUnrecoverable InfoSource = iota
	SourceStructured
	SourceLegacyParsed
)

func (s InfoSource) String() string {
	switch s {
	case SourceStructured:
		return "structured"
	case SourceLegacyParsed:
		return "legacy"
	default:
		return "unrecoverable"
	}
}

// StudentInfo is what can be recovered about the student behind an event.
// Source tells which representation it came from.
type StudentInfo struct {
	Source     InfoSource
	Name       string
	Email      string
	Phone      string
	Format     string
	Size       string
	Duration   string
	Topic      string
	Subject    string
	BookingRef string
}

func (s StudentInfo) HasContact() bool {
	return s.Email != ""
}

// ResolveStudentInfo prefers private fields, then the older "Label: value"
// description lines, and reports unrecoverable when neither names the student.
func ResolveStudentInfo(e Event) StudentInfo {
	legacy := parseDescription(e.Description)

	if name, email := e.Private[KeyStudentName], e.Private[KeyStudentEmail]; name != "" || email != "" {
		info := StudentInfo{
			Source:     SourceStructured,
			Name:       name,
			Email:      email,
			Phone:      e.Private[KeyStudentPhone],
			Format:     first(e.Private[KeyFormat], legacy.Format),
			Size:       first(e.Private[KeySize], legacy.Size),
			Duration:   first(e.Private[KeyDuration], legacy.Duration),
			Topic:      first(e.Private[KeySpecificTopic], legacy.Topic),
			Subject:    e.Private[KeySubject],
			BookingRef: first(e.Private[KeyBookingRef], legacy.BookingRef),
		}
		return withTitleFallback(info, e.Title)
	}

	if legacy.Name != "" || legacy.Email != "" {
		legacy.Source = SourceLegacyParsed
		return withTitleFallback(legacy, e.Title)
	}

	legacy.Source = SourceUnrecoverable
	return withTitleFallback(legacy, e.Title)
}

var legacyLabels = map[string]func(*StudentInfo, string){
	"student":           func(s *StudentInfo, v string) { s.Name = v },
	"student name":      func(s *StudentInfo, v string) { s.Name = v },
	"email":             func(s *StudentInfo, v string) { s.Email = v },
	"student email":     func(s *StudentInfo, v string) { s.Email = v },
	"phone":             func(s *StudentInfo, v string) { s.Phone = v },
	"student phone":     func(s *StudentInfo, v string) { s.Phone = v },
	"class format":      func(s *StudentInfo, v string) { s.Format = v },
	"format":            func(s *StudentInfo, v string) { s.Format = v },
	"class size":        func(s *StudentInfo, v string) { s.Size = v },
	"duration":          func(s *StudentInfo, v string) { s.Duration = v },
	"topic":             func(s *StudentInfo, v string) { s.Topic = v },
	"specific topic":    func(s *StudentInfo, v string) { s.Topic = v },
	"booking reference": func(s *StudentInfo, v string) { s.BookingRef = v },
}

func parseDescription(desc string) StudentInfo {
	var info StudentInfo
	sc := bufio.NewScanner(strings.NewReader(desc))
	for sc.Scan() {
		label, value, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		set, known := legacyLabels[strings.ToLower(strings.TrimSpace(label))]
		if !known {
			continue
		}
		if v := strings.TrimSpace(value); v != "" {
			set(&info, v)
		}
	}
	return info
}

func withTitleFallback(info StudentInfo, title string) StudentInfo {
	parts := ParseTitle(title)
	info.Size = first(info.Size, parts.Size)
	info.Subject = first(info.Subject, parts.Subject)
	info.Name = first(info.Name, parts.StudentName)
	return info
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
