package session

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nameSeparators = strings.NewReplacer(".", " ", "_", " ", "-", " ")

// TutorDisplayName uses the attendee's display name, or derives one from the
// local part of the email address.
func TutorDisplayName(a Attendee) string {
	if name := strings.TrimSpace(a.DisplayName); name != "" {
		return name
	}
	local, _, _ := strings.Cut(a.Email, "@")
	local = strings.Join(strings.Fields(nameSeparators.Replace(local)), " ")
	if local == "" {
		return a.Email
	}
	return cases.Title(language.Und).String(local)
}
