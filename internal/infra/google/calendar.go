package google

import (
	"context"
	"log/slog"
	"time"

	"tutor-booking/internal/domain/session"
	"tutor-booking/internal/infra"
	"tutor-booking/internal/usecase/shared"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
)

const calendarCollaborator = "google-calendar"

type CalendarStore struct {
	svc    *calendar.Service
	logger *slog.Logger
}

// NewCalendarStore accepts a nil service; every call then fails with a configuration error.
func NewCalendarStore(svc *calendar.Service, logger *slog.Logger) *CalendarStore {
	return &CalendarStore{svc: svc, logger: logger}
}

func (s *CalendarStore) CreateSessionEvent(ctx context.Context, cal shared.CalendarRef, d session.Draft) (session.Event, error) {
	if err := s.ready(cal); err != nil {
		return session.Event{}, err
	}
	ev := &calendar.Event{
		Summary:     d.Title,
		Description: d.Description,
		ColorId:     d.ColorID,
		Location:    d.Location,
		Start:       &calendar.EventDateTime{DateTime: d.Start.Format(time.RFC3339), TimeZone: d.TimeZone},
		End:         &calendar.EventDateTime{DateTime: d.End.Format(time.RFC3339), TimeZone: d.TimeZone},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: d.Private,
		},
		GuestsCanSeeOtherGuests: googleapi.Bool(false),
	}
	created, err := s.svc.Events.Insert(cal.ID, ev).Context(ctx).Do()
	if err != nil {
		return session.Event{}, wrapAPIErr(s.logger, calendarCollaborator, "insert event on "+cal.Name, err)
	}
	return toSessionEvent(cal.ID, created), nil
}

func (s *CalendarStore) ListUpdatedSince(ctx context.Context, cal shared.CalendarRef, since time.Time) ([]session.Event, error) {
	if err := s.ready(cal); err != nil {
		return nil, err
	}
	var out []session.Event
	err := s.svc.Events.List(cal.ID).
		UpdatedMin(since.UTC().Format(time.RFC3339)).
		SingleEvents(true).
		ShowDeleted(false).
		OrderBy("updated").
		MaxResults(250).
		Pages(ctx, func(page *calendar.Events) error {
			for _, it := range page.Items {
				if it.Status == "cancelled" {
					continue
				}
				out = append(out, toSessionEvent(cal.ID, it))
			}
			return nil
		})
	if err != nil {
		return nil, wrapAPIErr(s.logger, calendarCollaborator, "list events on "+cal.Name, err)
	}
	return out, nil
}

func (s *CalendarStore) PatchEvent(ctx context.Context, cal shared.CalendarRef, eventID string, p session.Patch) (session.Event, error) {
	if err := s.ready(cal); err != nil {
		return session.Event{}, err
	}
	patch := &calendar.Event{
		Summary:               p.Title,
		ColorId:               p.ColorID,
		GuestsCanInviteOthers: googleapi.Bool(p.GuestsCanInviteOthers),
	}
	updated, err := s.svc.Events.Patch(cal.ID, eventID, patch).Context(ctx).Do()
	if err != nil {
		return session.Event{}, wrapAPIErr(s.logger, calendarCollaborator, "patch event "+eventID, err)
	}
	return toSessionEvent(cal.ID, updated), nil
}

func (s *CalendarStore) Status() shared.CollaboratorStatus {
	return shared.CollaboratorStatus{Name: calendarCollaborator, Configured: s.svc != nil}
}

func (s *CalendarStore) ready(cal shared.CalendarRef) error {
	if s.svc == nil {
		return infra.WrapCollaboratorErr(s.logger, calendarCollaborator, infra.KindNotConfigured, "google credentials are not set", nil)
	}
	if cal.ID == "" {
		return infra.WrapCollaboratorErr(s.logger, calendarCollaborator, infra.KindNotConfigured, "no calendar id for "+cal.Name, nil)
	}
	return nil
}

func toSessionEvent(calendarID string, it *calendar.Event) session.Event {
	ev := session.Event{
		ID:          it.Id,
		CalendarID:  calendarID,
		Title:       it.Summary,
		Description: it.Description,
		ColorID:     it.ColorId,
		HTMLLink:    it.HtmlLink,
		Location:    it.Location,
		Start:       parseEventTime(it.Start),
		End:         parseEventTime(it.End),
	}
	if it.Start != nil {
		ev.TimeZone = it.Start.TimeZone
	}
	if t, err := time.Parse(time.RFC3339, it.Updated); err == nil {
		ev.Updated = t
	}
	for _, a := range it.Attendees {
		if a == nil || a.Resource {
			continue
		}
		ev.Attendees = append(ev.Attendees, session.Attendee{Email: a.Email, DisplayName: a.DisplayName})
	}
	if it.ExtendedProperties != nil {
		ev.Private = it.ExtendedProperties.Private
	}
	return ev
}

func parseEventTime(dt *calendar.EventDateTime) time.Time {
	if dt == nil {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, dt.DateTime); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", dt.Date); err == nil {
		return t
	}
	return time.Time{}
}
