package google

import (
	"context"
	"log/slog"
	"time"

	"tutor-booking/internal/domain/booking"
	"tutor-booking/internal/infra"
	"tutor-booking/internal/pkg/clock"
	"tutor-booking/internal/usecase/shared"

	"google.golang.org/api/sheets/v4"
)

const sheetsCollaborator = "google-sheets"

// LedgerHeaders are the 17 ledger columns, A through Q.
var LedgerHeaders = []any{
	"Timestamp",
	"First Name",
	"Last Name",
	"Email",
	"Phone",
	"Newsletter Signup",
	"Subject Category",
	"Specific Topic",
	"Class Format",
	"Class Size",
	"Class Duration",
	"Preferred Date",
	"Preferred Time",
	"Tutor Preference",
	"Referral Source",
	"Status",
	"Price",
}

type LedgerStore struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	clock         clock.Clock
	loc           *time.Location
	logger        *slog.Logger
}

func NewLedgerStore(svc *sheets.Service, spreadsheetID, sheetName string, clk clock.Clock, loc *time.Location, logger *slog.Logger) *LedgerStore {
	return &LedgerStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		clock:         clk,
		loc:           loc,
		logger:        logger,
	}
}

func (s *LedgerStore) AppendBooking(ctx context.Context, b *booking.Booking) (shared.LedgerRow, error) {
	if err := s.ready(); err != nil {
		return shared.LedgerRow{}, err
	}
	vr := &sheets.ValueRange{Values: [][]any{BookingRow(b, s.clock.Now(), s.loc)}}
	resp, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.sheetName+"!A:Q", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return shared.LedgerRow{}, wrapAPIErr(s.logger, sheetsCollaborator, "append booking row", err)
	}
	row := shared.LedgerRow{}
	if resp.Updates != nil {
		row.Range = resp.Updates.UpdatedRange
	}
	return row, nil
}

func (s *LedgerStore) InitializeHeaders(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: [][]any{LedgerHeaders}}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, s.sheetName+"!A1:Q1", vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return wrapAPIErr(s.logger, sheetsCollaborator, "write header row", err)
	}
	return nil
}

func (s *LedgerStore) Status() shared.CollaboratorStatus {
	return shared.CollaboratorStatus{Name: sheetsCollaborator, Configured: s.svc != nil && s.spreadsheetID != ""}
}

func (s *LedgerStore) ready() error {
	if s.svc == nil || s.spreadsheetID == "" {
		return infra.WrapCollaboratorErr(s.logger, sheetsCollaborator, infra.KindNotConfigured, "spreadsheet credentials or id are not set", nil)
	}
	return nil
}

// BookingRow renders one ledger row in column order.
func BookingRow(b *booking.Booking, now time.Time, loc *time.Location) []any {
	start := b.Start()
	if loc != nil {
		start = start.In(loc)
	}
	st := b.Student()
	return []any{
		now.UTC().Format(time.RFC3339),
		st.FirstName,
		st.LastName,
		st.Email,
		st.Phone,
		yesNo(b.Newsletter()),
		b.Subject(),
		b.SpecificTopic(),
		string(b.Format()),
		string(b.Size()),
		string(b.Duration()),
		start.Format(booking.DateLayout),
		start.Format(booking.TimeLayout),
		b.TutorPreference(),
		b.ReferralSource(),
		string(b.Status()),
		"€" + b.Price().String(),
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
