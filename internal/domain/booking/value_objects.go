package booking

import (
	"fmt"
	"strings"
	"unicode"
)

type ClassSize string

const (
	SizeSolo    ClassSize = "Solo"
	SizeDuo     ClassSize = "Duo"
	SizeTrio    ClassSize = "Trio"
	SizeQuadrio ClassSize = "Quadrio"
)

var headcounts = map[ClassSize]int{
	SizeSolo:    1,
	SizeDuo:     2,
	SizeTrio:    3,
	SizeQuadrio: 4,
}

func (s ClassSize) String() string {
	return string(s)
}

func (s ClassSize) IsValid() bool {
	_, ok := headcounts[s]
	return ok
}

// Headcount falls back to a single student for unknown sizes.
func (s ClassSize) Headcount() int {
	if n, ok := headcounts[s]; ok {
		return n
	}
	return 1
}

func ClassSizes() []ClassSize {
	return []ClassSize{SizeSolo, SizeDuo, SizeTrio, SizeQuadrio}
}

type Duration string

const (
	DurationOneHour      Duration = "1 hour"
	DurationNinetyMin    Duration = "1.5 hours"
	DurationTwoHours     Duration = "2 hours"
	DurationTwoHalfHours Duration = "2.5 hours"
)

var durationMinutes = map[Duration]int{
	DurationOneHour:      60,
	DurationNinetyMin:    90,
	DurationTwoHours:     120,
	DurationTwoHalfHours: 150,
}

func (d Duration) String() string {
	return string(d)
}

func (d Duration) IsValid() bool {
	_, ok := durationMinutes[d]
	return ok
}

// Minutes falls back to one hour for unknown durations.
func (d Duration) Minutes() int {
	if m, ok := durationMinutes[d]; ok {
		return m
	}
	return 60
}

func Durations() []Duration {
	return []Duration{DurationOneHour, DurationNinetyMin, DurationTwoHours, DurationTwoHalfHours}
}

type Format string

const (
	FormatInPerson Format = "In-person"
	FormatOnline   Format = "Online"
)

func (f Format) String() string {
	return string(f)
}

func (f Format) IsValid() bool {
	return f == FormatInPerson || f == FormatOnline
}

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
)

func (s Status) String() string {
	return string(s)
}

const NoPreference = "No preference"

type Student struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func NewStudent(firstName, lastName, email, phone string) (Student, error) {
	s := Student{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Phone:     NormalizePhone(phone),
	}
	if s.FirstName == "" || s.LastName == "" {
		return Student{}, ErrInvalidStudentName
	}
	if at := strings.Index(s.Email, "@"); at <= 0 || at == len(s.Email)-1 {
		return Student{}, ErrInvalidEmail
	}
	if s.Phone == "" {
		return Student{}, ErrInvalidPhone
	}
	return s, nil
}

func (s Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// NormalizePhone keeps digits only.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Money is an amount in euro cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Euros() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

// String renders the amount with two decimals, e.g. "125.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
