package session

import "time"

// AssignmentNotice tells a tutor which student they just picked up.
type AssignmentNotice struct {
	TutorName  string
	TutorEmail string
	Student    StudentInfo
	Subject    string
	Start      time.Time
	End        time.Time
	HTMLLink   string
}

// StudentConfirmation tells the student who their tutor is.
type StudentConfirmation struct {
	StudentName string
	TutorName   string
	TutorEmail  string
	Subject     string
	Format      string
	Start       time.Time
}

// Opening is a newly settled session offered to every tutor of a subject.
type Opening struct {
	BookingID    string    `json:"bookingId"`
	Reference    string    `json:"bookingRef"`
	Organization string    `json:"university"`
	Subject      string    `json:"subject"`
	Topic        string    `json:"topic"`
	Size         string    `json:"size"`
	Duration     string    `json:"duration"`
	Format       string    `json:"format"`
	Start        time.Time `json:"start"`
	Price        string    `json:"price"`
	EventLink    string    `json:"eventLink,omitempty"`
}
