package request

import (
	"tutor-booking/internal/domain/booking"

	"github.com/jinzhu/copier"
)

type CreateBookingRequest struct {
	FirstName       string `json:"firstName" binding:"required,max=100"`
	LastName        string `json:"lastName" binding:"required,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required,min=6,max=32"`
	Subject         string `json:"subject" binding:"required,max=120"`
	SpecificTopic   string `json:"specificTopic,omitempty" binding:"max=500"`
	ClassFormat     string `json:"classFormat" binding:"required,classformat" copier:"Format"`
	ClassSize       string `json:"classSize" binding:"required,classsize"`
	Duration        string `json:"duration" binding:"required,classduration"`
	PreferredDate   string `json:"preferredDate" binding:"required,datetime=2006-01-02"`
	PreferredTime   string `json:"preferredTime" binding:"required,datetime=15:04"`
	TutorPreference string `json:"tutorPreference,omitempty" binding:"max=200"`
	ReferralSource  string `json:"referralSource,omitempty" binding:"max=200"`
	University      string `json:"university,omitempty" binding:"max=64" copier:"Organization"`
	Newsletter      bool   `json:"newsletter"`
	PriceCents      *int64 `json:"priceCents,omitempty" binding:"omitempty,gt=0"`
}

func (r CreateBookingRequest) ToDraft() (booking.Draft, error) {
	var d booking.Draft
	if err := copier.Copy(&d, &r); err != nil {
		return booking.Draft{}, err
	}
	return d, nil
}

type PriceQuery struct {
	ClassSize string `form:"classSize"`
	Duration  string `form:"duration"`
}
