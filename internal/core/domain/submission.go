package domain

import (
	"errors"
	"time"
)

// Inquiry types accepted on the contact form. Each maps to a configured
// recipient address when the notification email is routed.
const (
	InquiryGeneral     = "general"
	InquirySupport     = "support"
	InquiryHR          = "hr"
	InquiryHelp        = "help"
	InquiryPartnership = "partnership"
)

// InquiryTypes lists every accepted contact inquiry type.
var InquiryTypes = []string{InquiryGeneral, InquirySupport, InquiryHR, InquiryHelp, InquiryPartnership}

// Contact lifecycle states. New submissions always start as pending.
const (
	ContactPending    = "pending"
	ContactInProgress = "in-progress"
	ContactResolved   = "resolved"
)

// ContactStatuses lists every contact lifecycle state.
var ContactStatuses = []string{ContactPending, ContactInProgress, ContactResolved}

// Career application lifecycle states. New applications always start as pending.
const (
	CareerPending     = "pending"
	CareerUnderReview = "under-review"
	CareerShortlisted = "shortlisted"
	CareerRejected    = "rejected"
	CareerHired       = "hired"
)

// CareerStatuses lists every career application lifecycle state.
var CareerStatuses = []string{CareerPending, CareerUnderReview, CareerShortlisted, CareerRejected, CareerHired}

var ErrContactNotFound = errors.New("contact not found")
var ErrCareerNotFound = errors.New("career application not found")
var ErrEmptyStatus = errors.New("status is required")

// Contact is a submission from the public contact form.
type Contact struct {
	ID      string    `json:"id" bson:"_id,omitempty"`
	Name    string    `json:"name" bson:"name"`
	Email   string    `json:"email" bson:"email"`
	Phone   string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Company string    `json:"company,omitempty" bson:"company,omitempty"`
	Message string    `json:"message" bson:"message"`
	Type    string    `json:"type" bson:"type"`
	Date    time.Time `json:"date" bson:"date"`
	Status  string    `json:"status" bson:"status"`
}

// Career is a submission from the public job-application form.
type Career struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	Email      string    `json:"email" bson:"email"`
	Phone      string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Position   string    `json:"position" bson:"position"`
	Experience string    `json:"experience" bson:"experience"`
	Message    string    `json:"message,omitempty" bson:"message,omitempty"`
	Resume     string    `json:"resume,omitempty" bson:"resume,omitempty"`
	Date       time.Time `json:"date" bson:"date"`
	Status     string    `json:"status" bson:"status"`
}
