package models

import (
	"time"

	"github.com/google/uuid"
)

// UserActivityRetrieveRequest asks for the activities of the authenticated
// user.
type UserActivityRetrieveRequest struct {
	// Filters narrows the result. Known keys: PatientId, DateFrom, DateTo,
	// Year. Leave nil to retrieve all activities.
	Filters Filters `json:"filters,omitempty"`

	// ContentFormatIdentifier selects json or html activity content.
	// The API renders html when empty.
	ContentFormatIdentifier ContentFormat `json:"content_format_identifier,omitempty"`
}

// Activity is a clinical activity (visit, lab result, referral...) with its
// attached clinical documents.
type Activity struct {
	ID            uuid.UUID   `json:"id"`
	PatientID     uuid.UUID   `json:"patient_id"`
	Title         string      `json:"title"`
	Date          time.Time   `json:"date"`
	Content       string      `json:"content,omitempty"`
	AttachmentIDs []uuid.UUID `json:"attachment_ids"`
}

// UserActivityRetrieveResponse is the ordered list of activities returned by
// the API.
type UserActivityRetrieveResponse struct {
	Activities []Activity `json:"activities"`
	Total      int        `json:"total"`
}

// FirstAttachmentID returns the first attachment of the first activity.
// ok is false when there is no activity or the first activity has no
// attachment.
func (r UserActivityRetrieveResponse) FirstAttachmentID() (id uuid.UUID, ok bool) {
	if len(r.Activities) == 0 {
		return uuid.Nil, false
	}
	attachments := r.Activities[0].AttachmentIDs
	if len(attachments) == 0 {
		return uuid.Nil, false
	}
	return attachments[0], true
}
