package models

import "github.com/google/uuid"

// PatientRetrieveListRequest asks for the patients (records) visible to the
// authenticated user.
type PatientRetrieveListRequest struct {
	// Filters narrows the result, e.g. {"FirstName": "Vanessa"}.
	// Leave nil to retrieve all records.
	Filters Filters `json:"filters,omitempty"`
}

// Patient is a single patient record.
type Patient struct {
	ID                  uuid.UUID `json:"id"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	BirthDate           string    `json:"birth_date,omitempty"`
	Gender              string    `json:"gender,omitempty"`
	MedicalRecordNumber string    `json:"medical_record_number,omitempty"`
}

// PatientRetrieveListResponse is the result of a patient list request.
type PatientRetrieveListResponse struct {
	Patients []Patient `json:"patients"`
	Total    int       `json:"total"`
}
