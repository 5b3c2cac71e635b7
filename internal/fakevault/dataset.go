// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakevault

import (
	"time"

	"github.com/MKhiriev/patient-vault-example/models"
	"github.com/google/uuid"
)

// seedNamespace derives stable identifiers so the seeded data is the same on
// every start.
var seedNamespace = uuid.MustParse("5b0f7c1e-2a4d-4e8b-9c61-0d3f8a7e2b19")

func seedID(name string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(name))
}

// Account is a user that can sign in.
type Account struct {
	UserID   int64
	Username string
	Password string
	FullName string
}

// ActivityRecord is a stored activity. Content is rendered per request in
// the requested format.
type ActivityRecord struct {
	ID            uuid.UUID
	OwnerID       int64
	PatientID     uuid.UUID
	Title         string
	Date          time.Time
	Summary       string
	Provider      string
	AttachmentIDs []uuid.UUID
}

// Dataset is the full content served by the fake API.
type Dataset struct {
	Accounts   []Account
	Patients   []models.Patient
	Activities []ActivityRecord
	Documents  map[uuid.UUID]models.PatientCategoryResponse
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 9, 0, 0, 0, time.UTC)
}

// SeedDataset returns the demo data set.
//
// Account "demo" sees three activities, the newest of which carries a lab
// report. Account "vanessa" sees a single activity without attachments.
func SeedDataset() Dataset {
	carter := models.Patient{
		ID:                  seedID("patient/vanessa-carter"),
		FirstName:           "Vanessa",
		LastName:            "Carter",
		BirthDate:           "1984-03-12",
		Gender:              "female",
		MedicalRecordNumber: "MRN-100231",
	}
	nguyen := models.Patient{
		ID:                  seedID("patient/vanessa-nguyen"),
		FirstName:           "Vanessa",
		LastName:            "Nguyen",
		BirthDate:           "1991-07-02",
		Gender:              "female",
		MedicalRecordNumber: "MRN-100472",
	}
	lee := models.Patient{
		ID:                  seedID("patient/marcus-lee"),
		FirstName:           "Marcus",
		LastName:            "Lee",
		BirthDate:           "1975-11-20",
		Gender:              "male",
		MedicalRecordNumber: "MRN-100518",
	}

	ccd := seedID("attachment/carter-ccd")
	labs := seedID("attachment/carter-labs")

	return Dataset{
		Accounts: []Account{
			{UserID: 1, Username: "demo", Password: "demo", FullName: "Dana Demo"},
			{UserID: 2, Username: "vanessa", Password: "patientvault", FullName: "Vanessa Nguyen"},
		},
		Patients: []models.Patient{carter, nguyen, lee},
		Activities: []ActivityRecord{
			{
				ID:            seedID("activity/carter-physical"),
				OwnerID:       1,
				PatientID:     carter.ID,
				Title:         "Annual physical",
				Date:          day(2025, time.February, 14),
				Summary:       "Routine examination. Blood pressure slightly elevated.",
				Provider:      "Dr. Alan Ruiz",
				AttachmentIDs: []uuid.UUID{ccd},
			},
			{
				ID:            seedID("activity/carter-lipids"),
				OwnerID:       1,
				PatientID:     carter.ID,
				Title:         "Lipid panel",
				Date:          day(2025, time.February, 20),
				Summary:       "Fasting lipid panel ordered after annual physical.",
				Provider:      "Northside Laboratory",
				AttachmentIDs: []uuid.UUID{labs, ccd},
			},
			{
				ID:        seedID("activity/lee-referral"),
				OwnerID:   1,
				PatientID: lee.ID,
				Title:     "Cardiology referral",
				Date:      day(2024, time.September, 3),
				Summary:   "Referred for exertional chest discomfort.",
				Provider:  "Dr. Alan Ruiz",
			},
			{
				ID:        seedID("activity/nguyen-telehealth"),
				OwnerID:   2,
				PatientID: nguyen.ID,
				Title:     "Telehealth consult",
				Date:      day(2025, time.May, 10),
				Summary:   "Follow-up on seasonal allergies.",
				Provider:  "Dr. Mia Chen",
			},
		},
		Documents: map[uuid.UUID]models.PatientCategoryResponse{
			ccd: {
				ActivityAttachmentID: ccd,
				DocumentTitle:        "Continuity of Care Document",
				Patient:              &carter,
				Allergies: []models.CategoryEntry{
					{Code: "7980", CodeSystem: "RxNorm", Display: "Penicillin G", Status: "active", Value: "hives"},
				},
				Medications: []models.CategoryEntry{
					{Code: "197361", CodeSystem: "RxNorm", Display: "Amlodipine 5 MG Oral Tablet", Status: "active", Date: "2025-02-14"},
				},
				Problems: []models.CategoryEntry{
					{Code: "38341003", CodeSystem: "SNOMED CT", Display: "Hypertensive disorder", Status: "active", Date: "2025-02-14"},
				},
				VitalSigns: []models.CategoryEntry{
					{Code: "8480-6", CodeSystem: "LOINC", Display: "Systolic blood pressure", Date: "2025-02-14", Value: "142 mm[Hg]"},
					{Code: "8462-4", CodeSystem: "LOINC", Display: "Diastolic blood pressure", Date: "2025-02-14", Value: "91 mm[Hg]"},
				},
				Immunizations: []models.CategoryEntry{
					{Code: "141", CodeSystem: "CVX", Display: "Influenza, seasonal", Status: "completed", Date: "2024-10-01"},
				},
				Encounters: []models.CategoryEntry{
					{Code: "99396", CodeSystem: "CPT", Display: "Preventive visit, 40-64 years", Date: "2025-02-14"},
				},
			},
			labs: {
				ActivityAttachmentID: labs,
				DocumentTitle:        "Laboratory Report",
				Patient:              &carter,
				Problems: []models.CategoryEntry{
					{Code: "55822004", CodeSystem: "SNOMED CT", Display: "Hyperlipidemia", Status: "active", Date: "2025-02-20"},
				},
				Procedures: []models.CategoryEntry{
					{Code: "24331-1", CodeSystem: "LOINC", Display: "Lipid panel", Status: "completed", Date: "2025-02-20"},
				},
				Results: []models.CategoryEntry{
					{Code: "2093-3", CodeSystem: "LOINC", Display: "Cholesterol, total", Date: "2025-02-20", Value: "238 mg/dL"},
					{Code: "2085-9", CodeSystem: "LOINC", Display: "HDL cholesterol", Date: "2025-02-20", Value: "41 mg/dL"},
					{Code: "13457-7", CodeSystem: "LOINC", Display: "LDL cholesterol", Date: "2025-02-20", Value: "162 mg/dL"},
				},
			},
		},
	}
}
