package fakevault

import (
	"encoding/json"
	"fmt"
	"html"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/patient-vault-example/models"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Vault answers queries over a [Dataset]. It never mutates the data set, so
// it is safe for concurrent use.
type Vault struct {
	data Dataset
}

func NewVault(data Dataset) *Vault {
	return &Vault{data: data}
}

// Authenticate returns the account matching the credential pair.
func (v *Vault) Authenticate(username, password string) (Account, error) {
	for _, acc := range v.data.Accounts {
		if acc.Username == username && acc.Password == password {
			return acc, nil
		}
	}
	return Account{}, ErrInvalidCredentials
}

// Patients returns the patients matching filters. Blank filter values and
// unknown keys do not constrain the result. Matching is case-insensitive.
func (v *Vault) Patients(filters models.Filters) []models.Patient {
	active := filters.Active()

	out := make([]models.Patient, 0, len(v.data.Patients))
	for _, p := range v.data.Patients {
		if patientMatches(p, active) {
			out = append(out, p)
		}
	}
	return out
}

func patientMatches(p models.Patient, filters models.Filters) bool {
	for key, want := range filters {
		var got string
		switch strings.ToLower(key) {
		case "firstname":
			got = p.FirstName
		case "lastname":
			got = p.LastName
		case "gender":
			got = p.Gender
		case "birthdate":
			got = p.BirthDate
		case "medicalrecordnumber":
			got = p.MedicalRecordNumber
		case "patientid":
			got = p.ID.String()
		default:
			continue
		}
		if !strings.EqualFold(got, strings.TrimSpace(want)) {
			return false
		}
	}
	return true
}

type activityQuery struct {
	patientID uuid.UUID
	from      time.Time
	to        time.Time
	year      int
}

func parseActivityQuery(filters models.Filters) (activityQuery, error) {
	var q activityQuery
	for key, raw := range filters.Active() {
		raw = strings.TrimSpace(raw)
		var err error
		switch strings.ToLower(key) {
		case "patientid":
			q.patientID, err = uuid.Parse(raw)
		case "datefrom":
			q.from, err = time.Parse(dateLayout, raw)
		case "dateto":
			q.to, err = time.Parse(dateLayout, raw)
			q.to = q.to.AddDate(0, 0, 1)
		case "year":
			q.year, err = strconv.Atoi(raw)
		}
		if err != nil {
			return activityQuery{}, fmt.Errorf("%w: %s=%q", ErrInvalidFilter, key, raw)
		}
	}
	return q, nil
}

func (q activityQuery) matches(a ActivityRecord) bool {
	if q.patientID != uuid.Nil && a.PatientID != q.patientID {
		return false
	}
	if !q.from.IsZero() && a.Date.Before(q.from) {
		return false
	}
	if !q.to.IsZero() && !a.Date.Before(q.to) {
		return false
	}
	if q.year != 0 && a.Date.Year() != q.year {
		return false
	}
	return true
}

// Activities returns the activities of ownerID matching filters, newest
// first, with content rendered in format. DateTo is inclusive.
func (v *Vault) Activities(ownerID int64, filters models.Filters, format models.ContentFormat) ([]models.Activity, error) {
	q, err := parseActivityQuery(filters)
	if err != nil {
		return nil, err
	}

	var records []ActivityRecord
	for _, a := range v.data.Activities {
		if a.OwnerID == ownerID && q.matches(a) {
			records = append(records, a)
		}
	}
	slices.SortStableFunc(records, func(a, b ActivityRecord) int {
		return b.Date.Compare(a.Date)
	})

	out := make([]models.Activity, 0, len(records))
	for _, a := range records {
		content, err := renderContent(a, format)
		if err != nil {
			return nil, err
		}
		out = append(out, models.Activity{
			ID:            a.ID,
			PatientID:     a.PatientID,
			Title:         a.Title,
			Date:          a.Date,
			Content:       content,
			AttachmentIDs: slices.Clone(a.AttachmentIDs),
		})
	}
	return out, nil
}

func renderContent(a ActivityRecord, format models.ContentFormat) (string, error) {
	switch format.OrDefault() {
	case models.ContentFormatJSON:
		data, err := json.Marshal(struct {
			Summary  string `json:"summary"`
			Provider string `json:"provider"`
		}{a.Summary, a.Provider})
		if err != nil {
			return "", fmt.Errorf("error rendering activity content: %w", err)
		}
		return string(data), nil
	default:
		return fmt.Sprintf("<h1>%s</h1><p>%s</p><p>Provider: %s</p>",
			html.EscapeString(a.Title), html.EscapeString(a.Summary), html.EscapeString(a.Provider)), nil
	}
}

// Category returns the sections of attachmentID selected by sections. The
// attachment must belong to one of ownerID's activities.
func (v *Vault) Category(ownerID int64, attachmentID uuid.UUID, sections models.AttachmentSection) (models.PatientCategoryResponse, error) {
	if !v.ownsAttachment(ownerID, attachmentID) {
		return models.PatientCategoryResponse{}, ErrAttachmentNotFound
	}

	doc, ok := v.data.Documents[attachmentID]
	if !ok {
		return models.PatientCategoryResponse{}, ErrAttachmentNotFound
	}

	out := models.PatientCategoryResponse{
		ActivityAttachmentID: doc.ActivityAttachmentID,
		DocumentTitle:        doc.DocumentTitle,
		Patient:              doc.Patient,
	}
	pick := func(name string, entries []models.CategoryEntry) []models.CategoryEntry {
		if !sections.Includes(name) {
			return nil
		}
		return slices.Clone(entries)
	}
	out.Allergies = pick(models.SectionAllergies, doc.Allergies)
	out.Medications = pick(models.SectionMedications, doc.Medications)
	out.Problems = pick(models.SectionProblems, doc.Problems)
	out.Procedures = pick(models.SectionProcedures, doc.Procedures)
	out.Results = pick(models.SectionResults, doc.Results)
	out.VitalSigns = pick(models.SectionVitalSigns, doc.VitalSigns)
	out.Immunizations = pick(models.SectionImmunizations, doc.Immunizations)
	out.Encounters = pick(models.SectionEncounters, doc.Encounters)

	return out, nil
}

func (v *Vault) ownsAttachment(ownerID int64, attachmentID uuid.UUID) bool {
	for _, a := range v.data.Activities {
		if a.OwnerID == ownerID && slices.Contains(a.AttachmentIDs, attachmentID) {
			return true
		}
	}
	return false
}
