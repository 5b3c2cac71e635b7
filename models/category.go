package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Section names of a CCDA document as used by [AttachmentSection].
const (
	SectionAllergies     = "allergies"
	SectionMedications   = "medications"
	SectionProblems      = "problems"
	SectionProcedures    = "procedures"
	SectionResults       = "results"
	SectionVitalSigns    = "vital_signs"
	SectionImmunizations = "immunizations"
	SectionEncounters    = "encounters"
)

// AttachmentSection selects which CCDA sections the category endpoint returns.
type AttachmentSection struct {
	IncludeAll    bool `json:"include_all"`
	Allergies     bool `json:"allergies,omitempty"`
	Medications   bool `json:"medications,omitempty"`
	Problems      bool `json:"problems,omitempty"`
	Procedures    bool `json:"procedures,omitempty"`
	Results       bool `json:"results,omitempty"`
	VitalSigns    bool `json:"vital_signs,omitempty"`
	Immunizations bool `json:"immunizations,omitempty"`
	Encounters    bool `json:"encounters,omitempty"`
}

// Includes reports whether the named section is selected.
func (s AttachmentSection) Includes(section string) bool {
	if s.IncludeAll {
		return true
	}

	switch section {
	case SectionAllergies:
		return s.Allergies
	case SectionMedications:
		return s.Medications
	case SectionProblems:
		return s.Problems
	case SectionProcedures:
		return s.Procedures
	case SectionResults:
		return s.Results
	case SectionVitalSigns:
		return s.VitalSigns
	case SectionImmunizations:
		return s.Immunizations
	case SectionEncounters:
		return s.Encounters
	default:
		return false
	}
}

// ParseAttachmentSection builds a selection from section names. No names
// selects every section.
func ParseAttachmentSection(names []string) (AttachmentSection, error) {
	if len(names) == 0 {
		return AttachmentSection{IncludeAll: true}, nil
	}

	var s AttachmentSection
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "all":
			s.IncludeAll = true
		case SectionAllergies:
			s.Allergies = true
		case SectionMedications:
			s.Medications = true
		case SectionProblems:
			s.Problems = true
		case SectionProcedures:
			s.Procedures = true
		case SectionResults:
			s.Results = true
		case SectionVitalSigns:
			s.VitalSigns = true
		case SectionImmunizations:
			s.Immunizations = true
		case SectionEncounters:
			s.Encounters = true
		default:
			return AttachmentSection{}, fmt.Errorf("unknown section %q", name)
		}
	}
	return s, nil
}

// PatientCategoryRequest asks for the structured CCDA content of one
// activity attachment.
type PatientCategoryRequest struct {
	ActivityAttachmentID uuid.UUID         `json:"activity_attachment_id"`
	IncludeSections      AttachmentSection `json:"include_sections"`
}

// CategoryEntry is a single coded line of a CCDA section.
type CategoryEntry struct {
	Code       string `json:"code,omitempty"`
	CodeSystem string `json:"code_system,omitempty"`
	Display    string `json:"display"`
	Status     string `json:"status,omitempty"`
	Date       string `json:"date,omitempty"`
	Value      string `json:"value,omitempty"`
}

// PatientCategoryResponse is the structured clinical document (CCDA)
// extracted from an attachment. Sections that were not requested are omitted.
type PatientCategoryResponse struct {
	ActivityAttachmentID uuid.UUID       `json:"activity_attachment_id"`
	DocumentTitle        string          `json:"document_title"`
	Patient              *Patient        `json:"patient,omitempty"`
	Allergies            []CategoryEntry `json:"allergies,omitempty"`
	Medications          []CategoryEntry `json:"medications,omitempty"`
	Problems             []CategoryEntry `json:"problems,omitempty"`
	Procedures           []CategoryEntry `json:"procedures,omitempty"`
	Results              []CategoryEntry `json:"results,omitempty"`
	VitalSigns           []CategoryEntry `json:"vital_signs,omitempty"`
	Immunizations        []CategoryEntry `json:"immunizations,omitempty"`
	Encounters           []CategoryEntry `json:"encounters,omitempty"`
}
