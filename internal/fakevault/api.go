package fakevault

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/patient-vault-example/internal/app"
	"github.com/MKhiriev/patient-vault-example/internal/logger"
	"github.com/MKhiriev/patient-vault-example/internal/utils"
	"github.com/MKhiriev/patient-vault-example/models"
	"github.com/google/uuid"
)

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UserAuthenticationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	acc, err := h.vault.Authenticate(req.Username, req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("authentication failed")
		utils.WriteError(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	culture := strings.TrimSpace(r.Header.Get("Accept-Language"))
	token, err := utils.GenerateSessionToken(TokenIssuer, acc.UserID, acc.Username, culture, h.sessionDuration, h.signKey)
	if err != nil {
		log.Err(err).Msg("creation of session token failed")
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("user_id", acc.UserID).Msg("user successfully signed in")

	h.writeJSON(w, r, models.UserAuthenticationResponse{
		SessionID: token,
		UserID:    acc.UserID,
		Username:  acc.Username,
		FullName:  acc.FullName,
	})
}

func (h *Handler) retrievePatientList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PatientRetrieveListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	patients := h.vault.Patients(req.Filters)
	h.writeJSON(w, r, models.PatientRetrieveListResponse{Patients: patients, Total: len(patients)})
}

func (h *Handler) retrieveUserActivities(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := sessionUserID(r)
	if !ok {
		utils.WriteError(w, app.MsgSessionInvalid, http.StatusUnauthorized)
		return
	}

	var req models.UserActivityRetrieveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if req.ContentFormatIdentifier != "" && !req.ContentFormatIdentifier.Valid() {
		log.Warn().Str("content_format", string(req.ContentFormatIdentifier)).Msg(app.MsgUnknownContentFormat)
		utils.WriteError(w, app.MsgUnknownContentFormat, http.StatusBadRequest)
		return
	}

	activities, err := h.vault.Activities(userID, req.Filters, req.ContentFormatIdentifier)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidFilter):
			log.Err(err).Msg("invalid activity filter")
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		default:
			log.Err(err).Msg("unexpected error retrieving activities")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, r, models.UserActivityRetrieveResponse{Activities: activities, Total: len(activities)})
}

func (h *Handler) retrievePatientCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := sessionUserID(r)
	if !ok {
		utils.WriteError(w, app.MsgSessionInvalid, http.StatusUnauthorized)
		return
	}

	var req models.PatientCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if req.ActivityAttachmentID == uuid.Nil {
		utils.WriteError(w, app.MsgNoAttachmentIDProvided, http.StatusBadRequest)
		return
	}

	category, err := h.vault.Category(userID, req.ActivityAttachmentID, req.IncludeSections)
	if err != nil {
		switch {
		case errors.Is(err, ErrAttachmentNotFound):
			log.Err(err).Stringer("attachment_id", req.ActivityAttachmentID).Send()
			utils.WriteError(w, app.MsgAttachmentNotFound, http.StatusNotFound)
		default:
			log.Err(err).Msg("unexpected error retrieving category")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, r, category)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func sessionUserID(r *http.Request) (int64, bool) {
	claims, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return 0, false
	}
	userID, err := claims.UserID()
	if err != nil {
		return 0, false
	}
	return userID, true
}
