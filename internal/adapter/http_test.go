// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/patient-vault-example/internal/config"
	"github.com/MKhiriev/patient-vault-example/internal/logger"
	"github.com/MKhiriev/patient-vault-example/internal/utils"
	"github.com/MKhiriev/patient-vault-example/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSession = models.Session{ID: "session-123", Culture: "fr"}

func newTestAdapter(t *testing.T, serverURL string) *httpPatientVaultAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{APIRootURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPPatientVaultAdapter(adapterCfg, "en", logger.Nop())
	require.NoError(t, err)
	return a.(*httpPatientVaultAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPPatientVaultAdapter ───────────────────────────────────────────────

func TestNewHTTPPatientVaultAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPPatientVaultAdapter(config.ClientAdapter{APIRootURL: "  "}, "en", logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://patientvault.com/patientvaultapi/", "https://patientvault.com/patientvaultapi"},
		{"patientvault.com/patientvaultapi", "https://patientvault.com/patientvaultapi"},
		{"http://localhost:8080", "http://localhost:8080"},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthenticate_Success(t *testing.T) {
	want := models.UserAuthenticationResponse{SessionID: "session-123", UserID: 7, Username: "vanessa"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, RouteAuthenticate, r.URL.Path)
		assert.Equal(t, "en", r.Header.Get(HeaderAcceptLanguage))
		assert.NotEmpty(t, r.Header.Get(HeaderRequestID))
		assert.Empty(t, r.Header.Get(HeaderAuthorization))

		var body models.UserAuthenticationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.UserAuthenticationRequest{Username: "vanessa", Password: "secret"}, body)

		writeJSON(t, w, want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Authenticate(context.Background(), models.UserAuthenticationRequest{Username: "vanessa", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAuthenticate_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid username/password"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Authenticate(context.Background(), models.UserAuthenticationRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid username/password")
}

func TestAuthenticate_EmptySessionID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.UserAuthenticationResponse{UserID: 7})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Authenticate(context.Background(), models.UserAuthenticationRequest{Username: "u", Password: "p"})

	assert.ErrorIs(t, err, ErrEmptySession)
}

// ── RetrievePatientList ──────────────────────────────────────────────────────

func TestRetrievePatientList_Success(t *testing.T) {
	want := models.PatientRetrieveListResponse{
		Patients: []models.Patient{{ID: uuid.New(), FirstName: "Vanessa", LastName: "Doe"}},
		Total:    1,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, RoutePatientList, r.URL.Path)
		assert.Equal(t, "Session session-123", r.Header.Get(HeaderAuthorization))
		assert.Equal(t, "fr", r.Header.Get(HeaderAcceptLanguage))

		var body models.PatientRetrieveListRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.Filters{"FirstName": "Vanessa", "LastName": ""}, body.Filters)

		writeJSON(t, w, want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.RetrievePatientList(context.Background(), testSession, models.PatientRetrieveListRequest{
		Filters: models.Filters{"FirstName": "Vanessa", "LastName": ""},
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRetrievePatientList_EmptySession(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")
	_, err := a.RetrievePatientList(context.Background(), models.Session{}, models.PatientRetrieveListRequest{})

	assert.ErrorIs(t, err, ErrEmptySession)
}

func TestRetrievePatientList_FallsBackToAdapterCulture(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en", r.Header.Get(HeaderAcceptLanguage))
		writeJSON(t, w, models.PatientRetrieveListResponse{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RetrievePatientList(context.Background(), models.Session{ID: "s"}, models.PatientRetrieveListRequest{})
	require.NoError(t, err)
}

// ── RetrieveUserActivities ───────────────────────────────────────────────────

func TestRetrieveUserActivities_Success(t *testing.T) {
	attachmentID := uuid.New()
	want := models.UserActivityRetrieveResponse{
		Activities: []models.Activity{{ID: uuid.New(), Title: "Visit", AttachmentIDs: []uuid.UUID{attachmentID}}},
		Total:      1,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, RouteUserActivities, r.URL.Path)

		var body models.UserActivityRetrieveRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.ContentFormatJSON, body.ContentFormatIdentifier)

		writeJSON(t, w, want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.RetrieveUserActivities(context.Background(), testSession, models.UserActivityRetrieveRequest{
		ContentFormatIdentifier: models.ContentFormatJSON,
	})

	require.NoError(t, err)
	id, ok := got.FirstAttachmentID()
	require.True(t, ok)
	assert.Equal(t, attachmentID, id)
}

func TestRetrieveUserActivities_SessionExpiredOnServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RetrieveUserActivities(context.Background(), testSession, models.UserActivityRetrieveRequest{})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── RetrievePatientCategory ──────────────────────────────────────────────────

func TestRetrievePatientCategory_Success(t *testing.T) {
	attachmentID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, RoutePatientCategory, r.URL.Path)

		var body models.PatientCategoryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, attachmentID, body.ActivityAttachmentID)
		assert.True(t, body.IncludeSections.IncludeAll)

		writeJSON(t, w, models.PatientCategoryResponse{
			ActivityAttachmentID: attachmentID,
			DocumentTitle:        "Continuity of Care Document",
			Allergies:            []models.CategoryEntry{{Display: "Penicillin"}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.RetrievePatientCategory(context.Background(), testSession, models.PatientCategoryRequest{
		ActivityAttachmentID: attachmentID,
		IncludeSections:      models.AttachmentSection{IncludeAll: true},
	})

	require.NoError(t, err)
	assert.Equal(t, attachmentID, got.ActivityAttachmentID)
	require.Len(t, got.Allergies, 1)
	assert.Equal(t, "Penicillin", got.Allergies[0].Display)
}

func TestRetrievePatientCategory_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("attachment not found"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RetrievePatientCategory(context.Background(), testSession, models.PatientCategoryRequest{ActivityAttachmentID: uuid.New()})

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── mapHTTPError ─────────────────────────────────────────────────────────────

func TestMapHTTPError_JSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, "session is expired", http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RetrievePatientList(context.Background(), testSession, models.PatientRetrieveListRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, strings.HasSuffix(err.Error(), ": session is expired"), err.Error())
}

func TestMapHTTPError_StatusTable(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.RetrievePatientList(context.Background(), testSession, models.PatientRetrieveListRequest{})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRequest_HonoursContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RetrievePatientList(ctx, testSession, models.PatientRetrieveListRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}
