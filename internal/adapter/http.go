package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/patient-vault-example/internal/config"
	"github.com/MKhiriev/patient-vault-example/internal/logger"
	"github.com/MKhiriev/patient-vault-example/internal/utils"
	"github.com/MKhiriev/patient-vault-example/models"
	"github.com/go-resty/resty/v2"
)

// API routes, relative to the API root URL.
const (
	RouteAuthenticate       = "/api/user/authentication"
	RoutePatientList        = "/api/patient/retrievelist"
	RouteUserActivities     = "/api/user/activity/retrieve"
	RoutePatientCategory    = "/api/patient/category"
	HeaderRequestID         = "X-Request-ID"
	HeaderAcceptLanguage    = "Accept-Language"
	HeaderAuthorization     = "Authorization"
	sessionAuthorizationFmt = utils.SessionScheme + " %s"
)

type httpPatientVaultAdapter struct {
	client  *utils.HTTPClient
	culture string
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPPatientVaultAdapter constructs an HTTP/JSON implementation of
// [PatientVaultAdapter]. It normalises and validates the API root URL from
// adapterCfg.APIRootURL and configures the underlying HTTP client with the
// resolved base URL, request timeout and retry count.
//
// culture is sent as Accept-Language on calls made before a session exists.
//
// Returns an error if adapterCfg.APIRootURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPPatientVaultAdapter(adapterCfg config.ClientAdapter, culture string, logger *logger.Logger) (PatientVaultAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.APIRootURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api root url: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:    baseURL,
		Timeout:    adapterCfg.RequestTimeout,
		RetryCount: adapterCfg.RetryCount,
	})

	return &httpPatientVaultAdapter{
		client:  client,
		culture: culture,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Authenticate implements [PatientVaultAdapter]. It POSTs the credential
// pair to POST /api/user/authentication and returns the decoded session
// info. Returns [ErrEmptySession] when the response carries no session ID.
func (h *httpPatientVaultAdapter) Authenticate(ctx context.Context, req models.UserAuthenticationRequest) (models.UserAuthenticationResponse, error) {
	var result models.UserAuthenticationResponse

	resp, err := h.request(ctx, h.culture).
		SetBody(req).
		SetResult(&result).
		Post(RouteAuthenticate)
	if err != nil {
		return models.UserAuthenticationResponse{}, fmt.Errorf("authenticate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserAuthenticationResponse{}, err
	}

	if strings.TrimSpace(result.SessionID) == "" {
		return models.UserAuthenticationResponse{}, fmt.Errorf("authenticate response: %w", ErrEmptySession)
	}

	return result, nil
}

// RetrievePatientList implements [PatientVaultAdapter]. It POSTs the filters
// to POST /api/patient/retrievelist.
func (h *httpPatientVaultAdapter) RetrievePatientList(ctx context.Context, session models.Session, req models.PatientRetrieveListRequest) (models.PatientRetrieveListResponse, error) {
	var result models.PatientRetrieveListResponse
	if err := h.post(ctx, session, RoutePatientList, req, &result); err != nil {
		return models.PatientRetrieveListResponse{}, fmt.Errorf("retrieve patient list request: %w", err)
	}

	return result, nil
}

// RetrieveUserActivities implements [PatientVaultAdapter]. It POSTs the
// filters and the content format to POST /api/user/activity/retrieve.
func (h *httpPatientVaultAdapter) RetrieveUserActivities(ctx context.Context, session models.Session, req models.UserActivityRetrieveRequest) (models.UserActivityRetrieveResponse, error) {
	var result models.UserActivityRetrieveResponse
	if err := h.post(ctx, session, RouteUserActivities, req, &result); err != nil {
		return models.UserActivityRetrieveResponse{}, fmt.Errorf("retrieve user activities request: %w", err)
	}

	return result, nil
}

// RetrievePatientCategory implements [PatientVaultAdapter]. It POSTs the
// attachment ID and section selection to POST /api/patient/category.
func (h *httpPatientVaultAdapter) RetrievePatientCategory(ctx context.Context, session models.Session, req models.PatientCategoryRequest) (models.PatientCategoryResponse, error) {
	var result models.PatientCategoryResponse
	if err := h.post(ctx, session, RoutePatientCategory, req, &result); err != nil {
		return models.PatientCategoryResponse{}, fmt.Errorf("retrieve patient category request: %w", err)
	}

	return result, nil
}

func (h *httpPatientVaultAdapter) post(ctx context.Context, session models.Session, route string, body, result any) error {
	req, err := h.authedRequest(ctx, session)
	if err != nil {
		return err
	}

	resp, err := req.SetBody(body).SetResult(result).Post(route)
	if err != nil {
		return err
	}

	return mapHTTPError(resp)
}

func (h *httpPatientVaultAdapter) authedRequest(ctx context.Context, session models.Session) (*resty.Request, error) {
	if session.IsZero() {
		return nil, ErrEmptySession
	}

	culture := session.Culture
	if culture == "" {
		culture = h.culture
	}

	return h.request(ctx, culture).
		SetHeader(HeaderAuthorization, fmt.Sprintf(sessionAuthorizationFmt, session.ID)), nil
}

func (h *httpPatientVaultAdapter) request(ctx context.Context, culture string) *resty.Request {
	requestID := h.ids.Generate()
	h.logger.Debug().Str("request_id", requestID).Str("culture", culture).Msg("outgoing PatientVault request")

	req := h.client.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, requestID)
	if culture != "" {
		req.SetHeader(HeaderAcceptLanguage, culture)
	}
	return req
}
