package workflow

import (
	"context"

	"github.com/MKhiriev/patient-vault-example/internal/service"
	"github.com/MKhiriev/patient-vault-example/models"
)

func (r *Runner) authenticate(ctx context.Context, state *State, params Params) (any, error) {
	resp, session, err := r.services.AuthService.Authenticate(ctx, params.Credentials)
	if err != nil {
		return nil, err
	}

	state.Session = session
	return resp, nil
}

func (r *Runner) retrievePatients(ctx context.Context, state *State, params Params) (any, error) {
	resp, err := r.services.PatientService.RetrieveList(ctx, state.Session, models.PatientRetrieveListRequest{
		Filters: params.PatientFilters.Clone(),
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// retrieveActivities returns the response even when no attachment can be
// captured. The runner prints that response before acting on the error, so
// an empty list is shown first and the step then fails with
// [service.ErrNoAttachmentAvailable]; extraction never happens ahead of
// printing.
func (r *Runner) retrieveActivities(ctx context.Context, state *State, params Params) (any, error) {
	resp, err := r.services.ActivityService.Retrieve(ctx, state.Session, models.UserActivityRetrieveRequest{
		Filters:                 params.ActivityFilters.Clone(),
		ContentFormatIdentifier: params.ContentFormat,
	})
	if err != nil {
		return nil, err
	}

	attachmentID, err := service.FirstAttachmentID(resp)
	if err != nil {
		return resp, err
	}

	state.AttachmentID = attachmentID
	return resp, nil
}

func (r *Runner) retrieveCategory(ctx context.Context, state *State, params Params) (any, error) {
	resp, err := r.services.CategoryService.Retrieve(ctx, state.Session, models.PatientCategoryRequest{
		ActivityAttachmentID: state.AttachmentID,
		IncludeSections:      params.Sections,
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
