package usecase

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rafidhms/jobtrail/internal/dto"
	"github.com/rafidhms/jobtrail/internal/model"
	"github.com/rafidhms/jobtrail/internal/response"
	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(app *model.Application) error
	FindByUser(userID string) ([]model.Application, error)
	FindByUserPaged(userID string, offset, limit int) ([]model.Application, int64, error)
	FindOwned(id, userID string) (*model.Application, error)
	UpdateOwned(id, userID string, fields map[string]any) (*model.Application, error)
	DeleteOwned(id, userID string) error
}

type ApplicationUsecase struct {
	apps ApplicationRepository
}

func NewApplicationUsecase(apps ApplicationRepository) *ApplicationUsecase {
	return &ApplicationUsecase{apps: apps}
}

// Create persists a new application. Status always starts at "saved"
// regardless of what the caller sends.
func (uc *ApplicationUsecase) Create(userID string, req dto.CreateApplicationRequest) (*model.Application, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	app := &model.Application{
		UserID:          uid,
		JobTitle:        req.JobTitle,
		Company:         req.Company,
		JobDescription:  req.JobDescription,
		OriginalResume:  req.OriginalResume,
		OptimizedResume: req.OptimizedResume,
		CoverLetter:     req.CoverLetter,
		MatchScore:      req.MatchScore,
		Status:          model.StatusSaved,
	}
	if err := uc.apps.Create(app); err != nil {
		return nil, err
	}
	return app, nil
}

func (uc *ApplicationUsecase) List(userID string) ([]model.Application, error) {
	return uc.apps.FindByUser(userID)
}

func (uc *ApplicationUsecase) ListPaged(userID string, page, limit int) ([]model.Application, *response.Pagination, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	apps, total, err := uc.apps.FindByUserPaged(userID, (page-1)*limit, limit)
	if err != nil {
		return nil, nil, err
	}
	return apps, response.NewPagination(page, limit, total), nil
}

// Update applies only the fields present in the request body to the record
// matched by (id, userID). A cross-user id behaves exactly like a missing one.
func (uc *ApplicationUsecase) Update(userID, id string, req dto.UpdateApplicationRequest) (*model.Application, error) {
	fields := map[string]any{}
	if req.JobTitle != nil {
		fields["job_title"] = *req.JobTitle
	}
	if req.Company != nil {
		fields["company"] = *req.Company
	}
	if req.JobDescription != nil {
		fields["job_description"] = *req.JobDescription
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	app, err := uc.apps.UpdateOwned(id, userID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

func (uc *ApplicationUsecase) Delete(userID, id string) error {
	err := uc.apps.DeleteOwned(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrApplicationNotFound
	}
	return err
}
