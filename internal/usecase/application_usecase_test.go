package usecase

import (
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rafidhms/jobtrail/internal/dto"
	"github.com/rafidhms/jobtrail/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeAppRepo mirrors the repository contract, including the
// created_at DESC ordering of FindByUser.
type fakeAppRepo struct {
	apps []*model.Application
	now  time.Time
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{now: time.Now()}
}

func (f *fakeAppRepo) Create(app *model.Application) error {
	app.ID = uuid.New()
	f.now = f.now.Add(time.Second)
	app.CreatedAt = f.now
	f.apps = append(f.apps, app)
	return nil
}

func (f *fakeAppRepo) owned(userID string) []model.Application {
	var out []model.Application
	for _, app := range f.apps {
		if app.UserID.String() == userID {
			out = append(out, *app)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeAppRepo) FindByUser(userID string) ([]model.Application, error) {
	return f.owned(userID), nil
}

func (f *fakeAppRepo) FindByUserPaged(userID string, offset, limit int) ([]model.Application, int64, error) {
	all := f.owned(userID)
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (f *fakeAppRepo) FindOwned(id, userID string) (*model.Application, error) {
	for _, app := range f.apps {
		if app.ID.String() == id && app.UserID.String() == userID {
			return app, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAppRepo) UpdateOwned(id, userID string, fields map[string]any) (*model.Application, error) {
	app, err := f.FindOwned(id, userID)
	if err != nil {
		return nil, err
	}
	for col, val := range fields {
		s := val.(string)
		switch col {
		case "job_title":
			app.JobTitle = s
		case "company":
			app.Company = s
		case "job_description":
			app.JobDescription = s
		case "status":
			app.Status = s
		case "notes":
			app.Notes = s
		}
	}
	return app, nil
}

func (f *fakeAppRepo) DeleteOwned(id, userID string) error {
	for i, app := range f.apps {
		if app.ID.String() == id && app.UserID.String() == userID {
			f.apps = append(f.apps[:i], f.apps[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func validCreateRequest(title string) dto.CreateApplicationRequest {
	return dto.CreateApplicationRequest{
		JobTitle:       title,
		JobDescription: strings.Repeat("go backend service development ", 5),
	}
}

func TestCreateApplication(t *testing.T) {
	uc := NewApplicationUsecase(newFakeAppRepo())
	userID := uuid.NewString()

	app, err := uc.Create(userID, validCreateRequest("Engineer"))
	require.NoError(t, err)
	assert.Equal(t, model.StatusSaved, app.Status)
	assert.Equal(t, userID, app.UserID.String())
	assert.NotEqual(t, uuid.Nil, app.ID)
}

func TestListApplicationsNewestFirst(t *testing.T) {
	uc := NewApplicationUsecase(newFakeAppRepo())
	userID := uuid.NewString()

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := uc.Create(userID, validCreateRequest(title))
		require.NoError(t, err)
	}

	apps, err := uc.List(userID)
	require.NoError(t, err)
	require.Len(t, apps, 3)
	assert.Equal(t, "Third", apps[0].JobTitle)
	assert.Equal(t, "Second", apps[1].JobTitle)
	assert.Equal(t, "First", apps[2].JobTitle)
}

func TestUpdateApplication(t *testing.T) {
	t.Run("status-only update leaves other fields untouched", func(t *testing.T) {
		uc := NewApplicationUsecase(newFakeAppRepo())
		userID := uuid.NewString()

		created, err := uc.Create(userID, dto.CreateApplicationRequest{
			JobTitle:       "Engineer",
			Company:        "Acme",
			JobDescription: strings.Repeat("distributed systems work ", 5),
		})
		require.NoError(t, err)

		status := model.StatusInterview
		updated, err := uc.Update(userID, created.ID.String(), dto.UpdateApplicationRequest{Status: &status})
		require.NoError(t, err)

		assert.Equal(t, model.StatusInterview, updated.Status)
		assert.Equal(t, created.JobTitle, updated.JobTitle)
		assert.Equal(t, created.Company, updated.Company)
		assert.Equal(t, created.JobDescription, updated.JobDescription)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("another user's application reads as not found", func(t *testing.T) {
		uc := NewApplicationUsecase(newFakeAppRepo())
		owner := uuid.NewString()
		intruder := uuid.NewString()

		created, err := uc.Create(owner, validCreateRequest("Engineer"))
		require.NoError(t, err)

		status := model.StatusApplied
		_, err = uc.Update(intruder, created.ID.String(), dto.UpdateApplicationRequest{Status: &status})
		assert.ErrorIs(t, err, ErrApplicationNotFound)
	})
}

func TestDeleteApplication(t *testing.T) {
	uc := NewApplicationUsecase(newFakeAppRepo())
	owner := uuid.NewString()
	intruder := uuid.NewString()

	created, err := uc.Create(owner, validCreateRequest("Engineer"))
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(intruder, created.ID.String()), ErrApplicationNotFound)

	require.NoError(t, uc.Delete(owner, created.ID.String()))
	assert.ErrorIs(t, uc.Delete(owner, created.ID.String()), ErrApplicationNotFound)
}

func TestListPaged(t *testing.T) {
	uc := NewApplicationUsecase(newFakeAppRepo())
	userID := uuid.NewString()

	for i := 0; i < 5; i++ {
		_, err := uc.Create(userID, validCreateRequest("Engineer"))
		require.NoError(t, err)
	}

	apps, pagination, err := uc.ListPaged(userID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, apps, 2)
	assert.Equal(t, int64(5), pagination.TotalItems)
	assert.Equal(t, int64(3), pagination.TotalPages)
	assert.True(t, pagination.HasMore)

	apps, pagination, err = uc.ListPaged(userID, 3, 2)
	require.NoError(t, err)
	assert.Len(t, apps, 1)
	assert.False(t, pagination.HasMore)
}
