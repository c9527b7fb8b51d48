package repository

import (
	"github.com/rafidhms/jobtrail/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) Create(app *model.Application) error {
	return r.db.Create(app).Error
}

func (r *ApplicationRepository) FindByUser(userID string) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) FindByUserPaged(userID string, offset, limit int) ([]model.Application, int64, error) {
	var total int64
	if err := r.db.Model(&model.Application{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []model.Application
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&apps).Error
	return apps, total, err
}

func (r *ApplicationRepository) FindOwned(id, userID string) (*model.Application, error) {
	var app model.Application
	err := r.db.First(&app, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateOwned applies the given column map to the record matched by
// (id, userID). Returns gorm.ErrRecordNotFound when no owned row matches,
// so cross-user ids are indistinguishable from missing ones.
func (r *ApplicationRepository) UpdateOwned(id, userID string, fields map[string]any) (*model.Application, error) {
	var app model.Application
	if err := r.db.First(&app, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(&app).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return &app, nil
}

func (r *ApplicationRepository) DeleteOwned(id, userID string) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Application{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
