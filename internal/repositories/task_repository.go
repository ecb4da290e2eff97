package repositories

import (
	"errors"

	"foodshare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("pickup task not found")

type TaskRepository interface {
	FindByID(db *gorm.DB, id string) (*models.PickupTask, error)
	Create(db *gorm.DB, task *models.PickupTask) error
	MarkCompleted(db *gorm.DB, taskID string) error
}

type TaskRepositoryImpl struct{}

func NewTaskRepository() TaskRepository {
	return &TaskRepositoryImpl{}
}

func (r *TaskRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.PickupTask, error) {
	var task models.PickupTask
	err := db.First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Create(db *gorm.DB, task *models.PickupTask) error {
	return db.Create(task).Error
}

func (r *TaskRepositoryImpl) MarkCompleted(db *gorm.DB, taskID string) error {
	result := db.Model(&models.PickupTask{}).Where("id = ?", taskID).Update("completed", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
