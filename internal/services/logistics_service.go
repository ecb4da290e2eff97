package services

import (
	"foodshare_backend/internal/auth"
	"foodshare_backend/internal/dto"
	"foodshare_backend/internal/models"
	"foodshare_backend/internal/repositories"
	"foodshare_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type LogisticsService interface {
	CreatePickupTask(db *gorm.DB, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	CompleteTask(db *gorm.DB, taskID string) error
}

type logisticsService struct {
	taskRepo    repositories.TaskRepository
	listingRepo repositories.ListingRepository
	userRepo    repositories.UserRepository
}

func NewLogisticsService(
	taskRepo repositories.TaskRepository,
	listingRepo repositories.ListingRepository,
	userRepo repositories.UserRepository,
) LogisticsService {
	return &logisticsService{
		taskRepo:    taskRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
	}
}

// CreatePickupTask schedules a volunteer for a listing and (re)sets the
// listing to claimed, whether or not a claim exists. A task for an unclaimed
// listing is allowed; reschedules just add more task rows.
func (s *logisticsService) CreatePickupTask(db *gorm.DB, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	listing, err := s.listingRepo.FindByID(db, req.ListingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	volunteer, err := s.userRepo.FindByID(db, req.VolunteerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CanAcceptPickupTask(volunteer.Role) {
		return nil, apperrors.ErrRoleNotAllowed("Only volunteers can be assigned to pickup tasks")
	}

	task := &models.PickupTask{
		ListingID:     listing.ID,
		VolunteerID:   volunteer.ID,
		ScheduledTime: req.ScheduledTime,
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := s.taskRepo.Create(tx, task); err != nil {
			return err
		}
		return s.listingRepo.UpdateStatus(tx, listing.ID, models.ListingStatusClaimed)
	})
	if txErr != nil {
		return nil, apperrors.InternalError(txErr)
	}

	resp := dto.NewTaskResponse(task)
	return &resp, nil
}

// CompleteTask marks the task done and moves its listing to completed
// unconditionally. Completing twice is a no-op for the task and keeps the
// listing completed; the forward-only rule holds because completed is terminal.
func (s *logisticsService) CompleteTask(db *gorm.DB, taskID string) error {
	task, err := s.taskRepo.FindByID(db, taskID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTaskNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := s.taskRepo.MarkCompleted(tx, task.ID); err != nil {
			return err
		}
		return s.listingRepo.UpdateStatus(tx, task.ListingID, models.ListingStatusCompleted)
	})
	if txErr != nil {
		return apperrors.InternalError(txErr)
	}
	return nil
}
