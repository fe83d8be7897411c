package repository

import (
	"github.com/guide4360/guide4360api/internal/models"
	"gorm.io/gorm"
)

// TaskRepository is the database repository for tasks
type TaskRepository struct {
	DB *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

// CreateTask inserts a new task into the database
func (r *TaskRepository) CreateTask(task *models.TaskModel) error {
	return r.DB.Create(task).Error
}

// GetTaskByID gets a task by its identifier
func (r *TaskRepository) GetTaskByID(id uint) (*models.TaskModel, error) {
	var task models.TaskModel
	err := r.DB.First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// QueryTasks returns tasks matching the store-level filters: a
// case-insensitive substring match on retailer name and an exact match on
// the schedule label. Empty values (or day "all") skip the filter.
func (r *TaskRepository) QueryTasks(search, day string) ([]models.TaskModel, error) {
	query := r.DB.Model(&models.TaskModel{})

	if search != "" {
		query = query.Where("retailer ILIKE ?", "%"+search+"%")
	}
	if day != "" && day != "all" {
		query = query.Where("day = ?", day)
	}

	var tasks []models.TaskModel
	if err := query.Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTask applies the given column updates to a task and returns the
// updated row. The updates are applied in a single call, so a failure
// leaves the task unchanged.
func (r *TaskRepository) UpdateTask(id uint, updates map[string]interface{}) (*models.TaskModel, error) {
	task, err := r.GetTaskByID(id)
	if err != nil {
		return nil, err
	}

	if err := r.DB.Model(task).Updates(updates).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// CountTasksByStatus returns pending and completed task counts for a load
// type (empty loadType counts all tasks).
func (r *TaskRepository) CountTasksByStatus(loadType string) (pending int64, completed int64, err error) {
	query := r.DB.Model(&models.TaskModel{})
	if loadType != "" {
		query = query.Where("load_type = ?", loadType)
	}
	query = query.Session(&gorm.Session{})

	if err = query.Where("completed = ?", false).Count(&pending).Error; err != nil {
		return 0, 0, err
	}
	if err = query.Where("completed = ?", true).Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return pending, completed, nil
}

// PruneAppLogs deletes application log rows older than the given number of days
func (r *TaskRepository) PruneAppLogs(days int) (int64, error) {
	result := r.DB.Exec("DELETE FROM _app_logs WHERE timestamp < NOW() - (? * INTERVAL '1 day')", days)
	return result.RowsAffected, result.Error
}
