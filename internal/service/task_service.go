package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guide4360/guide4360api/internal/models"
	"github.com/guide4360/guide4360api/internal/repository"
	"github.com/guide4360/guide4360api/pkg/utils/timeconv"
	"github.com/guide4360/guide4360api/pkg/utils/zaplogger"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrTaskNotFound is returned for an unknown task identifier
var ErrTaskNotFound = errors.New("task not found")

const (
	taskCacheKeyPrefix = "guide4360:tasks:"
	taskCacheTTL       = 30 * time.Second
)

// ValidationError marks a task payload the validator rejected
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// TaskService handles task creation, updates and the cached list query
type TaskService struct {
	repo        *repository.TaskRepository
	redisClient *redis.Client
}

// NewTaskService creates a new service for the task API
func NewTaskService(db *gorm.DB, redisClient *redis.Client) *TaskService {
	return &TaskService{
		repo:        repository.NewTaskRepository(db),
		redisClient: redisClient,
	}
}

// ListTasks returns tasks matching the store-level filters, served through a
// short-lived Redis cache. Cache failures degrade to the database.
func (s *TaskService) ListTasks(ctx context.Context, search, day string) ([]models.TaskModel, error) {
	cacheKey := fmt.Sprintf("%s%s:%s", taskCacheKeyPrefix, search, day)

	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var tasks []models.TaskModel
			if err := json.Unmarshal([]byte(cached), &tasks); err == nil {
				return tasks, nil
			}
		}
	}

	tasks, err := s.repo.QueryTasks(search, day)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(tasks); err == nil {
			if err := s.redisClient.Set(ctx, cacheKey, data, taskCacheTTL).Err(); err != nil {
				zaplogger.Warn("failed to cache task list", zaplogger.Fields{"error": err.Error()})
			}
		}
	}

	return tasks, nil
}

// CreateTask validates and persists a new task
func (s *TaskService) CreateTask(ctx context.Context, task *models.TaskModel) error {
	if err := s.prepareTask(task); err != nil {
		return err
	}
	if err := s.repo.CreateTask(task); err != nil {
		return err
	}
	s.invalidateTaskCache(ctx)
	return nil
}

// TaskUpdate is a partial task update: the file list and the completion flag
// are replaced together in a single update call.
type TaskUpdate struct {
	Files     *[]models.TaskFile `json:"files"`
	Completed *bool              `json:"completed"`
}

// UpdateTask applies a partial update to a task. Nothing is written when
// validation fails.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, update TaskUpdate) (*models.TaskModel, error) {
	updates := map[string]interface{}{}
	if update.Files != nil {
		if err := validateFiles(*update.Files); err != nil {
			return nil, err
		}
		updates["files"] = datatypes.NewJSONType(*update.Files)
	}
	if update.Completed != nil {
		updates["completed"] = *update.Completed
	}

	task, err := s.repo.UpdateTask(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	s.invalidateTaskCache(ctx)
	return task, nil
}

// prepareTask validates a task for saving and recomputes the EST load time
// from the IST time for Direct loads.
func (s *TaskService) prepareTask(task *models.TaskModel) error {
	if strings.TrimSpace(task.Retailer) == "" {
		return newValidationError("`retailer` is required")
	}
	if !models.IsValidScheduleLabel(task.Day) {
		return newValidationError("`day` must be one of the known schedule labels")
	}

	timing := task.DirectLoadTiming.Data()
	portal := task.RetailerPortal.Data()
	mail := task.RetailerMail.Data()

	switch task.LoadType {
	case models.LoadTypeDirect:
		if timing == nil {
			return newValidationError("`directLoadTiming` is required for a Direct load")
		}
		if portal != nil || mail != nil {
			return newValidationError("a Direct load cannot carry an indirect source payload")
		}
		if timing.ISTTime != "" {
			est, err := timeconv.ConvertISTToEST(timing.ISTTime)
			if err != nil {
				return newValidationError("invalid `istTime`: %v", err)
			}
			timing.ESTTime = est
		}
		task.IndirectLoadSource = ""

	case models.LoadTypeIndirect:
		if timing != nil {
			return newValidationError("an Indirect load cannot carry `directLoadTiming`")
		}
		switch task.IndirectLoadSource {
		case models.SourceRetailerPortal:
			if portal == nil {
				return newValidationError("`retailerPortal` is required for portal-sourced loads")
			}
			if mail != nil {
				return newValidationError("only one indirect source payload may be set")
			}
		case models.SourceRetailerMail:
			if mail == nil {
				return newValidationError("`retailerMail` is required for mail-sourced loads")
			}
			if portal != nil {
				return newValidationError("only one indirect source payload may be set")
			}
		default:
			return newValidationError("`indirectLoadSource` must be `retailer portal` or `retailer mail`")
		}

	default:
		return newValidationError("`loadType` must be `Direct load` or `Indirect load`")
	}

	return validateFiles(task.Files.Data())
}

// validateFiles rejects file entries with a blank download or required name
func validateFiles(files []models.TaskFile) error {
	for i, file := range files {
		if strings.TrimSpace(file.DownloadName) == "" || strings.TrimSpace(file.RequiredName) == "" {
			return newValidationError("file entry %d must have both `downloadName` and `requiredName`", i)
		}
	}
	return nil
}

// invalidateTaskCache drops every cached task list after a write. Failures
// are logged, not surfaced; the cache expires on its own within the TTL.
func (s *TaskService) invalidateTaskCache(ctx context.Context) {
	if s.redisClient == nil {
		return
	}

	iter := s.redisClient.Scan(ctx, 0, taskCacheKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			zaplogger.Warn("failed to drop cached task list", zaplogger.Fields{
				"key":   iter.Val(),
				"error": err.Error(),
			})
		}
	}
	if err := iter.Err(); err != nil {
		zaplogger.Warn("task cache invalidation failed", zaplogger.Fields{"error": err.Error()})
	}
}
