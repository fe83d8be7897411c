package service

import (
	"time"

	"github.com/guide4360/guide4360api/internal/config"
	"github.com/guide4360/guide4360api/internal/models"
	"github.com/guide4360/guide4360api/internal/repository"
	"github.com/guide4360/guide4360api/pkg/utils/zaplogger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const appLogRetentionDays = 7

// CronService runs the scheduled maintenance jobs
type CronService struct {
	cfg      *config.Config
	c        *cron.Cron
	taskRepo *repository.TaskRepository
}

// NewCronService creates a new CronService
func NewCronService(cfg *config.Config, db *gorm.DB) *CronService {
	return &CronService{
		cfg:      cfg,
		c:        cron.New(),
		taskRepo: repository.NewTaskRepository(db),
	}
}

// Start starts the cron service
func (cs *CronService) Start() {
	zaplogger.Info("Initializing CronService")

	// ------------------------------------------------------------
	// SCHEDULED jobs
	// ------------------------------------------------------------
	cs.addScheduledJob("Task Stats LOG Job", cs.taskStatsLogJob, "0 8 * * *")   // Once at 08:00am
	cs.addScheduledJob("App Logs PRUNE Job", cs.appLogsPruneJob, "15 0 * * *") // Once at 00:15am

	// ------------------------------------------------------------
	// STARTUP jobs
	// ------------------------------------------------------------
	cs.addStartupJob("Task Stats LOG Job", cs.taskStatsLogJob, 5*time.Second)

	cs.c.Start()
}

// Stop stops the cron service
func (cs *CronService) Stop() {
	cs.c.Stop()
}

// addStartupJob adds a startup job to the cron service
func (cs *CronService) addStartupJob(name string, job func(), delay time.Duration) {
	go func() {
		time.Sleep(delay)
		zaplogger.Info("STARTED STARTUP job", zaplogger.Fields{
			"job": name,
		})
		job()
		zaplogger.Info("COMPLETED STARTUP job", zaplogger.Fields{
			"job": name,
		})
	}()
	zaplogger.Info("QUEUED STARTUP job", zaplogger.Fields{
		"job": name,
	})
}

// addScheduledJob adds a scheduled job to the cron service
func (cs *CronService) addScheduledJob(name string, job func(), schedule string) {
	_, err := cs.c.AddFunc(schedule, func() {
		zaplogger.Info("STARTED SCHEDULED job", zaplogger.Fields{
			"job": name,
		})
		job()
		zaplogger.Info("COMPLETED SCHEDULED job", zaplogger.Fields{
			"job": name,
		})
	})
	if err != nil {
		zaplogger.Error("FAILED TO QUEUE SCHEDULED job", zaplogger.Fields{
			"job":   name,
			"error": err.Error(),
		})
		return
	}
	zaplogger.Info("QUEUED SCHEDULED job", zaplogger.Fields{
		"job": name,
	})
}

// taskStatsLogJob logs pending/completed task counts per load type
func (cs *CronService) taskStatsLogJob() {
	jobName := "Task Stats LOG Job"

	for _, loadType := range []string{models.LoadTypeDirect, models.LoadTypeIndirect} {
		pending, completed, err := cs.taskRepo.CountTasksByStatus(loadType)
		if err != nil {
			zaplogger.Error(jobName, zaplogger.Fields{
				"load_type": loadType,
				"error":     err.Error(),
			})
			return
		}
		zaplogger.Info(jobName, zaplogger.Fields{
			"load_type": loadType,
			"pending":   pending,
			"completed": completed,
		})
	}
}

// appLogsPruneJob deletes stale application log rows
func (cs *CronService) appLogsPruneJob() {
	jobName := "App Logs PRUNE Job"

	rowsDeleted, err := cs.taskRepo.PruneAppLogs(appLogRetentionDays)
	if err != nil {
		zaplogger.Error(jobName, zaplogger.Fields{
			"error": err.Error(),
		})
		return
	}
	zaplogger.Info(jobName, zaplogger.Fields{
		"rows_deleted": rowsDeleted,
	})
}
