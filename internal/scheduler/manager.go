package scheduler

import (
	"github.com/go-co-op/gocron/v2"
	"github.com/yiryeong/wanted-pre-onboarding/internal/config"
	"github.com/yiryeong/wanted-pre-onboarding/internal/logger"
	"gorm.io/gorm"
)

// Manager background job manager
type Manager struct {
	scheduler gocron.Scheduler
	db        *gorm.DB
	config    *config.Config
}

// NewManager creates the job manager
func NewManager(db *gorm.DB, cfg *config.Config) *Manager {
	s, err := gocron.NewScheduler()
	if err != nil {
		logger.Fatal("Failed to create scheduler: %v", err)
	}

	return &Manager{
		scheduler: s,
		db:        db,
		config:    cfg,
	}
}

// Start builds a manager, registers all jobs and starts the scheduler
func Start(db *gorm.DB, cfg *config.Config) *Manager {
	manager := NewManager(db, cfg)

	manager.RegisterJobs()
	manager.scheduler.Start()

	logger.Info("Scheduler started successfully")
	return manager
}

// RegisterJobs registers all background jobs
func (m *Manager) RegisterJobs() {
	m.RegisterCampaignReportJob()
}

// RegisterCampaignReportJob registers the periodic campaign report
func (m *Manager) RegisterCampaignReportJob() {
	job := NewCampaignReportJob(m.db, m.config)

	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("Failed to register job %s: %v", job.GetName(), err)
	}
}

// Stop shuts the scheduler down
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown scheduler: %v", err)
	}
	logger.Info("Scheduler stopped")
}
