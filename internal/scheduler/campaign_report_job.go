package scheduler

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/panjf2000/ants/v2"
	"github.com/yiryeong/wanted-pre-onboarding/internal/config"
	"github.com/yiryeong/wanted-pre-onboarding/internal/logger"
	"github.com/yiryeong/wanted-pre-onboarding/internal/logic"
	"gorm.io/gorm"
)

// CampaignReportJob periodically logs a funding summary across all
// products. Read-only; a failed run only logs.
type CampaignReportJob struct {
	products *logic.ProductLogic
	config   *config.Config
}

// NewCampaignReportJob creates the campaign report job
func NewCampaignReportJob(db *gorm.DB, cfg *config.Config) *CampaignReportJob {
	return &CampaignReportJob{
		products: logic.NewProductLogic(db),
		config:   cfg,
	}
}

// GetName job name
func (j *CampaignReportJob) GetName() string {
	return "campaign_report"
}

// GetSchedule run interval
func (j *CampaignReportJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.Interval) * time.Second)
}

// Execute loads all decorated campaigns and aggregates them on a
// worker pool.
func (j *CampaignReportJob) Execute() {
	today := time.Now()

	views, err := j.products.List(logic.ListOptions{}, today)
	if err != nil {
		logger.Error("campaign report: failed to load products: %v", err)
		return
	}

	workers := j.config.Scheduler.Workers
	if workers <= 0 {
		workers = 1
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		logger.Error("campaign report: failed to create worker pool: %v", err)
		return
	}
	defer pool.Release()

	var (
		wg          sync.WaitGroup
		totalRaised int64
		reached     int64
		pastDue     int64
	)
	for _, view := range views {
		view := view
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			atomic.AddInt64(&totalRaised, view.TotalFunding)
			if view.TotalFunding >= view.TargetAmount {
				atomic.AddInt64(&reached, 1)
			}
			if view.DDay < 0 {
				atomic.AddInt64(&pastDue, 1)
			}
		}); err != nil {
			wg.Done()
			logger.Error("campaign report: failed to submit task: %v", err)
		}
	}
	wg.Wait()

	logger.Info("campaign report: %d campaigns, %d raised in total, %d reached target, %d past end date",
		len(views), totalRaised, reached, pastDue)
}
