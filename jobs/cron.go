package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// PromotionSweeper deactivates promotions whose end date has passed
type PromotionSweeper interface {
	SweepExpired(m *melody.Melody) error
}

var promotionSweeper PromotionSweeper

// SetPromotionSweeper installs the PromotionSweeper implementation
func SetPromotionSweeper(sweeper PromotionSweeper) {
	promotionSweeper = sweeper
}

// InitCronJobs registers scheduled jobs and starts the scheduler
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Runs at midnight every day
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Running promotion expiry sweep at: %v", now)
		if promotionSweeper == nil {
			log.Printf("Error: PromotionSweeper has not been set")
			return
		}
		if err := promotionSweeper.SweepExpired(m); err != nil {
			log.Printf("Error sweeping expired promotions: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
