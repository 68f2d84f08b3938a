package service

import (
	"log"
	"time"

	"monateg/internal/models"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// StartDailyResetScheduler zeroes today_earnings for all users at 00:00 UTC.
// The update is idempotent, so a duplicate firing is harmless.
func StartDailyResetScheduler(db *gorm.DB) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, err
	}
	_, err = sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 0, 0))),
		gocron.NewTask(func() {
			res := db.Model(&models.User{}).Where("today_earnings <> 0").Update("today_earnings", 0)
			if res.Error != nil {
				log.Printf("[Scheduler] today_earnings reset failed: %v", res.Error)
				return
			}
			log.Printf("[Scheduler] today_earnings reset for %d users", res.RowsAffected)
		}),
	)
	if err != nil {
		return nil, err
	}
	sched.Start()
	return sched, nil
}
