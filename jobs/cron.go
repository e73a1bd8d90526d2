package jobs

import (
	"log"

	"github.com/GivenCloud/Hotel-Manager/config"
	"github.com/GivenCloud/Hotel-Manager/constants"
	"github.com/GivenCloud/Hotel-Manager/services"

	"github.com/robfig/cron/v3"
)

// InitCronJobs registers the scheduled jobs. Bookings are never auto-deleted;
// the nightly job only flushes the roster cache so stale intervals do not
// outlive the day they were cached on.
func InitCronJobs(c *cron.Cron) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		log.Println("Flushing roster cache")
		if err := services.DeleteFromRedisByPattern(config.Ctx, config.RedisClient, constants.RosterKeyPattern); err != nil {
			log.Printf("Failed to flush roster cache: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
