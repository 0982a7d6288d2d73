package server

import (
	"log"
	"time"

	"github.com/robfig/cron"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

// ScheduleExpireAssessmentsCron schedules a cron job that removes stored
// assessments older than maxAge
func ScheduleExpireAssessmentsCron(c *cron.Cron, spec string, assessments *mgo.Collection, maxAge time.Duration) error {
	return c.AddFunc(spec, func() {
		cutoff := time.Now().Add(-maxAge)
		info, err := assessments.RemoveAll(bson.M{"created": bson.M{"$lt": cutoff}})
		if err != nil {
			log.Println("Error expiring stored assessments", err)
		} else {
			log.Printf("Expired %d stored assessments older than %s.", info.Removed, cutoff.Format("2006-01-02"))
		}
	})
}
