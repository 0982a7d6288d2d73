package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron"

	"gopkg.in/mgo.v2"

	"github.com/NITHIKASHREEMS/montelucast/server"
)

func main() {
	httpFlag := flag.String("http", "", "HTTP service address to listen on (env: HTTP_HOST_AND_PORT, default: \":9000\")")
	mongoFlag := flag.String("mongo", "", "MongoDB address (env: MONGO_URL, default: \"mongodb://localhost:27017\")")
	cronFlag := flag.String("cron", "", "Cron expression indicating when expired assessments should be removed (env: EXPIRE_CRON, default: \"0 0 22 * * *\")")
	retentionFlag := flag.String("retention", "", "Number of days to retain stored assessments (env: RETENTION_DAYS, default: \"90\")")
	flag.Parse()

	// Prefer http arg, falling back to env, falling back to default
	httpa := getConfigValue(httpFlag, "HTTP_HOST_AND_PORT", ":9000")

	// Prefer mongo arg, falling back to env, falling back to default
	mongo := getConfigValue(mongoFlag, "MONGO_URL", "mongodb://localhost:27017")
	if strings.HasPrefix(mongo, ":") {
		mongo = "mongodb://localhost" + mongo
	}

	cronSpec := getConfigValue(cronFlag, "EXPIRE_CRON", "0 0 22 * * *")
	retentionDays, err := strconv.Atoi(getConfigValue(retentionFlag, "RETENTION_DAYS", "90"))
	if err != nil || retentionDays < 1 {
		fmt.Fprintln(os.Stderr, "Retention days must be a positive number.")
		flag.PrintDefaults()
		os.Exit(1)
	}

	session, err := mgo.Dial(mongo)
	if err != nil {
		panic("Can't connect to the database")
	}
	defer session.Close()
	db := session.DB("montelucast")
	assessments := db.C("assessments")

	// Setup the cron job and start the scheduler
	c := cron.New()
	err = server.ScheduleExpireAssessmentsCron(c, cronSpec, assessments, time.Duration(retentionDays)*24*time.Hour)
	if err != nil {
		panic("Can't setup cron job for expiring stored assessments.  Specified spec: " + cronSpec)
	}
	c.Start()
	defer c.Stop()

	// Create the gin engine, register the routes, and run!
	e := gin.Default()
	server.RegisterRoutes(e, assessments)
	e.Run(httpa)
}

func getConfigValue(parsedFlag *string, envVar string, defaultVal string) string {
	val := *parsedFlag
	if val == "" {
		val = os.Getenv(envVar)
		if val == "" {
			val = defaultVal
		}
	}
	return val
}
