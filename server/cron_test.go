package server

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/NITHIKASHREEMS/montelucast/models"
	"github.com/NITHIKASHREEMS/montelucast/scorer"

	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/dbtest"

	"github.com/robfig/cron"
	"github.com/stretchr/testify/suite"
)

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to suite.Run
func TestCronSuite(t *testing.T) {
	suite.Run(t, new(CronSuite))
}

type CronSuite struct {
	suite.Suite
	DBServer     *dbtest.DBServer
	DBServerPath string
	Session      *mgo.Session
	Database     *mgo.Database
}

func (suite *CronSuite) SetupSuite() {
	suite.DBServer = &dbtest.DBServer{}
	var err error
	suite.DBServerPath, err = ioutil.TempDir("", "mongotestdb")
	if err != nil {
		panic(err)
	}
	suite.DBServer.SetPath(suite.DBServerPath)
}

func (suite *CronSuite) SetupTest() {
	suite.Session = suite.DBServer.Session()
	suite.Database = suite.Session.DB("montelucast-test")
}

func (suite *CronSuite) TearDownTest() {
	suite.Session.Close()
	suite.DBServer.Wipe()
}

func (suite *CronSuite) TearDownSuite() {
	suite.DBServer.Stop()
	if err := os.RemoveAll(suite.DBServerPath); err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: Error cleaning up temp directory: %s", err.Error())
	}
}

// Warning: This test *should* be OK -- but because it relies on timing, it *could* get flakey
func (suite *CronSuite) TestCron() {
	require := suite.Require()
	assert := suite.Assert()

	assessments := suite.Database.C("assessments")

	// Store one fresh assessment and one that expired long ago
	assessment := models.Assessment{Age: 8, Dose: "5mg", DurationWeeks: 12}
	fresh := models.NewStoredAssessment(assessment, scorer.Calculate(assessment))
	require.NoError(assessments.Insert(fresh))

	expired := models.NewStoredAssessment(assessment, scorer.Calculate(assessment))
	expired.Created = time.Now().AddDate(0, -6, 0)
	require.NoError(assessments.Insert(expired))

	count, err := assessments.Count()
	require.NoError(err)
	assert.Equal(2, count)

	// Schedule the cron with a 90 day retention
	c := cron.New()
	err = ScheduleExpireAssessmentsCron(c, "@every 1s", assessments, 90*24*time.Hour)
	require.NoError(err)
	c.Start()
	defer c.Stop()

	// Check for updated count every 500 ms for a total of 10s, then give up.
	// This helps account for slow machines.
	for i := 0; i < 20 && count != 1; i++ {
		time.Sleep(500 * time.Millisecond)
		count, err = assessments.Count()
		require.NoError(err)
	}
	assert.Equal(1, count)

	// The fresh assessment is the one that survived
	remaining := new(models.StoredAssessment)
	require.NoError(assessments.FindId(fresh.Id).One(remaining))
}
