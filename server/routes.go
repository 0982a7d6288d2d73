package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/NITHIKASHREEMS/montelucast/models"
	"github.com/NITHIKASHREEMS/montelucast/scorer"
)

// RegisterRoutes sets up the http request handlers with Gin
func RegisterRoutes(e *gin.Engine, assessments *mgo.Collection) {
	RegisterScoreHandler(e, assessments)
	RegisterAssessmentHandler(e, assessments)
	RegisterReferenceHandler(e)
}

// RegisterScoreHandler registers the handler that scores a submitted assessment
// and stores the input together with its result
func RegisterScoreHandler(e *gin.Engine, assessments *mgo.Collection) {
	e.POST("/assessments", func(c *gin.Context) {
		var assessment models.Assessment
		if err := c.ShouldBindJSON(&assessment); err != nil {
			c.String(http.StatusBadRequest, "Bad assessment body: %s", err.Error())
			return
		}
		if err := assessment.Validate(); err != nil {
			c.String(http.StatusBadRequest, "Invalid assessment: %s", err.Error())
			return
		}

		result := scorer.Calculate(assessment)
		stored := models.NewStoredAssessment(assessment, result)
		if err := assessments.Insert(stored); err != nil {
			c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		c.JSON(http.StatusOK, stored)
	})
}

// RegisterAssessmentHandler registers the handler to return stored assessments
// from the database
func RegisterAssessmentHandler(e *gin.Engine, assessments *mgo.Collection) {
	e.GET("/assessments/:id", func(c *gin.Context) {
		stored := &models.StoredAssessment{}
		id := c.Param("id")
		if bson.IsObjectIdHex(id) {
			query := assessments.FindId(bson.ObjectIdHex(id))
			if err := query.One(stored); err == nil {
				c.JSON(http.StatusOK, stored)
			} else {
				c.Status(http.StatusNotFound)
			}
		} else {
			c.String(http.StatusBadRequest, "Bad ID format for requested assessment. Should be a BSON Id")
		}
	})
}

// RegisterReferenceHandler registers the handler that returns the static
// reference data a rendering form needs: recognized dose levels and the
// grouped symptom catalog
func RegisterReferenceHandler(e *gin.Engine) {
	e.GET("/reference", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"doses": scorer.DoseLevels(),
			"symptoms": gin.H{
				"highRisk":        scorer.HighRiskSymptoms(),
				"moderateLowRisk": scorer.ModerateLowRiskSymptoms(),
			},
		})
	})
}
