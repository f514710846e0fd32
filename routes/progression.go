package routes

import (
	"coinquest/controllers"

	"github.com/gin-gonic/gin"
)

func EvaluateMissionsRouteHandler(c *gin.Context) {
	controllers.EvaluateMissions(c)
}

func GetProgressionProfileRouteHandler(c *gin.Context) {
	controllers.GetProgressionProfile(c)
}

func RecordLoginRouteHandler(c *gin.Context) {
	controllers.RecordLogin(c)
}

func ResetMissionsRouteHandler(c *gin.Context) {
	controllers.ResetMissions(c)
}

func GenerateMissionsRouteHandler(c *gin.Context) {
	controllers.GenerateMissions(c)
}
