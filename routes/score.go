package routes

import (
	"coinquest/controllers"

	"github.com/gin-gonic/gin"
)

func CalculatePerformanceScoreRouteHandler(c *gin.Context) {
	controllers.CalculatePerformanceScore(c)
}
