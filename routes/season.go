package routes

import (
	"coinquest/controllers"

	"github.com/gin-gonic/gin"
)

func InitializeSeasonRouteHandler(c *gin.Context) {
	controllers.InitializeSeason(c)
}

func CheckSeasonExpirationRouteHandler(c *gin.Context) {
	controllers.CheckSeasonExpiration(c)
}
