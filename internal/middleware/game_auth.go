package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/srashed001/pug-backend-sub000/internal/apperrors"
	"github.com/srashed001/pug-backend-sub000/internal/database"
	"github.com/srashed001/pug-backend-sub000/internal/models"
	"gorm.io/gorm"
)

// RequireGameHost aborts unless the caller created the game named by the
// "id" route parameter, or is an admin.
func RequireGameHost() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := GetUsername(c)
		if !ok {
			apperrors.Respond(c, apperrors.Unauthorized("login required"))
			c.Abort()
			return
		}

		gameID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apperrors.Respond(c, apperrors.BadRequest("invalid game id: %s", c.Param("id")))
			c.Abort()
			return
		}

		var game models.Game
		if err := database.GetDB().First(&game, gameID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				apperrors.Respond(c, apperrors.NotFound("no game: %d", gameID))
			} else {
				apperrors.Respond(c, err)
			}
			c.Abort()
			return
		}

		if game.CreatedBy != username && !IsAdmin(c) {
			apperrors.Respond(c, apperrors.Unauthorized("only the host may modify game %d", gameID))
			c.Abort()
			return
		}
		c.Next()
	}
}
