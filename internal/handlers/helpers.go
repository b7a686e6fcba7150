package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

// currentUser returns the user loaded into the context by the session
// middleware. Handlers behind AuthRequired can rely on ok being true.
func currentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
