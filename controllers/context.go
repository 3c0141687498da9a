package controllers

import (
	"strconv"

	"github.com/azim-at/cafeBackend/services"
	"github.com/azim-at/cafeBackend/utils"
	"github.com/gin-gonic/gin"
)

func currentIdentity(c *gin.Context) *services.Identity {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		return nil
	}
	return &services.Identity{UserID: uid, Role: utils.CurrentRole(c)}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// queryUint reads an optional numeric query parameter. Absent is (nil,
// true); a present but unparsable value is rejected rather than treated
// as absent, so a mistyped filter cannot widen a query.
func queryUint(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	v := uint(id)
	return &v, true
}
