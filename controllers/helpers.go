package controllers

import (
	"strconv"
	"time"

	"github.com/fatouibra/Projet-Fatou-sub001/services"
	"github.com/fatouibra/Projet-Fatou-sub001/utils"

	"github.com/gin-gonic/gin"
)

// currentActor bundles the identity fields the auth middleware stored.
func currentActor(c *gin.Context) services.Actor {
	return services.Actor{
		UserID:       utils.CurrentUserID(c),
		Role:         utils.CurrentRole(c),
		RestaurantID: utils.CurrentRestaurantID(c),
	}
}

func paramUint(c *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(v)
}

func queryInt(c *gin.Context, name string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(name)); err == nil {
		return v
	}
	return fallback
}

// queryDateRange reads from/to (YYYY-MM-DD, inclusive); defaults to the
// trailing 30 days.
func queryDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if v := c.Query("from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return from, to, false
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return from, to, false
		}
		to = t
	}
	return from, to, true
}
