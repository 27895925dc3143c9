// Package controller is the thin HTTP surface over the engine. Handlers
// parse parameters, call one service operation and translate its outcome to
// a status code; no business rule lives here.
package controller

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yonatan-reicher/staymarket-backend/internal/outcome"
)

// dateLayout is the wire format for all dates.
const dateLayout = "2006-01-02"

func respondOutcome(c *gin.Context, out outcome.Outcome) {
	c.JSON(out.HTTPStatus(), gin.H{"outcome": out.String()})
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		respondOutcome(c, outcome.BadParams)
		return 0, false
	}
	return id, true
}

func parseDate(value string) (time.Time, bool) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
