package context

import (
	"adminpanel/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the echo.Context key of the session snapshot the route
// guard admitted the request with.
const KeySession ContextKey = "session"

// SetSession stores the admitted session snapshot.
func SetSession(c echo.Context, snap entity.SessionSnapshot) {
	c.Set(string(KeySession), snap)
}

// GetSession returns the snapshot stored by SetSession, ok=false on
// unguarded routes.
func GetSession(c echo.Context) (entity.SessionSnapshot, bool) {
	snap, ok := c.Get(string(KeySession)).(entity.SessionSnapshot)

	return snap, ok
}
