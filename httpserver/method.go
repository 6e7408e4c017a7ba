package httpserver

import (
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
)

// routedMethods are the methods echo routes, used to find the ones a path
// does not handle.
var routedMethods = []string{
	http.MethodConnect,
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodOptions,
	http.MethodPatch,
	http.MethodPost,
	http.MethodPut,
	http.MethodTrace,
	echo.PROPFIND,
	echo.REPORT,
}

// registerMethodHint answers every method not in allowed with a plain text
// hint listing the supported ones.
func registerMethodHint(g *echo.Group, path string, allowed ...string) {
	var others []string
	for _, m := range routedMethods {
		if !slices.Contains(allowed, m) {
			others = append(others, m)
		}
	}

	hint := methodHint(allowed)
	g.Match(others, path, func(c echo.Context) error {
		return c.String(http.StatusOK, hint)
	})
}

func methodHint(allowed []string) string {
	list := allowed[0]
	if n := len(allowed); n > 1 {
		list = strings.Join(allowed[:n-1], ", ") + " or " + allowed[n-1]
	}
	return "This method is not supported. Use " + list
}
