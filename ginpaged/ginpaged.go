// Package ginpaged binds page requests and writes the X-Pagination header
// for gin handlers.
package ginpaged

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dj-doMains/rampaged"
)

// Bind decodes the query string of c into req (using `form` tags) and
// validates it with opts.
func Bind(c *gin.Context, opts *rampaged.Options, req any) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return fmt.Errorf("%w: %w", rampaged.ErrInvalidPageRequest, err)
	}

	return opts.Validate(req)
}

// Router renders links relative to the request being served. Route names
// are looked up in routes (name -> gin path template, e.g.
// "/customers/:id/orders" or "/files/*path"); the path template of the
// matched handler, c.FullPath(), is always accepted as a route name. Path
// and catch-all parameters are filled from the current request.
func Router(c *gin.Context, routes map[string]string) rampaged.Router {
	return rampaged.RouterFunc(func(routeName string, params map[string]string) (string, error) {
		template, ok := routes[routeName]
		if !ok {
			if routeName != c.FullPath() {
				return "", fmt.Errorf("unknown route '%s'", routeName)
			}
			template = routeName
		}

		return baseURL(c.Request) + expandPath(template, c.Params) + rampaged.EncodeQuery(params), nil
	})
}

// WriteHeader sets X-Pagination on the response of c. Links point at the
// route that is currently being served.
func WriteHeader(c *gin.Context, opts *rampaged.Options, info *rampaged.PageInfo, req rampaged.Pageable) error {
	linker := opts.Linker(Router(c, nil))

	return linker.WriteHeader(c.Writer.Header(), c.FullPath(), info, req)
}

// JSON writes the pagination header and the page as a 200 response.
func JSON[T any](c *gin.Context, opts *rampaged.Options, page *rampaged.Page[T], req rampaged.Pageable) error {
	if err := WriteHeader(c, opts, page.Info(), req); err != nil {
		return err
	}

	c.JSON(http.StatusOK, page)

	return nil
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return scheme + "://" + r.Host
}

func expandPath(template string, params gin.Params) string {
	segments := strings.Split(template, "/")
	for i, segment := range segments {
		switch {
		case strings.HasPrefix(segment, ":"):
			segments[i] = params.ByName(segment[1:])
		case strings.HasPrefix(segment, "*"):
			// Catch-all values keep their leading slash.
			segments[i] = strings.TrimPrefix(params.ByName(segment[1:]), "/")
		}
	}

	return strings.Join(segments, "/")
}

// Status maps paging errors to a response status.
func Status(err error) int {
	switch {
	case errors.Is(err, rampaged.ErrInvalidSortBy), errors.Is(err, rampaged.ErrInvalidPageRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
