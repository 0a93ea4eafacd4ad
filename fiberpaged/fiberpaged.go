// Package fiberpaged binds page requests and writes the X-Pagination header
// for fiber handlers.
package fiberpaged

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dj-doMains/rampaged"
)

// Bind decodes the query string of c into req (using `query` tags) and
// validates it with opts.
func Bind(c *fiber.Ctx, opts *rampaged.Options, req any) error {
	if err := c.QueryParser(req); err != nil {
		return fmt.Errorf("%w: %w", rampaged.ErrInvalidPageRequest, err)
	}

	return opts.Validate(req)
}

// Router renders named fiber routes (see fiber.Router.Name) under the base
// URL of the current request. Route parameters are taken from the current
// request.
func Router(c *fiber.Ctx) rampaged.Router {
	return rampaged.RouterFunc(func(routeName string, params map[string]string) (string, error) {
		if c.App().GetRoute(routeName).Name != routeName {
			return "", fmt.Errorf("unknown route '%s'", routeName)
		}

		routeParams := make(fiber.Map)
		for k, v := range c.AllParams() {
			routeParams[k] = v
		}

		location, err := c.GetRouteURL(routeName, routeParams)
		if err != nil {
			return "", err
		}

		return c.BaseURL() + location + rampaged.EncodeQuery(params), nil
	})
}

// WriteHeader sets X-Pagination on the response, with links pointing at the
// named route.
func WriteHeader(c *fiber.Ctx, opts *rampaged.Options, routeName string, info *rampaged.PageInfo, req rampaged.Pageable) error {
	return opts.Linker(Router(c)).WriteHeader(c, routeName, info, req)
}

// JSON writes the pagination header and the page as the response body.
func JSON[T any](c *fiber.Ctx, opts *rampaged.Options, routeName string, page *rampaged.Page[T], req rampaged.Pageable) error {
	if err := WriteHeader(c, opts, routeName, page.Info(), req); err != nil {
		return err
	}

	return c.JSON(page)
}

// Status maps paging errors to a response status.
func Status(err error) int {
	var fErr *fiber.Error
	switch {
	case errors.Is(err, rampaged.ErrInvalidSortBy), errors.Is(err, rampaged.ErrInvalidPageRequest):
		return fiber.StatusBadRequest
	case errors.As(err, &fErr):
		return fErr.Code
	default:
		return fiber.StatusInternalServerError
	}
}

var _ rampaged.HeaderSink = (*fiber.Ctx)(nil)
