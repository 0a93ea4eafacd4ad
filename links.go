package rampaged

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// HeaderPagination is the response header carrying Metadata as JSON.
const HeaderPagination = "X-Pagination"

// ResourceURIType selects which page a resource link points to.
type ResourceURIType int

const (
	CurrentPage ResourceURIType = iota
	PreviousPage
	NextPage
)

func (t ResourceURIType) String() string {
	switch t {
	case PreviousPage:
		return "previous"
	case NextPage:
		return "next"
	default:
		return "current"
	}
}

// Router renders a named route with the given query parameters appended.
type Router interface {
	Link(routeName string, params map[string]string) (string, error)
}

// RouterFunc adapts a function to Router.
type RouterFunc func(routeName string, params map[string]string) (string, error)

func (f RouterFunc) Link(routeName string, params map[string]string) (string, error) {
	return f(routeName, params)
}

// HeaderSink receives response headers. http.Header and *fiber.Ctx satisfy it.
type HeaderSink interface {
	Set(key, value string)
}

// Metadata is the X-Pagination payload. Links are null when unavailable.
type Metadata struct {
	TotalCount       int64   `json:"totalCount"`
	PageSize         int     `json:"pageSize"`
	CurrentPage      int     `json:"currentPage"`
	TotalPages       int     `json:"totalPages"`
	PreviousPageLink *string `json:"previousPageLink"`
	NextPageLink     *string `json:"nextPageLink"`
}

// Linker builds page links and the pagination header.
type Linker struct {
	router Router
	log    zerolog.Logger
}

func NewLinker(router Router, logger zerolog.Logger) *Linker {
	return &Linker{
		router: router,
		log:    logger.With().Str("component", "linker").Logger(),
	}
}

// ResourceURI renders routeName with every query field of req, with the page
// number moved by kind and the page size normalized. req itself is left
// untouched.
//
// An empty string is returned for a nil request, a blank route name, a
// missing router or a router failure.
func (l *Linker) ResourceURI(routeName string, kind ResourceURIType, req Pageable) string {
	if l == nil || l.router == nil || isNilPageable(req) || isBlank(routeName) {
		return ""
	}

	pageNumber := req.GetPageNumber()
	switch kind {
	case PreviousPage:
		pageNumber--
	case NextPage:
		pageNumber++
	}

	params := QueryValues(req)
	params[PageNumberParam] = strconv.Itoa(pageNumber)
	params[PageSizeParam] = strconv.Itoa(req.GetPageSize())

	link, err := l.router.Link(routeName, params)
	if err != nil {
		l.log.Warn().Err(err).Str("route", routeName).Stringer("kind", kind).Msg("cannot render page link")
		return ""
	}

	return link
}

// Metadata collects the page info and the previous/next links. A nil info
// yields zero counts rather than nulls; only the links are nullable.
func (l *Linker) Metadata(routeName string, info *PageInfo, req Pageable) Metadata {
	var ret Metadata
	if info == nil {
		return ret
	}

	ret.TotalCount = info.TotalCount
	ret.PageSize = info.PageSize
	ret.CurrentPage = info.CurrentPage
	ret.TotalPages = info.TotalPages

	if info.HasPrevious() {
		ret.PreviousPageLink = nonEmpty(l.ResourceURI(routeName, PreviousPage, req))
	}
	if info.HasNext() {
		ret.NextPageLink = nonEmpty(l.ResourceURI(routeName, NextPage, req))
	}

	return ret
}

// WriteHeader sets X-Pagination on sink.
func (l *Linker) WriteHeader(sink HeaderSink, routeName string, info *PageInfo, req Pageable) error {
	payload, err := json.Marshal(l.Metadata(routeName, info, req))
	if err != nil {
		return fmt.Errorf("cannot marshal pagination metadata: %w", err)
	}

	sink.Set(HeaderPagination, string(payload))

	return nil
}

func isNilPageable(req Pageable) bool {
	if req == nil {
		return true
	}

	v := reflect.ValueOf(req)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// URLRouter renders named path templates under a base URL, e.g.
//
//	rampaged.NewURLRouter("https://api.example.com", map[string]string{
//	    "orders": "/v1/orders",
//	})
type URLRouter struct {
	baseURL string
	routes  map[string]string
}

func NewURLRouter(baseURL string, routes map[string]string) *URLRouter {
	return &URLRouter{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		routes:  routes,
	}
}

// Link - implements Router. Query parameters are sorted by name.
func (r *URLRouter) Link(routeName string, params map[string]string) (string, error) {
	path, ok := r.routes[routeName]
	if !ok {
		return "", fmt.Errorf("unknown route '%s'", routeName)
	}

	return r.baseURL + path + EncodeQuery(params), nil
}

// EncodeQuery renders params as "?k1=v1&k2=v2" sorted by key, or "" if empty.
func EncodeQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, v)
	}

	return "?" + values.Encode()
}

var (
	_ Router = (*URLRouter)(nil)
	_ Router = RouterFunc(nil)
)
