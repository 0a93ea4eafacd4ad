package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/dj-doMains/rampaged"
	"github.com/dj-doMains/rampaged/ginpaged"
)

// ListOrdersRequest is the query string of GET /orders.
type ListOrdersRequest struct {
	rampaged.PageRequest
	Status string `form:"status" validate:"omitempty,oneof=open paid shipped"`
	City   string `form:"city"`
	// Debug is never echoed into page links.
	Debug bool `form:"-"`
}

type OrderDTO struct {
	Number   string    `json:"number"`
	Status   string    `json:"status"`
	Total    float64   `json:"total"`
	PlacedAt time.Time `json:"placedAt"`
	Customer string    `json:"customer"`
}

var _ordersDescriptor = rampaged.NewDescriptor("orders",
	rampaged.Field("number"),
	rampaged.Field("status"),
	rampaged.Field("total"),
	rampaged.Field("placedAt"),
	rampaged.Field("customer").OrderedBy("customer.lastName"),
	rampaged.Field("city").OrderedBy("customer.city"),
	rampaged.Field("notes").OrderedBy(""),
)

const _defaultOrdersSort = "-placedAt"

const _ordersRoute = "orders"

type ordersHandler struct {
	db   *gorm.DB
	opts *rampaged.Options
	// linker renders links under a fixed public base URL. When nil, links
	// follow the host of the incoming request.
	linker *rampaged.Linker
	log    zerolog.Logger
}

func newOrdersHandler(db *gorm.DB, opts *rampaged.Options, baseURL string) *ordersHandler {
	h := &ordersHandler{
		db:   db,
		opts: opts,
		log:  opts.Logger().With().Str("component", "orders").Logger(),
	}

	if baseURL != "" {
		h.linker = opts.Linker(rampaged.NewURLRouter(baseURL, map[string]string{
			_ordersRoute: "/orders",
		}))
	}

	return h
}

func (h *ordersHandler) List(c *gin.Context) {
	var req ListOrdersRequest
	if err := ginpaged.Bind(c, h.opts, &req); err != nil {
		h.fail(c, err)
		return
	}

	db := h.db.WithContext(c.Request.Context()).Model(&Order{}).Joins("Customer")
	db = rampaged.WhereIf(db, req.Status != "", "orders.status = ?", req.Status)
	db = rampaged.WhereIf(db, req.City != "", "Customer.city = ?", req.City)

	sortBy := req.SortBy
	if !req.ShouldSort() {
		sortBy = _defaultOrdersSort
	}

	query, err := rampaged.ApplyOrdering[Order](h.opts.Resolver(), rampaged.FromGORM[Order](db), sortBy, _ordersDescriptor)
	if err != nil {
		h.fail(c, err)
		return
	}

	page, err := rampaged.ToMappedPage(c.Request.Context(), query, &req, rampaged.MapWith(toOrderDTO))
	if err != nil {
		h.fail(c, err)
		return
	}

	if req.Debug {
		h.log.Debug().Interface("page", page.Info()).Str("sort_by", sortBy).Msg("orders page")
	}

	if h.linker == nil {
		if err = ginpaged.JSON(c, h.opts, page, &req); err != nil {
			h.fail(c, err)
		}
		return
	}

	if err = h.linker.WriteHeader(c.Writer.Header(), _ordersRoute, page.Info(), &req); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *ordersHandler) fail(c *gin.Context, err error) {
	status := ginpaged.Status(err)
	if status >= http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("cannot list orders")
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func toOrderDTO(o Order) OrderDTO {
	return OrderDTO{
		Number:   o.Number,
		Status:   o.Status,
		Total:    o.Total,
		PlacedAt: o.PlacedAt,
		Customer: o.Customer.FirstName + " " + o.Customer.LastName,
	}
}

// requestLogger logs every request at debug level and failures at warn.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := log.Debug()
		if c.Writer.Status() >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

func newEngine(db *gorm.DB, opts *rampaged.Options, baseURL string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(opts.Logger()))

	orders := newOrdersHandler(db, opts, baseURL)
	r.GET("/orders", orders.List)

	return r
}
