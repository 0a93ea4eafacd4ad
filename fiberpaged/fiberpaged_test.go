package fiberpaged

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/dj-doMains/rampaged"
)

type tListOrdersRequest struct {
	rampaged.PageRequest
	Status string `query:"status"`
}

type tOrder struct {
	Number string `json:"number"`
	Status string `json:"status"`
}

var _ordersDescriptor = rampaged.NewDescriptor("orders",
	rampaged.Field("number"),
	rampaged.Field("status"),
	rampaged.Field("internal").OrderedBy(""),
)

func newTestApp(opts *rampaged.Options) *fiber.App {
	app := fiber.New()

	app.Get("/customers/:id/orders", func(c *fiber.Ctx) error {
		var req tListOrdersRequest
		if err := Bind(c, opts, &req); err != nil {
			return c.Status(Status(err)).JSON(fiber.Map{"error": err.Error()})
		}

		source := rampaged.FromSlice(orders(25)).WhereIf(req.Status != "", func(o tOrder) bool {
			return o.Status == req.Status
		})

		query, err := rampaged.OrderByIf[tOrder](source, req.ShouldSort(), req.SortBy, _ordersDescriptor)
		if err != nil {
			return c.Status(Status(err)).JSON(fiber.Map{"error": err.Error()})
		}

		page, err := rampaged.ToPage(c.Context(), query, &req)
		if err != nil {
			return c.Status(Status(err)).JSON(fiber.Map{"error": err.Error()})
		}

		return JSON(c, opts, "customer.orders", page, &req)
	}).Name("customer.orders")

	return app
}

func orders(n int) []tOrder {
	ret := make([]tOrder, 0, n)
	for i := 1; i <= n; i++ {
		ret = append(ret, tOrder{
			Number: "A-" + strconv.Itoa(100+i),
			Status: map[bool]string{true: "open", false: "paid"}[i%5 != 0],
		})
	}

	return ret
}

func Test_ListHandler(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		wantCode     int
		wantTotal    int64
		wantFirst    string
		wantPrevious *string
		wantNext     *string
	}{
		{
			name:         "middle page",
			target:       "http://api.example.com/customers/7/orders?pageNumber=2&pageSize=10",
			wantCode:     http.StatusOK,
			wantTotal:    25,
			wantFirst:    "A-111",
			wantPrevious: ptr("http://api.example.com/customers/7/orders?pageNumber=1&pageSize=10"),
			wantNext:     ptr("http://api.example.com/customers/7/orders?pageNumber=3&pageSize=10"),
		},
		{
			name:      "filtered and sorted",
			target:    "http://api.example.com/customers/7/orders?status=paid&sortBy=-number",
			wantCode:  http.StatusOK,
			wantTotal: 5,
			wantFirst: "A-125",
		},
		{
			name:      "term aliased away is ignored",
			target:    "http://api.example.com/customers/7/orders?sortBy=internal",
			wantCode:  http.StatusOK,
			wantTotal: 25,
			wantFirst: "A-101",
			wantNext:  ptr("http://api.example.com/customers/7/orders?pageNumber=2&pageSize=10&sortBy=internal"),
		},
		{
			name:     "unknown sort field",
			target:   "http://api.example.com/customers/7/orders?sortBy=total",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "negative page size",
			target:   "http://api.example.com/customers/7/orders?pageSize=-3",
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newTestApp(rampaged.NewOptions()).Test(httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.wantCode, resp.StatusCode)
			if tt.wantCode != http.StatusOK {
				return
			}

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var page rampaged.Page[tOrder]
			require.NoError(t, json.Unmarshal(body, &page))
			require.Equal(t, tt.wantTotal, page.TotalCount)
			require.Equal(t, tt.wantFirst, page.Items[0].Number)

			var md rampaged.Metadata
			require.NoError(t, json.Unmarshal([]byte(resp.Header.Get(rampaged.HeaderPagination)), &md))
			require.Equal(t, tt.wantPrevious, md.PreviousPageLink)
			require.Equal(t, tt.wantNext, md.NextPageLink)
		})
	}
}

func Test_Router_UnknownRoute(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		_, err := Router(c).Link("missing", nil)
		require.Error(t, err)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func Test_Status(t *testing.T) {
	require.Equal(t, fiber.StatusBadRequest, Status(&rampaged.ValidationError{SortBy: "x"}))
	require.Equal(t, fiber.StatusNotFound, Status(fiber.ErrNotFound))
	require.Equal(t, fiber.StatusInternalServerError, Status(errors.New("boom")))
}

func ptr(s string) *string {
	return &s
}
