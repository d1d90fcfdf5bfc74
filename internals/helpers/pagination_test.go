package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paginateFor(t *testing.T, query string, total int64) Pagination {
	t.Helper()

	app := fiber.New()
	var got Pagination
	app.Get("/list", func(c *fiber.Ctx) error {
		got = Paginate(c, total)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/list"+query, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func orderFor(t *testing.T, query string, allowed map[string]string, defaultKey string) (string, error) {
	t.Helper()

	app := fiber.New()
	var gotOrder string
	var gotErr error
	app.Get("/list", func(c *fiber.Ctx) error {
		gotOrder, gotErr = OrderClause(c, allowed, defaultKey)
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/list"+query, nil))
	require.NoError(t, err)
	return gotOrder, gotErr
}

func TestPaginateDefaults(t *testing.T) {
	p := paginateFor(t, "", 45)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultSize, p.Size)
	assert.Equal(t, 0, p.Start)
	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, int64(45), p.Total)
}

func TestPaginateWindow(t *testing.T) {
	p := paginateFor(t, "?page=2&size=10", 45)

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Size)
	assert.Equal(t, 10, p.Start)
	assert.Equal(t, 5, p.Pages)
}

func TestPaginateClampsPageToLastPage(t *testing.T) {
	p := paginateFor(t, "?page=99&size=10", 45)

	assert.Equal(t, 5, p.Page)
	assert.Equal(t, 40, p.Start)
}

func TestPaginateClampsSize(t *testing.T) {
	p := paginateFor(t, "?size=5000", 45)

	assert.Equal(t, MaxSize, p.Size)
}

func TestPaginateGarbageInput(t *testing.T) {
	p := paginateFor(t, "?page=abc&size=-3", 0)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultSize, p.Size)
	assert.Equal(t, 1, p.Pages)
}

func TestOrderClauseWhitelist(t *testing.T) {
	allowed := map[string]string{"createdAt": "created_at", "amount": "amount"}

	order, err := orderFor(t, "?orderBy=amount&sortBy=asc", allowed, "createdAt")
	require.NoError(t, err)
	assert.Equal(t, "amount ASC", order)

	// unknown key falls back to the default, unknown direction to DESC
	order, err = orderFor(t, "?orderBy=password&sortBy=sideways", allowed, "createdAt")
	require.NoError(t, err)
	assert.Equal(t, "created_at DESC", order)

	order, err = orderFor(t, "", allowed, "createdAt")
	require.NoError(t, err)
	assert.Equal(t, "created_at DESC", order)
}

func TestOrderClauseBadDefault(t *testing.T) {
	_, err := orderFor(t, "", map[string]string{}, "createdAt")
	assert.Error(t, err)
}
