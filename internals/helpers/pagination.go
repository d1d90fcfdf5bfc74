package helper

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage = 1
	DefaultSize = 20
	MaxSize     = 100
)

// Pagination carries the resolved window for a list query plus the totals
// echoed back to the caller.
type Pagination struct {
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Start int   `json:"-"`
	Pages int   `json:"pages"`
	Total int64 `json:"total"`
}

// Paginate resolves page/size from the query string (body fallback is the
// query parser's concern upstream) against the total record count.
func Paginate(c *fiber.Ctx, total int64) Pagination {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}
	size := atoiDefault(c.Query("size"), DefaultSize)
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	pages := int(math.Ceil(float64(total) / float64(size)))
	if pages < 1 {
		pages = 1
	}
	if page > pages {
		page = pages
	}

	return Pagination{
		Page:  page,
		Size:  size,
		Start: (page - 1) * size,
		Pages: pages,
		Total: total,
	}
}

// OrderClause builds a safe ORDER BY from orderBy/sortBy query params using a
// column whitelist. Unknown keys fall back to the default.
func OrderClause(c *fiber.Ctx, allowed map[string]string, defaultKey string) (string, error) {
	key := strings.TrimSpace(c.Query("orderBy"))
	if key == "" {
		key = defaultKey
	}
	col, ok := allowed[key]
	if !ok {
		col, ok = allowed[defaultKey]
		if !ok {
			return "", fmt.Errorf("no valid default sort key")
		}
	}

	dir := strings.ToUpper(strings.TrimSpace(c.Query("sortBy")))
	if dir != "ASC" && dir != "DESC" {
		dir = "DESC"
	}
	return col + " " + dir, nil
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
