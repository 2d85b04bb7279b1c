package listquery

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Params are the generic list parameters parsed from a request query string.
// Everything except the reserved keys is treated as an equality filter.
type Params struct {
	Page       int
	Limit      int
	Sort       string
	SearchTerm string
	Fields     string
	Filters    map[string]string
}

// reserved query keys that never become filters
var reservedKeys = map[string]bool{
	"page":       true,
	"limit":      true,
	"sort":       true,
	"searchTerm": true,
	"fields":     true,
}

// Parse extracts list parameters from the request. filterKeys whitelists the
// query keys allowed to act as column filters; anything else is ignored.
func Parse(c *fiber.Ctx, filterKeys ...string) Params {
	p := Params{
		Page:       parsePositive(c.Query("page"), defaultPage),
		Limit:      parsePositive(c.Query("limit"), defaultLimit),
		Sort:       strings.TrimSpace(c.Query("sort")),
		SearchTerm: strings.TrimSpace(c.Query("searchTerm")),
		Fields:     strings.TrimSpace(c.Query("fields")),
		Filters:    map[string]string{},
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	for _, key := range filterKeys {
		if reservedKeys[key] {
			continue
		}
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			p.Filters[key] = v
		}
	}
	return p
}

// Meta describes one page of a list response.
type Meta struct {
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	Total     int64 `json:"total"`
	TotalPage int   `json:"totalPage"`
}

// Builder composes search, filter, sort, pagination and field selection over
// a GORM query.
type Builder struct {
	db     *gorm.DB
	params Params
}

// New creates a builder over a base query (typically db.Model(&T{}) with any
// fixed conditions already applied).
func New(db *gorm.DB, params Params) *Builder {
	return &Builder{db: db, params: params}
}

// Search adds a case-insensitive LIKE across the given columns when a search
// term is present.
func (b *Builder) Search(columns ...string) *Builder {
	if b.params.SearchTerm == "" || len(columns) == 0 {
		return b
	}
	term := "%" + b.params.SearchTerm + "%"
	query := b.db
	clause := b.db.Session(&gorm.Session{NewDB: true})
	for i, col := range columns {
		if i == 0 {
			clause = clause.Where(col+" LIKE ?", term)
		} else {
			clause = clause.Or(col+" LIKE ?", term)
		}
	}
	b.db = query.Where(clause)
	return b
}

// Filter applies the whitelisted equality filters.
func (b *Builder) Filter() *Builder {
	for col, val := range b.params.Filters {
		b.db = b.db.Where(col+" = ?", val)
	}
	return b
}

// Sort orders the result. "field" sorts ascending, "-field" descending; the
// default is newest first.
func (b *Builder) Sort() *Builder {
	sort := b.params.Sort
	if sort == "" {
		b.db = b.db.Order("created_at desc")
		return b
	}
	if strings.HasPrefix(sort, "-") {
		b.db = b.db.Order(strings.TrimPrefix(sort, "-") + " desc")
	} else {
		b.db = b.db.Order(sort + " asc")
	}
	return b
}

// Fields narrows the selected columns ("a,b,c").
func (b *Builder) Fields() *Builder {
	if b.params.Fields == "" {
		return b
	}
	cols := strings.Split(b.params.Fields, ",")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	b.db = b.db.Select(cols)
	return b
}

// Paginate applies offset/limit from the parsed page parameters.
func (b *Builder) Paginate() *Builder {
	offset := (b.params.Page - 1) * b.params.Limit
	b.db = b.db.Offset(offset).Limit(b.params.Limit)
	return b
}

// Find executes the composed query into dest and returns pagination meta.
// The count runs without offset/limit so Total covers the full result set.
func (b *Builder) Find(dest interface{}) (Meta, error) {
	var total int64
	if err := b.db.Session(&gorm.Session{}).Offset(-1).Limit(-1).Count(&total).Error; err != nil {
		return Meta{}, err
	}
	if err := b.db.Find(dest).Error; err != nil {
		return Meta{}, err
	}
	return NewMeta(b.params.Page, b.params.Limit, total), nil
}

// NewMeta computes the page math for a list response.
func NewMeta(page, limit int, total int64) Meta {
	totalPage := 0
	if limit > 0 {
		totalPage = int((total + int64(limit) - 1) / int64(limit))
	}
	return Meta{Page: page, Limit: limit, Total: total, TotalPage: totalPage}
}

func parsePositive(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
