package listquery

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func parseForQuery(t *testing.T, query string, filterKeys ...string) Params {
	t.Helper()
	app := fiber.New()
	var got Params
	app.Get("/list", func(c *fiber.Ctx) error {
		got = Parse(c, filterKeys...)
		return nil
	})
	req := httptest.NewRequest("GET", "/list?"+query, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	return got
}

func TestParseDefaults(t *testing.T) {
	p := parseForQuery(t, "")
	if p.Page != 1 || p.Limit != 10 {
		t.Fatalf("defaults = page %d limit %d, want 1/10", p.Page, p.Limit)
	}
	if p.Sort != "" || p.SearchTerm != "" || len(p.Filters) != 0 {
		t.Fatalf("expected empty sort/search/filters, got %+v", p)
	}
}

func TestParse(t *testing.T) {
	p := parseForQuery(t, "page=3&limit=25&sort=-created_at&searchTerm=gold&target_user=SILVER&bogus=x",
		"target_user")
	if p.Page != 3 || p.Limit != 25 {
		t.Fatalf("page/limit = %d/%d, want 3/25", p.Page, p.Limit)
	}
	if p.Sort != "-created_at" || p.SearchTerm != "gold" {
		t.Fatalf("sort/search = %q/%q", p.Sort, p.SearchTerm)
	}
	if p.Filters["target_user"] != "SILVER" {
		t.Fatalf("filters = %v, want target_user=SILVER", p.Filters)
	}
	if _, ok := p.Filters["bogus"]; ok {
		t.Fatalf("non-whitelisted key must not become a filter")
	}
}

func TestParseClampsAndRejectsGarbage(t *testing.T) {
	p := parseForQuery(t, "page=-2&limit=5000")
	if p.Page != 1 {
		t.Fatalf("negative page must fall back to 1, got %d", p.Page)
	}
	if p.Limit != 100 {
		t.Fatalf("limit must clamp to 100, got %d", p.Limit)
	}

	p = parseForQuery(t, "page=abc&limit=0")
	if p.Page != 1 || p.Limit != 10 {
		t.Fatalf("garbage page/limit must fall back to defaults, got %d/%d", p.Page, p.Limit)
	}
}

func TestParseReservedKeyNeverFilters(t *testing.T) {
	p := parseForQuery(t, "sort=price", "sort")
	if _, ok := p.Filters["sort"]; ok {
		t.Fatalf("reserved keys must not act as filters")
	}
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		page, limit int
		total       int64
		wantPages   int
	}{
		{page: 1, limit: 10, total: 0, wantPages: 0},
		{page: 1, limit: 10, total: 10, wantPages: 1},
		{page: 2, limit: 10, total: 11, wantPages: 2},
		{page: 1, limit: 3, total: 7, wantPages: 3},
		{page: 1, limit: 0, total: 7, wantPages: 0},
	}

	for _, tt := range tests {
		m := NewMeta(tt.page, tt.limit, tt.total)
		if m.TotalPage != tt.wantPages {
			t.Fatalf("NewMeta(%d, %d, %d).TotalPage = %d, want %d",
				tt.page, tt.limit, tt.total, m.TotalPage, tt.wantPages)
		}
		if m.Page != tt.page || m.Limit != tt.limit || m.Total != tt.total {
			t.Fatalf("NewMeta echo mismatch: %+v", m)
		}
	}
}
