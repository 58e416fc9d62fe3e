package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFromQuery(t *testing.T, query string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/"+query, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	return got
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
	}{
		{"tanpa query pakai default", "", 1, 5},
		{"page dan per_page normal", "?page=2&per_page=10", 2, 10},
		{"limit sebagai alias per_page", "?page=3&limit=7", 3, 7},
		{"per_page menang atas limit", "?per_page=8&limit=20", 1, 8},
		{"page negatif dinormalkan", "?page=-1", 1, 5},
		{"per_page nol pakai default", "?per_page=0", 1, 5},
		{"per_page bukan angka pakai default", "?per_page=abc", 1, 5},
		{"per_page dibatasi maksimum", "?per_page=500", 1, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveFromQuery(t, tt.query, 5, 50)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPerPage, got.PerPage)
		})
	}
}

func TestPagingLimitOffset(t *testing.T) {
	p := Paging{Page: 3, PerPage: 10}
	assert.Equal(t, 10, p.Limit())
	assert.Equal(t, 20, p.Offset())
}

func TestBuildMeta(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		paging         Paging
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"kosong", 0, Paging{Page: 1, PerPage: 5}, 0, false, false},
		{"satu halaman penuh", 5, Paging{Page: 1, PerPage: 5}, 1, false, false},
		{"halaman pertama dari tiga", 11, Paging{Page: 1, PerPage: 5}, 3, true, false},
		{"halaman tengah", 11, Paging{Page: 2, PerPage: 5}, 3, true, true},
		{"halaman terakhir", 11, Paging{Page: 3, PerPage: 5}, 3, false, true},
		{"page melebihi total", 11, Paging{Page: 9, PerPage: 5}, 3, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := BuildMeta(tt.total, tt.paging)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.wantTotalPages, meta.TotalPages)
			assert.Equal(t, tt.wantHasNext, meta.HasNext)
			assert.Equal(t, tt.wantHasPrev, meta.HasPrev)
		})
	}
}
