package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/marquee/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  pagination.Params
	}{
		{"defaults", "", pagination.Params{Page: 1, Limit: 20}},
		{"explicit", "?page=3&limit=5", pagination.Params{Page: 3, Limit: 5}},
		{"garbage", "?page=x&limit=y", pagination.Params{Page: 1, Limit: 20}},
		{"non_positive", "?page=0&limit=-4", pagination.Params{Page: 1, Limit: 20}},
		{"limit_capped", "?limit=1000", pagination.Params{Page: 1, Limit: 100}},
		{"page_capped", "?page=100000000000000000&limit=100", pagination.Params{Page: pagination.MaxPage, Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/comments"+tt.query, nil)
			assert.Equal(t, tt.want, pagination.FromRequest(request))
		})
	}
}

func TestWindow(t *testing.T) {
	params := pagination.Params{Page: 2, Limit: 10}

	start, end := params.Window(25)
	assert.Equal(t, 10, start)
	assert.Equal(t, 20, end)

	start, end = params.Window(15)
	assert.Equal(t, 10, start)
	assert.Equal(t, 15, end)

	start, end = params.Window(5)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)
}

func TestWindow_HugePage(t *testing.T) {
	items := []int{1, 2, 3}

	for _, params := range []pagination.Params{
		{Page: pagination.MaxPage, Limit: pagination.MaxLimit},
		{Page: 100000000000000000, Limit: 100},
	} {
		start, end := params.Window(len(items))
		assert.Equal(t, len(items), start)
		assert.Equal(t, len(items), end)
		assert.Empty(t, items[start:end])
	}

	request := httptest.NewRequest("GET", "/comments?page=100000000000000000&limit=100", nil)
	start, end := pagination.FromRequest(request).Window(len(items))
	assert.Equal(t, 3, start)
	assert.Equal(t, 3, end)
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(pagination.Params{Page: 1, Limit: 20}, 41)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 41, meta.Total)
}
