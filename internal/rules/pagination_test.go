package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clinicart/internal/rules"
)

func TestPaginate_TwentyFiveItems(t *testing.T) {
	tests := []struct {
		page, start, end int
	}{
		{1, 0, 10},
		{2, 10, 20},
		{3, 20, 25},
		{4, 25, 25},
		{1000, 25, 25},
	}
	for _, tt := range tests {
		w := rules.Paginate(tt.page, 10, 25)
		assert.Equal(t, tt.start, w.Start, "page %d", tt.page)
		assert.Equal(t, tt.end, w.End, "page %d", tt.page)
		assert.Equal(t, 3, w.TotalPages, "page %d", tt.page)
		assert.Equal(t, tt.page, w.Page)
	}
}

func TestPaginate_Defaults(t *testing.T) {
	w := rules.Paginate(0, 0, 25)
	assert.Equal(t, rules.DefaultPage, w.Page)
	assert.Equal(t, rules.DefaultLimit, w.Limit)
	assert.Equal(t, 0, w.Start)
	assert.Equal(t, 10, w.End)

	w = rules.Paginate(-3, -1, 5)
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, 5, w.End)
	assert.Equal(t, 1, w.TotalPages)
}

func TestPaginate_EmptyCollection(t *testing.T) {
	w := rules.Paginate(1, 10, 0)
	assert.Equal(t, 0, w.Start)
	assert.Equal(t, 0, w.End)
	assert.Equal(t, 0, w.TotalPages)
}

func TestPaginate_HugeLimit(t *testing.T) {
	w := rules.Paginate(1, int(^uint(0)>>1), 7)
	assert.Equal(t, 0, w.Start)
	assert.Equal(t, 7, w.End)
	assert.Equal(t, 1, w.TotalPages)
}
