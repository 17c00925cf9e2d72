package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rise-and-shine/docview/pagination"
)

func TestRequest_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    pagination.Request
		opts     []pagination.Option
		expected pagination.Request
	}{
		{
			name:     "defaults",
			input:    pagination.Request{},
			expected: pagination.Request{Page: 1, PageSize: 20},
		},
		{
			name:     "negative values",
			input:    pagination.Request{Page: -3, PageSize: -1},
			expected: pagination.Request{Page: 1, PageSize: 20},
		},
		{
			name:     "size capped",
			input:    pagination.Request{Page: 2, PageSize: 500},
			expected: pagination.Request{Page: 2, PageSize: 100},
		},
		{
			name:     "custom options",
			input:    pagination.Request{PageSize: 80},
			opts:     []pagination.Option{pagination.WithMaxPageSize(50), pagination.WithDefaultPageSize(10)},
			expected: pagination.Request{Page: 1, PageSize: 50},
		},
		{
			name:     "valid input untouched",
			input:    pagination.Request{Page: 4, PageSize: 15},
			expected: pagination.Request{Page: 4, PageSize: 15},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.input
			req.Normalize(tc.opts...)
			assert.Equal(t, tc.expected, req)
		})
	}
}

func TestRequest_LimitOffset(t *testing.T) {
	req := pagination.Request{Page: 3, PageSize: 15}

	assert.Equal(t, 15, req.Limit())
	assert.Equal(t, 30, req.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(42, pagination.Request{Page: 2, PageSize: 20})

	assert.Equal(t, pagination.Meta{Total: 42, Page: 2, PageSize: 20}, meta)
}
