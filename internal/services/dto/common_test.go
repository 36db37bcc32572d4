package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequest_Normalize(t *testing.T) {
	cases := []struct {
		name     string
		in       PageRequest
		wantPage int
		wantSize int
	}{
		{"zero value gets defaults", PageRequest{}, 0, 20},
		{"negative page reset", PageRequest{Page: -3, Size: 10}, 0, 10},
		{"size capped at 100", PageRequest{Page: 2, Size: 500}, 2, 100},
		{"valid values untouched", PageRequest{Page: 1, Size: 5}, 1, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Normalize()
			assert.Equal(t, tc.wantPage, tc.in.Page)
			assert.Equal(t, tc.wantSize, tc.in.Size)
		})
	}
}

func TestNewPage_TotalPages(t *testing.T) {
	assert.Equal(t, 3, NewPage([]int{1, 2}, 5, 0, 2).TotalPages)
	assert.Equal(t, 1, NewPage([]int{1, 2, 3}, 3, 0, 20).TotalPages)
	assert.Equal(t, 0, NewPage([]int{}, 0, 0, 20).TotalPages)
}

// Пустая страница отдает "content": [], а не null
func TestNewPage_EmptyContentMarshalsAsArray(t *testing.T) {
	page := NewPage[string](nil, 0, 0, 20)

	raw, err := json.Marshal(page)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"content":[]`)
	assert.Contains(t, string(raw), `"totalElements":0`)
}
