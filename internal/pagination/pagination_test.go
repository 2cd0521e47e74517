package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	p := LimitOffset{}
	p.Defaults()
	assert.Equal(t, 50, p.Limit)
	assert.Equal(t, 0, p.Offset)

	q := LimitOffset{Limit: 10, Offset: 20}
	q.Defaults()
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, 20, q.Offset)
}

func TestNewListResponse(t *testing.T) {
	t.Run("nil_data_becomes_empty_slice", func(t *testing.T) {
		resp := NewListResponse[int](nil, 10, 0, 0)
		assert.NotNil(t, resp.Data)
		assert.Empty(t, resp.Data)
	})

	t.Run("total_is_independent_of_window", func(t *testing.T) {
		resp := NewListResponse([]string{"a", "b"}, 2, 4, 17)
		assert.Len(t, resp.Data, 2)
		assert.Equal(t, 2, resp.Limit)
		assert.Equal(t, 4, resp.Offset)
		assert.Equal(t, int64(17), resp.Total)
	})
}
