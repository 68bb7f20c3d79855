package rop

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestCreateItems_DefaultMetadata(t *testing.T) {
	t.Parallel()

	res := CreateItems([]string{"a", "b", "c"}, 10)

	assert.True(t, res.IsSuccess())
	assert.Equal(t, []string{"a", "b", "c"}, res.Data())
	assert.Nil(t, res.Messages())
	assert.Equal(t, &Metadata{Count: 3, Total: intPtr(10)}, res.Metadata())
}

func TestCreateItems_Options(t *testing.T) {
	t.Parallel()

	res := CreateItems([]int{1, 2}, 3, WithPageSize(2), WithPageIndex(1))

	assert.Equal(t, &Metadata{
		Count:     2,
		Total:     intPtr(3),
		PageSize:  intPtr(2),
		PageIndex: intPtr(1),
	}, res.Metadata())

	res = CreateItems([]int{1, 2}, 3, WithCount(5))
	assert.Equal(t, 5, res.Metadata().Count)
}

func TestCreateItems_WithoutTotal(t *testing.T) {
	t.Parallel()

	res := CreateItems([]int{1, 2}, 0, WithoutTotal(), WithPageSize(2))

	assert.True(t, res.IsSuccess())
	assert.Equal(t, &Metadata{Count: 2, PageSize: intPtr(2)}, res.Metadata())

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[1,2],"status":"Success","metadata":{"count":2,"pageSize":2}}`, string(b))
}

func TestNewItems_WithoutMetadata(t *testing.T) {
	t.Parallel()

	res := NewItems([]int{1, 2}, Success, nil, nil)

	assert.Equal(t, []int{1, 2}, res.Data())
	assert.Nil(t, res.Metadata())
}

func TestItems_MetadataIsCopied(t *testing.T) {
	t.Parallel()

	res := CreateItems([]int{1}, 1)
	meta := res.Metadata()
	meta.Count = 99
	*meta.Total = 99

	assert.Equal(t, 1, res.Metadata().Count)
	assert.Equal(t, 1, *res.Metadata().Total)
}

func TestItemsFrom(t *testing.T) {
	t.Parallel()

	res := ItemsFrom[int, string](CreateWithError[int](NotFound, "none"))

	assert.Equal(t, NotFound, res.Status())
	assert.Equal(t, []string{"none"}, res.Messages())
	assert.Nil(t, res.Data())
	assert.Nil(t, res.Metadata())
}

func TestItems_JSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(CreateItems([]int{1, 2}, 10, WithPageSize(2)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[1,2],"status":"Success","metadata":{"count":2,"total":10,"pageSize":2}}`, string(b))

	b, err = json.Marshal(ItemsFrom[int, int](CreateWithError[int](Conflict)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":null,"status":"Conflict"}`, string(b))

	var back Items[int]
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, Conflict, back.Status())
	assert.Nil(t, back.Metadata())
}
