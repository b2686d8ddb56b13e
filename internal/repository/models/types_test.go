package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSlice_ValueAndScan(t *testing.T) {
	v, err := StringSlice(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringSlice{"quiz:manage", "notifikasi:send"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["quiz:manage","notifikasi:send"]`, v)

	var s StringSlice
	require.NoError(t, s.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringSlice{"a", "b"}, s)

	require.NoError(t, s.Scan(nil))
	assert.Equal(t, StringSlice{}, s)

	require.NoError(t, s.Scan("null"))
	assert.Equal(t, StringSlice{}, s)

	assert.Error(t, s.Scan(42))
}

func TestAnswerMap_Scan(t *testing.T) {
	var m AnswerMap
	require.NoError(t, m.Scan([]byte(`{"q1":"A","q2":"C"}`)))
	assert.Equal(t, AnswerMap{"q1": "A", "q2": "C"}, m)

	require.NoError(t, m.Scan(nil))
	assert.Empty(t, m)

	assert.Error(t, m.Scan("{not json"))
}

func TestJSONMap_Value(t *testing.T) {
	v, err := JSONMap(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)

	v, err = JSONMap{"poin": 10}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"poin":10}`, v)
}
