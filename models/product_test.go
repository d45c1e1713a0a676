package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorAvailable(t *testing.T) {
	p := Product{Colors: ColorList{
		{Name: "Black", Value: "#000", Available: true},
		{Name: "White", Value: "#fff", Available: false},
	}}

	assert.True(t, p.ColorAvailable("Black"))
	assert.False(t, p.ColorAvailable("White"), "listed but unavailable")
	assert.False(t, p.ColorAvailable("Red"), "not listed")
}

func TestHasSize(t *testing.T) {
	p := Product{Sizes: StringList{"S", "M", "L"}}

	assert.True(t, p.HasSize("M"))
	assert.False(t, p.HasSize("XL"))
}

func TestBeforeSaveRecomputesInStock(t *testing.T) {
	p := Product{StockQuantity: 3, InStock: false}
	require.NoError(t, p.BeforeSave(nil))
	assert.True(t, p.InStock)

	p = Product{StockQuantity: 0, InStock: true}
	require.NoError(t, p.BeforeSave(nil))
	assert.False(t, p.InStock)
}

func TestColorListRoundTrip(t *testing.T) {
	in := ColorList{{Name: "Black", Value: "#000", Available: true}}

	v, err := in.Value()
	require.NoError(t, err)

	var out ColorList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}

func TestStringListNil(t *testing.T) {
	var l StringList
	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}
