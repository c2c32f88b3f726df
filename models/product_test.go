package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p := NewProduct("https://example.com/p")

	assert.Equal(t, "https://example.com/p", p.URL)
	assert.Nil(t, p.Name)
	assert.Nil(t, p.Price)
	assert.Empty(t, p.Images)
	assert.Empty(t, p.Extras)
}

func TestProductField(t *testing.T) {
	sku := "006V-0033777"
	p := NewProduct("https://example.com/p")
	p.SKU = &sku

	v, ok := p.Field("sku")
	require.True(t, ok)
	assert.Equal(t, &sku, v)

	v, ok = p.Field("price")
	require.True(t, ok)
	assert.Nil(t, v.(*string))

	_, ok = p.Field("weight")
	assert.False(t, ok)
}

func TestUnclassifiedErrorUnwraps(t *testing.T) {
	cause := assert.AnError
	err := &UnclassifiedError{Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), cause.Error())
}
