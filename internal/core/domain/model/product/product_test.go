package product_test

import (
	"testing"

	"orderboard/internal/core/domain/model/product"
	"orderboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct(t *testing.T) product.Product {
	t.Helper()
	p, err := product.NewProduct(55,
		[]product.Variant{
			product.NewVariant(550, "Black / M", 9001),
			product.NewVariant(551, "Black / L", 0),
		},
		[]product.Image{
			product.NewImage(9000, "https://cdn.example/front.jpg"),
			product.NewImage(9001, "https://cdn.example/black-m.jpg"),
		},
	)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("valid product", func(t *testing.T) {
		p := sampleProduct(t)
		require.NoError(t, p.Validate())
		assert.Equal(t, int64(55), p.ID())
		assert.Len(t, p.Variants(), 2)
		assert.Len(t, p.Images(), 2)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := product.NewProduct(0, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_Lookups(t *testing.T) {
	p := sampleProduct(t)

	t.Run("variant by id", func(t *testing.T) {
		v, ok := p.VariantByID(550)
		require.True(t, ok)
		assert.Equal(t, "Black / M", v.Title())
		assert.Equal(t, int64(9001), v.ImageID())

		_, ok = p.VariantByID(999)
		assert.False(t, ok)
	})

	t.Run("image by id", func(t *testing.T) {
		img, ok := p.ImageByID(9001)
		require.True(t, ok)
		assert.Equal(t, "https://cdn.example/black-m.jpg", img.Src())

		_, ok = p.ImageByID(1)
		assert.False(t, ok)
	})

	t.Run("first image", func(t *testing.T) {
		img, ok := p.FirstImage()
		require.True(t, ok)
		assert.Equal(t, "https://cdn.example/front.jpg", img.Src())
	})

	t.Run("first image of image-less product", func(t *testing.T) {
		bare, err := product.NewProduct(56, nil, nil)
		require.NoError(t, err)
		_, ok := bare.FirstImage()
		assert.False(t, ok)
	})
}
