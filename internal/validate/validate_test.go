package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	_, ok := Email("rosa@vendorsphere.test")
	assert.True(t, ok)
	got, ok := Email("  rosa@vendorsphere.test  ")
	assert.True(t, ok)
	assert.Equal(t, "rosa@vendorsphere.test", got)

	for _, bad := range []string{"", "rosa", "rosa@", "@vendorsphere.test", "rosa@host"} {
		_, ok := Email(bad)
		assert.False(t, ok, bad)
	}
}

func TestSKU(t *testing.T) {
	_, ok := SKU("HP-001")
	assert.True(t, ok)
	for _, bad := range []string{"", "ab", "has space", "sku_with_underscore"} {
		_, ok := SKU(bad)
		assert.False(t, ok, bad)
	}
}

func TestQuantity(t *testing.T) {
	n, ok := Quantity(" 12 ")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	for _, bad := range []string{"", "0", "-3", "1.5", "ten"} {
		_, ok := Quantity(bad)
		assert.False(t, ok, bad)
	}
}

func TestReference(t *testing.T) {
	got, ok := Reference(" PO-1 ")
	assert.True(t, ok)
	assert.Equal(t, "PO-1", got)
	_, ok = Reference("   ")
	assert.False(t, ok)
}

func TestPassword(t *testing.T) {
	assert.True(t, Password("Passw0rd!"))
	assert.False(t, Password("short1A"))
	assert.False(t, Password("alllowercase1"))
	assert.False(t, Password("ALLUPPERCASE1"))
	assert.False(t, Password("NoDigitsHere"))
}
