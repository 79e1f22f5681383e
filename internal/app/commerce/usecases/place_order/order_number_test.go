package place_order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderNumber(t *testing.T) {
	now := time.UnixMilli(1767225600123)
	a, b := NewOrderNumber(now), NewOrderNumber(now)

	assert.Regexp(t, `^ORD-1767225600123-[0-9a-f]{8}$`, a)
	assert.NotEqual(t, a, b)
}
