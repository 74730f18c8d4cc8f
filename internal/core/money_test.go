package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulatorIsExact(t *testing.T) {
	var empty Accumulator
	assert.Equal(t, 0.0, empty.Float())

	var acc Accumulator
	for i := 0; i < 10; i++ {
		acc.Add(0.1)
	}
	assert.Equal(t, 1.0, acc.Float())
}

func TestSub(t *testing.T) {
	assert.Equal(t, -0.1, Sub(0.2, 0.3))
	assert.Equal(t, 5000.0, Sub(6700, 1700))
}
