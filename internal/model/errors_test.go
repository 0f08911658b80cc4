package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "cell_occupied", ErrorKind(ErrCellOccupied))
	assert.Equal(t, "placement", ErrorKind(ErrPlacement))
	assert.Equal(t, "equation_false", ErrorKind(ErrEquationFalse))
	assert.Equal(t, "internal", ErrorKind(assert.AnError))
	assert.Equal(t, "", ErrorKind(nil))
}
