package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingChartService.Error(), ErrInvalidInterval.Error())
	assert.Contains(t, ErrMissingChartService.Error(), "chart service")
	assert.Contains(t, ErrInvalidInterval.Error(), "interval")
}
