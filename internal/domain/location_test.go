package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderBuildingTypes(t *testing.T) {
	got := OrderBuildingTypes([]string{"Classroom", "Lab", "Warehouse", "Annex", "Office", "Lab"})
	assert.Equal(t, []string{"Warehouse", "Office", "Classroom", "Annex", "Lab"}, got)

	assert.Empty(t, OrderBuildingTypes(nil))
}
