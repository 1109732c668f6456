package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

func TestValidateCatalog_Fixture(t *testing.T) {
	report := ValidateCatalog(loadTestCatalog(t))

	assert.True(t, report.OK())
	assert.NoError(t, report.Err())
	assert.Empty(t, report.Issues)
	assert.Equal(t, 46, report.PartCount)
}

func TestValidateCatalog_Problems(t *testing.T) {
	catalog := loadTestCatalog(t)
	catalog.GPU = nil
	catalog.OS = nil
	catalog.CPU = append(catalog.CPU, entity.Part{Name: "Bare CPU"})
	catalog.PSU = append(catalog.PSU, entity.Part{Name: "No label PSU", Price: 5000})

	report := ValidateCatalog(catalog)
	assert.False(t, report.OK())
	// a missing OS category is fine
	assert.Equal(t, []entity.Category{entity.CategoryGPU}, report.EmptyCategories)

	err := report.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPartsNotFound)

	var problems []string
	for _, issue := range report.Issues {
		problems = append(problems, issue.String())
	}
	assert.ElementsMatch(t, []string{
		"cpu[9] Bare CPU: price is missing or not positive",
		"cpu[9] Bare CPU: socket is missing",
		"psu[6] No label PSU: wattage is missing or unparseable",
	}, problems)
}

func TestValidateCatalog_Nil(t *testing.T) {
	report := ValidateCatalog(nil)
	assert.Equal(t, entity.RequiredCategories, report.EmptyCategories)
	assert.Zero(t, report.PartCount)
}
