package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jewelsoft/saraf-api/pkg/utils"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "sharma-jewellers", utils.Slugify("Sharma Jewellers"))
	assert.Equal(t, "raj-sons", utils.Slugify("Raj & Sons"))
	assert.Equal(t, "a-b", utils.Slugify("--a---b--"))
}

func TestNextBillNo(t *testing.T) {
	assert.Equal(t, "BILL-0001", utils.NextBillNo("BILL", ""))
	assert.Equal(t, "BILL-0043", utils.NextBillNo("BILL", "BILL-0042"))
	assert.Equal(t, "GST-0001", utils.NextBillNo("GST", "garbage"))
	// Sequence width grows past four digits without truncating
	assert.Equal(t, "BILL-10000", utils.NextBillNo("BILL", "BILL-9999"))
}
