package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jewelsoft/saraf-api/internal/domain/entity"
)

func TestLicenseValid(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// No expiry set means the license never lapses
	shop := &entity.Shop{}
	assert.True(t, shop.LicenseValid(now))

	future := now.Add(24 * time.Hour)
	shop.LicenseExpiresAt = &future
	assert.True(t, shop.LicenseValid(now))

	past := now.Add(-time.Minute)
	shop.LicenseExpiresAt = &past
	assert.False(t, shop.LicenseValid(now))

	// Expiry is exclusive: the license is lapsed at the exact expiry instant
	shop.LicenseExpiresAt = &now
	assert.False(t, shop.LicenseValid(now))
}
