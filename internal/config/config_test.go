package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DEFAULT_SERVICE_DURATION", "")
	t.Setenv("TIME_SLOT_LABELS", "")
	t.Setenv("ADMIN_EMAILS", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 120, cfg.DefaultServiceDuration)
	assert.Equal(t, []string{"9:00 AM", "11:15 AM", "1:15 PM", "3:00 PM"}, cfg.TimeSlotLabels)
	assert.Empty(t, cfg.AdminEmails)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DEFAULT_SERVICE_DURATION", "45")
	t.Setenv("TIME_SLOT_LABELS", "8:00 AM, 10:00 AM")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 45, cfg.DefaultServiceDuration)
	assert.Equal(t, []string{"8:00 AM", "10:00 AM"}, cfg.TimeSlotLabels)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("DEFAULT_SERVICE_DURATION", "soon")

	cfg := Load()
	assert.Equal(t, 120, cfg.DefaultServiceDuration)
}

func TestIsAdminEmail_CaseInsensitive(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "Owner@Example.com, second@example.com")

	cfg := Load()

	assert.True(t, cfg.IsAdminEmail("owner@example.com"))
	assert.True(t, cfg.IsAdminEmail("SECOND@EXAMPLE.COM"))
	assert.False(t, cfg.IsAdminEmail("stranger@example.com"))
}

func TestSplitList_TrimsAndDropsEmpties(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a , ,b,"))
	assert.Nil(t, splitList(""))
}
