package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetcut/salon-scheduler/internal/models"
)

type auditLogsPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Data  []models.AuditLog `json:"data"`
}

func seedAuditRows(t *testing.T, env *testEnv) {
	rows := []models.AuditLog{
		{ActorEmail: "admin@example.com", Action: "service_created", Entity: "service"},
		{ActorEmail: "admin@example.com", Action: "service_deleted", Entity: "service"},
		{ActorEmail: "admin@example.com", Action: "booking_updated", Entity: "booking"},
	}
	for i := range rows {
		require.NoError(t, env.db.Create(&rows[i]).Error)
	}
}

func TestAuditLogs_FiltersByAction(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.adminCookies(t)
	seedAuditRows(t, env)

	resp := env.do(http.MethodGet, "/api/admin/audit-logs?action=service_created", nil, "", cookies)
	require.Equal(t, http.StatusOK, resp.Code)

	var page auditLogsPage
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &page))

	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "service_created", page.Data[0].Action)
}

func TestAuditLogs_FiltersByEntityAndPaginates(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.adminCookies(t)
	seedAuditRows(t, env)

	resp := env.do(http.MethodGet, "/api/admin/audit-logs?entity=service&limit=1&page=2", nil, "", cookies)
	require.Equal(t, http.StatusOK, resp.Code)

	var page auditLogsPage
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &page))

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 1, page.Limit)
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Data, 1)
}

func TestAuditLogs_ClampsBadPagination(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.adminCookies(t)

	resp := env.do(http.MethodGet, "/api/admin/audit-logs?page=-3&limit=9999", nil, "", cookies)
	require.Equal(t, http.StatusOK, resp.Code)

	var page auditLogsPage
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.Limit)
}

func TestAuditLogs_RequiresAdmin(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(http.MethodGet, "/api/admin/audit-logs", nil, "", nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}
