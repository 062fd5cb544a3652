package handlers_test

import (
	"net/http"
	"testing"

	"smpj_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeCreateDefaults(t *testing.T) {
	env := newTestEnv(t)
	owner := env.tokenFor(t, "owner")

	w := env.doJSON(t, http.MethodPost, "/api/employees", owner, map[string]any{
		"nama":    "Budi",
		"jabatan": "Barista",
		"telepon": "0812345678",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created models.Employee
	decodeBody(t, w, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Budi", created.Nama)
	assert.Equal(t, models.StatusAktif, created.Status)
	assert.Equal(t, models.DefaultHourlyRate, created.HourlyRate)
}

func TestEmployeeCRUDRestrictedToOwner(t *testing.T) {
	env := newTestEnv(t)
	supervisor := env.tokenFor(t, "supervisor")
	employee := env.tokenFor(t, "employee")

	body := map[string]any{"nama": "Sari"}
	assert.Equal(t, http.StatusForbidden, env.doJSON(t, http.MethodPost, "/api/employees", supervisor, body).Code)
	assert.Equal(t, http.StatusForbidden, env.doJSON(t, http.MethodPost, "/api/employees", employee, body).Code)
	assert.Equal(t, http.StatusForbidden, env.doJSON(t, http.MethodPut, "/api/employees/xyz", supervisor, body).Code)
	assert.Equal(t, http.StatusForbidden, env.doJSON(t, http.MethodDelete, "/api/employees/xyz", employee, nil).Code)
}

func TestEmployeeListAnyAuthenticatedRole(t *testing.T) {
	env := newTestEnv(t)
	owner := env.tokenFor(t, "owner")
	employee := env.tokenFor(t, "employee")

	created := env.doJSON(t, http.MethodPost, "/api/employees", owner, map[string]any{"nama": "Budi"})
	require.Equal(t, http.StatusOK, created.Code)

	w := env.doJSON(t, http.MethodGet, "/api/employees", employee, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []models.Employee
	decodeBody(t, w, &rows)
	assert.Len(t, rows, 1)
}

func TestEmployeeGetByID(t *testing.T) {
	env := newTestEnv(t)
	owner := env.tokenFor(t, "owner")

	created := env.doJSON(t, http.MethodPost, "/api/employees", owner, map[string]any{"nama": "Budi"})
	var emp models.Employee
	decodeBody(t, created, &emp)

	found := env.doJSON(t, http.MethodGet, "/api/employees/"+emp.ID, owner, nil)
	assert.Equal(t, http.StatusOK, found.Code)

	missing := env.doJSON(t, http.MethodGet, "/api/employees/does-not-exist", owner, nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestEmployeePartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	owner := env.tokenFor(t, "owner")

	created := env.doJSON(t, http.MethodPost, "/api/employees", owner, map[string]any{
		"nama":        "Budi",
		"jabatan":     "Barista",
		"hourly_rate": 25000,
	})
	var emp models.Employee
	decodeBody(t, created, &emp)

	w := env.doJSON(t, http.MethodPut, "/api/employees/"+emp.ID, owner, map[string]any{
		"status": models.StatusNonaktif,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Employee
	decodeBody(t, w, &updated)
	assert.Equal(t, models.StatusNonaktif, updated.Status)
	assert.Equal(t, "Budi", updated.Nama)
	assert.Equal(t, "Barista", updated.Jabatan)
	assert.Equal(t, 25000, updated.HourlyRate)
}

func TestEmployeeUpdateMissing(t *testing.T) {
	env := newTestEnv(t)
	owner := env.tokenFor(t, "owner")

	w := env.doJSON(t, http.MethodPut, "/api/employees/nope", owner, map[string]any{"nama": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeDelete(t *testing.T) {
	env := newTestEnv(t)
	owner := env.tokenFor(t, "owner")

	created := env.doJSON(t, http.MethodPost, "/api/employees", owner, map[string]any{"nama": "Budi"})
	var emp models.Employee
	decodeBody(t, created, &emp)

	w := env.doJSON(t, http.MethodDelete, "/api/employees/"+emp.ID, owner, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Employee{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
