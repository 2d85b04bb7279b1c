package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/betwise/picks-backend/app/models"
	"github.com/betwise/picks-backend/app/repository"
	"github.com/betwise/picks-backend/internal/pkg/usercontext"
)

func superAdminCtx(id uint) usercontext.UserContext {
	return usercontext.UserContext{UserID: id, Role: models.ROLE_SUPER_ADMIN, IsLoggedIn: true}
}

func newStaffTestApp(users *stubUserRepository, userCtx usercontext.UserContext) *fiber.App {
	repository.SetGlobalRepositories(&repository.Repositories{User: users})
	app := newTestApp(userCtx)
	app.Get("/admin/staff", HandleGetAllAdmins)
	app.Get("/admin/staff/:id", HandleGetAdmin)
	app.Delete("/admin/staff/:id", HandleDeleteAdmin)
	return app
}

func TestGetAdmin(t *testing.T) {
	users := &stubUserRepository{users: map[uint]*models.User{
		2: {ID: 2, Name: "Avery Ops", Role: models.ROLE_ADMIN},
	}}
	app := newStaffTestApp(users, superAdminCtx(1))

	status, body := doRequest(t, app, httptest.NewRequest("GET", "/admin/staff/2", nil))
	assert.Equal(t, 200, status)
	assert.Contains(t, body, "Avery Ops")
}

func TestGetAdminNotFound(t *testing.T) {
	users := &stubUserRepository{users: map[uint]*models.User{
		3: {ID: 3, Name: "Plain User", Role: models.ROLE_USER},
	}}
	app := newStaffTestApp(users, superAdminCtx(1))

	// Missing id and non-staff id both read as absent admins.
	status, body := doRequest(t, app, httptest.NewRequest("GET", "/admin/staff/99", nil))
	assert.Equal(t, 404, status)
	assert.Contains(t, body, "Admin not found")

	status, body = doRequest(t, app, httptest.NewRequest("GET", "/admin/staff/3", nil))
	assert.Equal(t, 404, status)
	assert.Contains(t, body, "Admin not found")
}

func TestGetAllAdminsListsOnlyStaff(t *testing.T) {
	users := &stubUserRepository{users: map[uint]*models.User{
		1: {ID: 1, Name: "Root", Role: models.ROLE_SUPER_ADMIN},
		2: {ID: 2, Name: "Avery Ops", Role: models.ROLE_ADMIN},
		3: {ID: 3, Name: "Plain User", Role: models.ROLE_USER},
	}}
	app := newStaffTestApp(users, superAdminCtx(1))

	status, body := doRequest(t, app, httptest.NewRequest("GET", "/admin/staff", nil))
	assert.Equal(t, 200, status)
	assert.Contains(t, body, "Avery Ops")
	assert.Contains(t, body, "Root")
	assert.NotContains(t, body, "Plain User")
}

func TestDeleteAdmin(t *testing.T) {
	users := &stubUserRepository{users: map[uint]*models.User{
		2: {ID: 2, Name: "Avery Ops", Role: models.ROLE_ADMIN},
	}}
	app := newStaffTestApp(users, superAdminCtx(1))

	status, body := doRequest(t, app, httptest.NewRequest("DELETE", "/admin/staff/2", nil))
	assert.Equal(t, 200, status)
	assert.Contains(t, body, "deleted")
	assert.Equal(t, []uint{2}, users.deleted)
}

func TestDeleteAdminRejectsSelfDeletion(t *testing.T) {
	users := &stubUserRepository{users: map[uint]*models.User{
		1: {ID: 1, Name: "Root", Role: models.ROLE_SUPER_ADMIN},
	}}
	app := newStaffTestApp(users, superAdminCtx(1))

	status, body := doRequest(t, app, httptest.NewRequest("DELETE", "/admin/staff/1", nil))
	assert.Equal(t, 400, status)
	assert.Contains(t, body, "You cannot delete your own account")
	assert.Empty(t, users.deleted)
}
