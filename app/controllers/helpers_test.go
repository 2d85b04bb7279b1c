package controllers

import (
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/betwise/picks-backend/app/models"
	"github.com/betwise/picks-backend/app/repository"
	"github.com/betwise/picks-backend/internal/pkg/usercontext"
)

// Stubs embed their interface so any method a test does not expect to be
// called panics instead of silently succeeding.

type stubSettingRepository struct {
	repository.SettingRepository
	gating bool
}

func (s *stubSettingRepository) GetBool(key string, def bool) bool {
	return s.gating
}

type stubPostRepository struct {
	repository.PostRepository
	posts map[uint]*models.Post
}

func (s *stubPostRepository) GetByID(id uint) (*models.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return post, nil
}

type stubUserRepository struct {
	repository.UserRepository
	users   map[uint]*models.User
	deleted []uint
}

func (s *stubUserRepository) GetByID(id uint) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (s *stubUserRepository) Delete(id uint) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubUserRepository) ListByRoles(roles []string, offset, limit int) ([]models.User, error) {
	var out []models.User
	for _, u := range s.users {
		for _, role := range roles {
			if u.Role == role {
				out = append(out, *u)
			}
		}
	}
	return out, nil
}

func (s *stubUserRepository) CountByRoles(roles []string) (int64, error) {
	users, _ := s.ListByRoles(roles, 0, 0)
	return int64(len(users)), nil
}

// newTestApp builds a fiber app whose requests carry the given caller
// identity, mirroring what the API key middleware installs.
func newTestApp(userCtx usercontext.UserContext) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(usercontext.ContextKey, userCtx)
		return c.Next()
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response: %v", err)
	}
	return resp.StatusCode, string(body)
}

func subscriber(tier string) usercontext.UserContext {
	return usercontext.UserContext{
		UserID:       42,
		Role:         models.ROLE_USER,
		IsLoggedIn:   true,
		IsSubscribed: true,
		PlanTier:     tier,
	}
}
