package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mrifkiw/contact-management/internal/apierr"
	"github.com/mrifkiw/contact-management/internal/models"
	"github.com/mrifkiw/contact-management/internal/service"
	"go.uber.org/zap"
)

type mockUserService struct {
	authenticateFunc func(ctx context.Context, token string) (*models.User, error)
}

func (m *mockUserService) Register(ctx context.Context, req service.RegisterUserRequest) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (m *mockUserService) Login(ctx context.Context, req service.LoginUserRequest) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (m *mockUserService) Update(ctx context.Context, user *models.User, req service.UpdateUserRequest) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (m *mockUserService) Logout(ctx context.Context, user *models.User) error {
	return errors.New("not implemented")
}

func (m *mockUserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if m.authenticateFunc != nil {
		return m.authenticateFunc(ctx, token)
	}
	return nil, errors.New("not implemented")
}

func setupGuardedRouter(users *mockUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	guard := NewAuthMiddleware(users, zap.NewNop().Sugar())

	router := gin.New()
	router.GET("/protected", guard.RequireAuth(), func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"errors": gin.H{"message": []string{"no user on context"}}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": true})
	})
	return router
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	users := &mockUserService{
		authenticateFunc: func(ctx context.Context, token string) (*models.User, error) {
			if token != "" {
				t.Errorf("expected empty token, got %q", token)
			}
			return nil, apierr.Unauthorized()
		},
	}
	router := setupGuardedRouter(users)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
	if w.Body.String() != `{"errors":{"message":["unauthorized"]}}` {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestRequireAuth_UnknownToken(t *testing.T) {
	users := &mockUserService{
		authenticateFunc: func(ctx context.Context, token string) (*models.User, error) {
			return nil, apierr.Unauthorized()
		},
	}
	router := setupGuardedRouter(users)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "wrong")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRequireAuth_RawTokenHeader(t *testing.T) {
	user := &models.User{ID: 1, Username: "widadi"}
	users := &mockUserService{
		authenticateFunc: func(ctx context.Context, token string) (*models.User, error) {
			if token != "sometoken" {
				t.Errorf("expected raw token, got %q", token)
			}
			return user, nil
		},
	}
	router := setupGuardedRouter(users)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "sometoken")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRequireAuth_BearerPrefixStripped(t *testing.T) {
	users := &mockUserService{
		authenticateFunc: func(ctx context.Context, token string) (*models.User, error) {
			if token != "sometoken" {
				t.Errorf("expected stripped token, got %q", token)
			}
			return &models.User{ID: 1}, nil
		},
	}
	router := setupGuardedRouter(users)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestCurrentUser_EmptyContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if CurrentUser(c) != nil {
		t.Error("expected nil user on a context without the guard")
	}
}
