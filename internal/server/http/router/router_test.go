package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/usersvc/internal/app"
	"github.com/polkiloo/usersvc/internal/domain/model"
	"github.com/polkiloo/usersvc/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/usersvc/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.ServiceFacadeStub{
		UserFacadeStub: testhelpers.UserFacadeStub{
			UsersFn: func(context.Context) ([]model.User, error) {
				return []model.User{{ID: 1, Name: "Alice", Email: "a@x.com"}}, nil
			},
			SearchUsersFn: func(_ context.Context, query string) ([]model.User, error) {
				if query != "Ali" {
					t.Fatalf("unexpected search query %q", query)
				}
				return []model.User{{ID: 1, Name: "Alice", Email: "a@x.com"}}, nil
			},
		},
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			AuthenticateFn: func(context.Context, string, string) (*model.User, error) {
				return &model.User{ID: 1, Name: "Alice", Email: "a@x.com"}, nil
			},
		},
	}
	engine := Setup(facade, logger)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for home, got %d", resp.Code)
	}
	if !bytes.Contains(resp.Body.Bytes(), []byte("User Management System is running")) {
		t.Fatalf("unexpected home body %q", resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/users", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for users, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/user/1", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for user by id, got %d", resp.Code)
	}

	body, _ := json.Marshal(map[string]string{"name": "Alice", "email": "a@x.com", "password": "pw"})
	req = httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for create, got %d", resp.Code)
	}

	body, _ = json.Marshal(map[string]string{"name": "Bob", "email": "b@x.com"})
	req = httptest.NewRequest(http.MethodPut, "/user/1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for update, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/user/1", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for delete, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/search?name=Ali", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for search, got %d", resp.Code)
	}

	body, _ = json.Marshal(map[string]string{"email": "a@x.com", "password": "pw"})
	req = httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for login, got %d", resp.Code)
	}
}

func TestSetupUnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(testhelpers.ServiceFacadeStub{}, logger)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown route, got %d", resp.Code)
	}
}

var _ handlers.ServiceFacade = (*testhelpers.ServiceFacadeStub)(nil)
var _ handlers.ServiceFacade = (*app.ServiceFacade)(nil)
