package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"course-api/internal/domain"
	"course-api/internal/repository"
	"course-api/internal/service"
)

type testAPI struct {
	router  *gin.Engine
	users   *repository.MemoryUserRepository
	courses *repository.MemoryCourseRepository
	userSvc *service.UserService
	authSvc *service.AuthService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := repository.NewMemoryUserRepository()
	courses := repository.NewMemoryCourseRepository()
	hasher := service.NewPasswordHasher(bcrypt.MinCost)
	authSvc := service.NewAuthService(users, hasher)
	userSvc := service.NewUserService(zap.NewNop(), users, hasher)
	courseSvc := service.NewCourseService(zap.NewNop(), courses, users)

	router := NewRouter(
		zap.NewNop(),
		authSvc,
		NewUserHandler(zap.NewNop(), userSvc),
		NewCourseHandler(zap.NewNop(), courseSvc),
		false,
	)
	return &testAPI{router: router, users: users, courses: courses, userSvc: userSvc, authSvc: authSvc}
}

func (a *testAPI) seedUser(t *testing.T, email, password string) domain.User {
	t.Helper()
	user, err := a.userSvc.CreateUser(context.Background(), service.CreateUserInput{
		FirstName:    "First",
		LastName:     "Last",
		EmailAddress: email,
		Password:     password,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func (a *testAPI) seedCourse(t *testing.T, owner domain.User, title string) domain.Course {
	t.Helper()
	course := domain.Course{
		ID:          uuid.NewString(),
		Title:       title,
		Description: "description of " + title,
		UserID:      owner.ID,
	}
	if err := a.courses.Create(context.Background(), course); err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return course
}

type basicAuth struct {
	identifier string
	secret     string
}

func performRequest(r http.Handler, method, path string, body any, auth *basicAuth) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if auth != nil {
		req.SetBasicAuth(auth.identifier, auth.secret)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}
