package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"course-api/internal/domain"
)

func TestCourseFlow_SignupCreateAndFetch(t *testing.T) {
	api := newTestAPI(t)

	rec := performRequest(api.router, http.MethodPost, "/api/users", map[string]string{
		"firstName":    "A",
		"lastName":     "B",
		"emailAddress": "a@b.com",
		"password":     "secret1",
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d", rec.Code)
	}
	var user domain.User
	decodeBody(t, rec, &user)

	rec = performRequest(api.router, http.MethodPost, "/api/courses", map[string]string{
		"title":       "T",
		"description": "D",
	}, &basicAuth{"a@b.com", "secret1"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create course: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var course domain.Course
	decodeBody(t, rec, &course)
	if course.UserID != user.ID {
		t.Fatalf("expected owner %s, got %s", user.ID, course.UserID)
	}
	if loc := rec.Header().Get("Location"); loc != "/api/courses/"+course.ID {
		t.Fatalf("unexpected location %q", loc)
	}

	rec = performRequest(api.router, http.MethodGet, "/api/courses/"+course.ID, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get course: expected 200, got %d", rec.Code)
	}
	var detail domain.CourseDetail
	decodeBody(t, rec, &detail)
	if detail.Course.ID != course.ID || detail.Course.Title != "T" {
		t.Fatalf("unexpected course %+v", detail.Course)
	}
	if detail.User == nil || detail.User.FirstName != "A" || detail.User.LastName != "B" || detail.User.ID != user.ID {
		t.Fatalf("unexpected owner %+v", detail.User)
	}
}

func TestCourseHandlerCreateCourse_IgnoresClientOwner(t *testing.T) {
	api := newTestAPI(t)
	user := api.seedUser(t, "a@b.com", "secret1")

	rec := performRequest(api.router, http.MethodPost, "/api/courses", map[string]string{
		"title":       "T",
		"description": "D",
		"user":        "someone-else",
	}, &basicAuth{"a@b.com", "secret1"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var course domain.Course
	decodeBody(t, rec, &course)
	if course.UserID != user.ID {
		t.Fatalf("expected owner forced to caller, got %s", course.UserID)
	}
}

func TestCourseHandlerCreateCourse_ValidationAndAuth(t *testing.T) {
	api := newTestAPI(t)
	api.seedUser(t, "a@b.com", "secret1")

	rec := performRequest(api.router, http.MethodPost, "/api/courses", map[string]string{"title": "T"}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", rec.Code)
	}

	rec = performRequest(api.router, http.MethodPost, "/api/courses", map[string]string{}, &basicAuth{"a@b.com", "secret1"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body struct {
		Message []string `json:"message"`
	}
	decodeBody(t, rec, &body)
	if len(body.Message) != 2 {
		t.Fatalf("expected two validation messages, got %v", body.Message)
	}
}

func TestCourseHandlerListCourses(t *testing.T) {
	api := newTestAPI(t)
	owner := api.seedUser(t, "a@b.com", "secret1")
	api.seedCourse(t, owner, "first")
	api.seedCourse(t, owner, "second")

	rec := performRequest(api.router, http.MethodGet, "/api/courses", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var courses []domain.Course
	decodeBody(t, rec, &courses)
	if len(courses) != 2 || courses[0].Title != "first" || courses[1].Title != "second" {
		t.Fatalf("unexpected courses %+v", courses)
	}
}

func TestCourseHandlerGetCourse_NotFound(t *testing.T) {
	api := newTestAPI(t)

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		rec := performRequest(api.router, http.MethodGet, "/api/courses/"+id, nil, nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("id %q: expected 404, got %d", id, rec.Code)
		}
	}
}

func TestCourseHandlerUpdateCourse_Owner(t *testing.T) {
	api := newTestAPI(t)
	owner := api.seedUser(t, "a@b.com", "secret1")
	course := api.seedCourse(t, owner, "old")

	rec := performRequest(api.router, http.MethodPut, "/api/courses/"+course.ID, map[string]string{
		"title":         "new",
		"description":   "new description",
		"estimatedTime": "2 hours",
	}, &basicAuth{"a@b.com", "secret1"})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	stored, err := api.courses.GetByID(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("get course: %v", err)
	}
	if stored.Title != "new" || stored.Description != "new description" || stored.EstimatedTime != "2 hours" {
		t.Fatalf("expected course updated, got %+v", stored)
	}
	if stored.UserID != owner.ID {
		t.Fatalf("expected owner unchanged, got %s", stored.UserID)
	}
}

func TestCourseHandlerUpdateCourse_NonOwnerForbidden(t *testing.T) {
	api := newTestAPI(t)
	owner := api.seedUser(t, "a@b.com", "secret1")
	api.seedUser(t, "c@d.com", "secret2")
	course := api.seedCourse(t, owner, "old")

	rec := performRequest(api.router, http.MethodPut, "/api/courses/"+course.ID, map[string]string{
		"title":       "hijacked",
		"description": "hijacked",
	}, &basicAuth{"c@d.com", "secret2"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	stored, _ := api.courses.GetByID(context.Background(), course.ID)
	if stored.Title != "old" {
		t.Fatalf("expected course untouched, got %+v", stored)
	}
}

func TestCourseHandlerUpdateCourse_MissingDescription(t *testing.T) {
	api := newTestAPI(t)
	owner := api.seedUser(t, "a@b.com", "secret1")
	course := api.seedCourse(t, owner, "old")

	rec := performRequest(api.router, http.MethodPut, "/api/courses/"+course.ID, map[string]string{
		"title": "new",
	}, &basicAuth{"a@b.com", "secret1"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body struct {
		Message []string `json:"message"`
	}
	decodeBody(t, rec, &body)
	if len(body.Message) != 1 || body.Message[0] != domain.RequiredFieldMessage("description") {
		t.Fatalf("unexpected messages %v", body.Message)
	}

	stored, _ := api.courses.GetByID(context.Background(), course.ID)
	if stored.Title != "old" {
		t.Fatalf("expected course untouched, got %+v", stored)
	}
}

func TestCourseHandlerUpdateCourse_EmptyBody(t *testing.T) {
	api := newTestAPI(t)
	owner := api.seedUser(t, "a@b.com", "secret1")
	course := api.seedCourse(t, owner, "old")

	rec := performRequest(api.router, http.MethodPut, "/api/courses/"+course.ID, nil, &basicAuth{"a@b.com", "secret1"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body struct {
		Message []string `json:"message"`
	}
	decodeBody(t, rec, &body)
	if len(body.Message) != 2 {
		t.Fatalf("expected two messages, got %v", body.Message)
	}
}

func TestCourseHandler_NotFoundPrecedesOwnership(t *testing.T) {
	api := newTestAPI(t)
	api.seedUser(t, "a@b.com", "secret1")
	missing := "/api/courses/" + uuid.NewString()
	update := map[string]string{"title": "T", "description": "D"}

	if rec := performRequest(api.router, http.MethodPut, missing, update, &basicAuth{"a@b.com", "secret1"}); rec.Code != http.StatusNotFound {
		t.Fatalf("put: expected 404, got %d", rec.Code)
	}
	if rec := performRequest(api.router, http.MethodDelete, missing, nil, &basicAuth{"a@b.com", "secret1"}); rec.Code != http.StatusNotFound {
		t.Fatalf("delete: expected 404, got %d", rec.Code)
	}
}

func TestCourseHandlerDeleteCourse(t *testing.T) {
	api := newTestAPI(t)
	owner := api.seedUser(t, "a@b.com", "secret1")
	api.seedUser(t, "c@d.com", "secret2")
	course := api.seedCourse(t, owner, "doomed")
	path := "/api/courses/" + course.ID

	rec := performRequest(api.router, http.MethodDelete, path, nil, &basicAuth{"c@d.com", "secret2"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-owner: expected 403, got %d", rec.Code)
	}
	if _, err := api.courses.GetByID(context.Background(), course.ID); err != nil {
		t.Fatalf("expected course to survive non-owner delete: %v", err)
	}

	rec = performRequest(api.router, http.MethodDelete, path, nil, &basicAuth{"a@b.com", "secret1"})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("owner: expected 204, got %d", rec.Code)
	}
	if _, err := api.courses.GetByID(context.Background(), course.ID); err == nil {
		t.Fatalf("expected course deleted")
	}
}
