package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/social-backend/internal/domain/entity"
	"github.com/wichananm65/social-backend/internal/infrastructure/database/inmemory"
	"github.com/wichananm65/social-backend/internal/usecase"
)

func makeApp(t *testing.T) *fiber.App {
	t.Helper()
	store := inmemory.NewStore()
	if _, err := store.MemberTypes.Create(t.Context(), entity.MemberType{ID: "basic", MonthPostsLimit: 20}); err != nil {
		t.Fatalf("seed member type: %v", err)
	}
	f := usecase.NewFacade(store, nil, usecase.Options{})

	app := fiber.New(fiber.Config{Immutable: true})
	NewUserHandler(f.Users).RegisterRoutes(app)
	NewProfileHandler(f.Profiles).RegisterRoutes(app)
	NewPostHandler(f.Posts).RegisterRoutes(app)
	NewMemberTypeHandler(f.MemberTypes).RegisterRoutes(app)
	return app
}

func send(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res, b
}

func createUser(t *testing.T, app *fiber.App, id string) {
	t.Helper()
	res, b := send(t, app, "POST", "/users", map[string]any{
		"id": id, "firstName": "F" + id, "lastName": "L" + id, "email": id + "@example.com",
	})
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("create user %s: expected 201, got %d (%s)", id, res.StatusCode, b)
	}
}

func TestUserRoutes(t *testing.T) {
	app := makeApp(t)

	res, b := send(t, app, "POST", "/users", map[string]any{"firstName": "Ann"})
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d (%s)", res.StatusCode, b)
	}

	createUser(t, app, "u1")

	res, _ = send(t, app, "POST", "/users", map[string]any{
		"id": "u1", "firstName": "A", "lastName": "B", "email": "c@d.e",
	})
	if res.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate id, got %d", res.StatusCode)
	}

	res, b = send(t, app, "GET", "/users/u1", nil)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var u entity.User
	if err := json.Unmarshal(b, &u); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if u.Email != "u1@example.com" || u.SubscribedToUserIDs == nil {
		t.Fatalf("unexpected user %+v", u)
	}

	res, _ = send(t, app, "GET", "/users/nope", nil)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}

	res, _ = send(t, app, "PATCH", "/users/u1", map[string]any{})
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty patch, got %d", res.StatusCode)
	}

	res, b = send(t, app, "PATCH", "/users/u1", map[string]any{"lastName": "Changed"})
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for patch, got %d (%s)", res.StatusCode, b)
	}
	if err := json.Unmarshal(b, &u); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if u.LastName != "Changed" || u.FirstName != "Fu1" {
		t.Fatalf("patch did not merge: %+v", u)
	}

	res, _ = send(t, app, "DELETE", "/users/u1", nil)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for delete, got %d", res.StatusCode)
	}
	res, _ = send(t, app, "DELETE", "/users/u1", nil)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for second delete, got %d", res.StatusCode)
	}
}

func TestSubscriptionRoutes(t *testing.T) {
	app := makeApp(t)
	createUser(t, app, "a")
	createUser(t, app, "b")

	for i := 0; i < 2; i++ {
		res, b := send(t, app, "POST", "/users/b/subscribeTo", map[string]any{"userId": "a"})
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("subscribe #%d: expected 200, got %d (%s)", i, res.StatusCode, b)
		}
	}

	_, b := send(t, app, "GET", "/users/a", nil)
	var a entity.User
	if err := json.Unmarshal(b, &a); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if len(a.SubscribedToUserIDs) != 1 || a.SubscribedToUserIDs[0] != "b" {
		t.Fatalf("expected [b], got %v", a.SubscribedToUserIDs)
	}

	res, _ := send(t, app, "POST", "/users/b/subscribeTo", map[string]any{})
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without userId, got %d", res.StatusCode)
	}

	res, _ = send(t, app, "POST", "/users/a/unsubscribeFrom", map[string]any{"userId": "b"})
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 when not subscribed, got %d", res.StatusCode)
	}

	res, b = send(t, app, "POST", "/users/b/unsubscribeFrom", map[string]any{"userId": "a"})
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for unsubscribe, got %d (%s)", res.StatusCode, b)
	}
	var target entity.User
	if err := json.Unmarshal(b, &target); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if target.ID != "b" {
		t.Fatalf("expected unsubscribe to answer with the unfollowed user, got %q", target.ID)
	}

	_, b = send(t, app, "GET", "/users/a", nil)
	if err := json.Unmarshal(b, &a); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if len(a.SubscribedToUserIDs) != 0 {
		t.Fatalf("expected no subscriptions, got %v", a.SubscribedToUserIDs)
	}
}

func TestProfileAndPostRoutes(t *testing.T) {
	app := makeApp(t)
	createUser(t, app, "u1")

	res, b := send(t, app, "POST", "/profiles", map[string]any{
		"id": "p1", "userId": "u1", "memberTypeId": "basic", "city": "Oslo", "birthday": 1990,
	})
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 for profile, got %d (%s)", res.StatusCode, b)
	}

	res, _ = send(t, app, "POST", "/profiles", map[string]any{"userId": "u1", "memberTypeId": "basic"})
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate profile, got %d", res.StatusCode)
	}

	res, _ = send(t, app, "POST", "/profiles", map[string]any{"userId": "u1", "birthday": "soon"})
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", res.StatusCode)
	}

	res, b = send(t, app, "PATCH", "/profiles/p1", map[string]any{"street": "Main"})
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for profile patch, got %d (%s)", res.StatusCode, b)
	}
	var p entity.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if p.City != "Oslo" || p.Street != "Main" {
		t.Fatalf("unexpected profile %+v", p)
	}

	res, b = send(t, app, "POST", "/posts", map[string]any{"title": "hello", "content": "world", "userId": "u1"})
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 for post, got %d (%s)", res.StatusCode, b)
	}

	res, b = send(t, app, "GET", "/posts", nil)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for post list, got %d", res.StatusCode)
	}
	var posts []entity.Post
	if err := json.Unmarshal(b, &posts); err != nil {
		t.Fatalf("decode posts: %v", err)
	}
	if len(posts) != 1 || posts[0].UserID != "u1" {
		t.Fatalf("unexpected posts %+v", posts)
	}

	send(t, app, "DELETE", "/users/u1", nil)
	_, b = send(t, app, "GET", "/posts", nil)
	if string(b) != "[]" {
		t.Fatalf("expected posts to cascade, got %s", b)
	}
	res, _ = send(t, app, "GET", "/profiles/p1", nil)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected profile to cascade, got %d", res.StatusCode)
	}
}

func TestMemberTypeRoutes(t *testing.T) {
	app := makeApp(t)
	createUser(t, app, "u1")

	res, b := send(t, app, "PATCH", "/member-types/basic", map[string]any{"discount": 3})
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", res.StatusCode, b)
	}
	var mt entity.MemberType
	if err := json.Unmarshal(b, &mt); err != nil {
		t.Fatalf("decode member type: %v", err)
	}
	if mt.Discount != 3 || mt.MonthPostsLimit != 20 {
		t.Fatalf("unexpected member type %+v", mt)
	}

	send(t, app, "POST", "/profiles", map[string]any{"userId": "u1", "memberTypeId": "basic"})
	res, _ = send(t, app, "DELETE", "/member-types/basic", nil)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 deleting a used member type, got %d", res.StatusCode)
	}

	res, _ = send(t, app, "GET", "/member-types/gold", nil)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}
