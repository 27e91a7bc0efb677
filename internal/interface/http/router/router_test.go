package router

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/social-backend/internal/domain/entity"
	"github.com/wichananm65/social-backend/internal/infrastructure/database/inmemory"
	"github.com/wichananm65/social-backend/internal/usecase"
)

func makeApp(t *testing.T) *fiber.App {
	t.Helper()
	app, err := New(usecase.NewFacade(inmemory.NewStore(), nil, usecase.Options{}), Options{SubscriptionDepth: 2})
	if err != nil {
		t.Fatalf("router.New: %v", err)
	}
	return app
}

func TestRoutesRegistered(t *testing.T) {
	app := makeApp(t)

	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Method+" "+r.Path] = true
		}
	}
	for _, want := range []string{
		"GET /health",
		"GET /users", "POST /users", "GET /users/:id", "PATCH /users/:id", "DELETE /users/:id",
		"POST /users/:id/subscribeTo", "POST /users/:id/unsubscribeFrom",
		"GET /profiles", "PATCH /profiles/:id",
		"GET /posts", "DELETE /posts/:id",
		"GET /member-types", "POST /member-types",
		"POST /graphql",
	} {
		if !routes[want] {
			t.Fatalf("expected route %q to be registered", want)
		}
	}
}

func TestHealthAndUnknownRoute(t *testing.T) {
	app := makeApp(t)

	res, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	res, err = app.Test(httptest.NewRequest("GET", "/nowhere", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"message"`) {
		t.Fatalf("expected a message body, got %s", b)
	}
}

func TestCORSHeaders(t *testing.T) {
	app := makeApp(t)

	req := httptest.NewRequest("GET", "/users", nil)
	req.Header.Set("Origin", "http://example.com")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if got := res.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS origin, got %q", got)
	}
}

func TestRESTAndGraphQLShareState(t *testing.T) {
	app := makeApp(t)

	req := httptest.NewRequest("POST", "/users", strings.NewReader(`{"id":"u1","firstName":"A","lastName":"B","email":"a@b.c"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("create user request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("POST", "/graphql", strings.NewReader(`{"query":"{ user(id: \"u1\") { email } }"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("graphql request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"email":"a@b.c"`) {
		t.Fatalf("expected the REST-created user over GraphQL, got %s", b)
	}
}

func TestStoredIDsSurviveLaterRequests(t *testing.T) {
	app := makeApp(t)

	do := func(method, path, body string) (int, []byte) {
		t.Helper()
		var r io.Reader
		if body != "" {
			r = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, path, r)
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s %s failed: %v", method, path, err)
		}
		b, _ := io.ReadAll(res.Body)
		return res.StatusCode, b
	}

	for _, id := range []string{"aaaa", "bbbb", "cccc"} {
		if status, b := do("POST", "/users", `{"id":"`+id+`","firstName":"F","lastName":"L","email":"`+id+`@x.io"}`); status != fiber.StatusCreated {
			t.Fatalf("create %s: expected 201, got %d (%s)", id, status, b)
		}
	}
	if status, b := do("POST", "/users/bbbb/subscribeTo", `{"userId":"aaaa"}`); status != fiber.StatusOK {
		t.Fatalf("subscribe: expected 200, got %d (%s)", status, b)
	}
	if status, b := do("PATCH", "/users/cccc", `{"lastName":"Changed"}`); status != fiber.StatusOK {
		t.Fatalf("patch: expected 200, got %d (%s)", status, b)
	}

	// Requests that reuse the same buffers with different path params.
	do("GET", "/users/zzzz", "")
	do("GET", "/users/yyyy", "")
	do("POST", "/users/wwww/subscribeTo", `{"userId":"vvvv"}`)

	status, b := do("GET", "/users", "")
	if status != fiber.StatusOK {
		t.Fatalf("list: expected 200, got %d", status)
	}
	var users []entity.User
	if err := json.Unmarshal(b, &users); err != nil {
		t.Fatalf("decode users: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %+v", users)
	}
	byID := map[string]entity.User{}
	for _, u := range users {
		byID[u.ID] = u
	}
	a, ok := byID["aaaa"]
	if !ok || len(a.SubscribedToUserIDs) != 1 || a.SubscribedToUserIDs[0] != "bbbb" {
		t.Fatalf("expected aaaa to follow [bbbb], got %+v", users)
	}
	c, ok := byID["cccc"]
	if !ok || c.LastName != "Changed" {
		t.Fatalf("expected cccc to keep its id after the patch, got %+v", users)
	}
	if status, _ := do("GET", "/users/cccc", ""); status != fiber.StatusOK {
		t.Fatalf("expected cccc to be found by id, got %d", status)
	}
}
