package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Varun5711/mealcounter/internal/models"
	"github.com/Varun5711/mealcounter/internal/models/user"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL + "/"}, nil)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, err := uuid.Parse(r.Header.Get("X-Request-Id"))
		assert.NoError(t, err)

		var body user.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, user.LoginRequest{Email: "john@example.com", Password: "Secret123"}, body)

		writeJSON(w, http.StatusOK, `{"message":"Login successful","token":"tok-1"}`)
	})

	resp, err := c.Login(context.Background(), user.LoginRequest{Email: "john@example.com", Password: "Secret123"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.Token)
	assert.Equal(t, "Login successful", resp.Message)
}

func TestRegister_SendsProfileFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{
			"firstName": "Ada",
			"lastName":  "Lovelace",
			"email":     "ada@example.com",
			"password":  "Secret123",
		}, body)

		writeJSON(w, http.StatusCreated, `{"token":"tok-2"}`)
	})

	resp, err := c.Register(context.Background(), user.RegisterRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "Secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-2", resp.Token)
}

func TestLookup_SendsBearerAndDecodesResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get-calories", r.URL.Path)
		assert.Equal(t, "Bearer tok-3", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Pizza", body["dish_name"])
		assert.Equal(t, 2.5, body["servings"])

		writeJSON(w, http.StatusOK, `{"dish_name":"pizza","servings":2.5,"calories_per_serving":285,"total_calories":712.4,"source":"USDA FoodData Central"}`)
	})

	res, err := c.Lookup(context.Background(), models.LookupRequest{DishName: "Pizza", Servings: 2.5}, "tok-3")
	require.NoError(t, err)
	assert.Equal(t, models.LookupResult{
		DishName:           "pizza",
		Servings:           2.5,
		CaloriesPerServing: 285,
		TotalCalories:      712.4, // taken as-is, not 285*2.5
		Source:             "USDA FoodData Central",
	}, *res)
}

func TestLookup_MissingToken(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := c.Lookup(context.Background(), models.LookupRequest{DishName: "Pizza", Servings: 1}, "")
	require.ErrorIs(t, err, ErrMissingToken)
	assert.False(t, called, "no request may be sent without a token")
}

func TestErrorNormalization_StatusAndMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"Invalid credentials"}`)
	})

	_, err := c.Login(context.Background(), user.LoginRequest{Email: "a@b.co", Password: "x"})

	ge, ok := AsError(err)
	require.True(t, ok, "expected *Error, got %T", err)
	assert.Equal(t, "Invalid credentials", ge.Message)
	assert.Equal(t, http.StatusUnauthorized, ge.Status)
	assert.True(t, ge.HasStatus())
}

func TestErrorNormalization_FallbackMessages(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"error":"something else"}`)
	})
	ctx := context.Background()

	_, err := c.Register(ctx, user.RegisterRequest{})
	ge, _ := AsError(err)
	require.NotNil(t, ge)
	assert.Equal(t, Error{Message: "Registration failed", Status: 400}, Error{Message: ge.Message, Status: ge.Status})

	_, err = c.Login(ctx, user.LoginRequest{})
	ge, _ = AsError(err)
	require.NotNil(t, ge)
	assert.Equal(t, "Login failed", ge.Message)

	_, err = c.Lookup(ctx, models.LookupRequest{DishName: "x", Servings: 1}, "tok")
	ge, _ = AsError(err)
	require.NotNil(t, ge)
	assert.Equal(t, "Failed to fetch calories", ge.Message)
	assert.Equal(t, http.StatusBadRequest, ge.Status)
}

func TestErrorNormalization_OddJSONErrorBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"numeric message", `{"message":123}`, "Login failed"},
		{"array message", `{"message":["dish_name must be a string"],"statusCode":400}`, "Login failed"},
		{"empty message", `{"message":""}`, "Login failed"},
		{"array body", `[]`, "Login failed"},
		{"null body", `null`, "Login failed"},
		{"string body", `"nope"`, "Login failed"},
		{"string message", `{"message":"Invalid credentials"}`, "Invalid credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusUnauthorized, tt.body)
			})

			_, err := c.Login(context.Background(), user.LoginRequest{Email: "a@b.co", Password: "x"})

			ge, ok := AsError(err)
			require.True(t, ok, "expected *Error, got %T", err)
			assert.Equal(t, tt.want, ge.Message)
			assert.Equal(t, http.StatusUnauthorized, ge.Status)
		})
	}
}

func TestErrorNormalization_NonJSONErrorBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>Bad Gateway</html>"))
	})

	_, err := c.Lookup(context.Background(), models.LookupRequest{DishName: "x", Servings: 1}, "tok")

	ge, ok := AsError(err)
	require.True(t, ok)
	assert.NotEmpty(t, ge.Message)
	assert.Zero(t, ge.Status)
	assert.False(t, ge.HasStatus())
}

func TestErrorNormalization_MalformedSuccessBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"dish_name":`)
	})

	_, err := c.Lookup(context.Background(), models.LookupRequest{DishName: "x", Servings: 1}, "tok")

	ge, ok := AsError(err)
	require.True(t, ok)
	assert.Zero(t, ge.Status)
	assert.NotEmpty(t, ge.Message)
}

func TestErrorNormalization_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	c := New(Config{BaseURL: baseURL}, nil)
	_, err := c.Login(context.Background(), user.LoginRequest{Email: "a@b.co", Password: "x"})

	ge, ok := AsError(err)
	require.True(t, ok)
	assert.NotEmpty(t, ge.Message)
	assert.Zero(t, ge.Status)
	assert.NotContains(t, ge.Message, baseURL, "message names the failure, not the endpoint")
	assert.NotNil(t, errors.Unwrap(ge))
}

func TestContextCancellation(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Lookup(ctx, models.LookupRequest{DishName: "x", Servings: 1}, "tok")

	ge, ok := AsError(err)
	require.True(t, ok)
	assert.Zero(t, ge.Status)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestError_Format(t *testing.T) {
	assert.Equal(t, "Invalid credentials (status 401)", (&Error{Message: "Invalid credentials", Status: 401}).Error())
	assert.Equal(t, "connection refused", (&Error{Message: "connection refused"}).Error())

	_, ok := AsError(errors.New("plain"))
	assert.False(t, ok)
}
