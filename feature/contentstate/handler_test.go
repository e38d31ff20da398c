package contentstate_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"content-state/core/api"
	"content-state/core/middleware/identity"
	"content-state/core/middleware/rayid"
	"content-state/feature/contentstate"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const tokenSecret = "handler-secret"

func newTestApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()
	auth := identity.Config{TokenHeader: "x-authenticated-user-token", TokenSecret: tokenSecret}
	feature := contentstate.NewFeature(db, defaultPolicy(), auth, nil, zap.NewNop())
	require.True(t, feature.IsEnabled())

	app := fiber.New()
	app.Use(rayid.New())
	require.NoError(t, feature.Load(app))
	return app
}

func userToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, err := token.SignedString([]byte(tokenSecret))
	require.NoError(t, err)
	return s
}

func call(t *testing.T, app *fiber.App, method, path, token, body string) (int, api.Response) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-authenticated-user-token", token)
	}

	res, err := app.Test(req)
	require.NoError(t, err)

	var resp api.Response
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	return res.StatusCode, resp
}

func TestHandler_UpdateThenRead(t *testing.T) {
	app := newTestApp(t, setupTestDB(t))
	token := userToken(t, "u1")

	status, resp := call(t, app, fiber.MethodPatch, "/content/v2/state/update", token,
		`{"request":{"contents":[{"contentId":"do_1","status":2,"progress":10,"lastCompletedTime":"2024-03-01 10:15:30:007+0530"}]}}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, api.IDStateUpdate, resp.ID)
	assert.Equal(t, api.StatusSuccess, resp.Params.Status)
	assert.Equal(t, "SUCCESS", resp.Result["do_1"])
	assert.NotEmpty(t, resp.Params.ResMsgID)

	status, resp = call(t, app, fiber.MethodPost, "/content/v2/state/read", token,
		`{"request":{"contentIds":["do_1"],"fields":["status","progress","lastCompletedTime"]}}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, api.IDStateRead, resp.ID)

	list, ok := resp.Result["contentList"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, map[string]any{
		"status":            float64(2),
		"progress":          float64(100),
		"lastCompletedTime": "2024-03-01 04:45:30:007+0000",
	}, list[0])
}

func TestHandler_Unauthorized(t *testing.T) {
	app := newTestApp(t, setupTestDB(t))

	status, resp := call(t, app, fiber.MethodPatch, "/content/v2/state/update", "",
		`{"request":{"contents":[{"contentId":"do_1","status":1}]}}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, api.StatusFailed, resp.Params.Status)
	assert.Equal(t, api.IDStateUpdate, resp.ID)

	status, _ = call(t, app, fiber.MethodPost, "/content/v2/state/read", "invalid", `{}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestHandler_ClientErrors(t *testing.T) {
	app := newTestApp(t, setupTestDB(t))
	token := userToken(t, "u1")

	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		message string
	}{
		{"Empty Update", fiber.MethodPatch, "/content/v2/state/update", "", "Request body is empty"},
		{"Malformed JSON", fiber.MethodPatch, "/content/v2/state/update", "{", "Invalid JSON payload"},
		{"Missing Required", fiber.MethodPatch, "/content/v2/state/update", `{"request":{"contents":[{"status":1}]}}`, "Missing or invalid fields: [contents[0].contentId]"},
		{"Empty Read", fiber.MethodPost, "/content/v2/state/read", "{}", "Request body is empty"},
		{"Disallowed Field", fiber.MethodPost, "/content/v2/state/read", `{"request":{"contentIds":["do_1"],"fields":["password"]}}`, "Invalid fields in request: [password]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := call(t, app, tt.method, tt.path, token, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, api.StatusFailed, resp.Params.Status)
			assert.Equal(t, api.CodeClientError, resp.ResponseCode)
			assert.Equal(t, tt.message, resp.Params.ErrorMessage)
		})
	}
}

func TestHandler_StorageFailureIsGeneric(t *testing.T) {
	db, mock := setupMockDB(t)
	app := newTestApp(t, db)

	mock.ExpectQuery("SELECT \\* FROM `user_entity_consumption`").
		WillReturnError(assert.AnError)

	status, resp := call(t, app, fiber.MethodPost, "/content/v2/state/read", userToken(t, "u1"),
		`{"request":{"contentIds":["do_1"]}}`)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, api.CodeServerError, resp.ResponseCode)
	assert.Equal(t, "Failed to read content state", resp.Params.ErrorMessage)
	assert.NotContains(t, resp.Params.ErrorMessage, assert.AnError.Error())
}

func TestFeature_DisabledWithoutDatabase(t *testing.T) {
	f := contentstate.NewFeature(nil, defaultPolicy(), identity.Config{}, nil, nil)
	assert.False(t, f.IsEnabled())
	assert.Equal(t, "contentstate", f.Name())
}
