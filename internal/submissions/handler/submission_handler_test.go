package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	formdomain "github.com/CodeRohanDev/FastSubmit-sub004/internal/forms/domain"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/identity"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/mocks"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/notify"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/ratelimit"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/submissions/domain"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/submissions/dto"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/submissions/handler"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/submissions/service"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeKey(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(identity.LocalsUserID, userID)
		return c.Next()
	}
}

func newSubmissionApp(t *testing.T, limiter ratelimit.Limiter) (*fiber.App, *mocks.MockFormRepository, *mocks.MockSubmissionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockForms := mocks.NewMockFormRepository(ctrl)
	mockSubs := mocks.NewMockSubmissionRepository(ctrl)
	submits := service.NewSubmitService(mockForms, mockSubs, limiter,
		notify.LogNotifier{Log: zerolog.Nop()}, zerolog.Nop())
	h := handler.NewSubmissionHandler(submits)

	app := fiber.New()
	handler.RegisterRoutes(app, h, fakeKey("user-1"))
	return app, mockForms, mockSubs
}

func openForm() *formdomain.Form {
	return &formdomain.Form{
		ID:     "form-1",
		UserID: "user-1",
		Name:   "Contact",
		Fields: []formdomain.FieldSpec{
			{Name: "email", Type: "email", Required: true},
		},
	}
}

func gatedForm() *formdomain.Form {
	f := openForm()
	f.RequireDomainVerification = true
	f.AllowedDomains = []string{"example.com"}
	return f
}

func TestSubmissionHandler_Submit(t *testing.T) {
	limiter := ratelimit.NewMemory(100, time.Minute)

	t.Run("success", func(t *testing.T) {
		app, mockForms, mockSubs := newSubmissionApp(t, limiter)

		mockForms.EXPECT().GetActiveByID(gomock.Any(), "form-1").Return(openForm(), nil)
		mockSubs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		body, _ := json.Marshal(map[string]any{"email": "visitor@example.org"})
		req := httptest.NewRequest(http.MethodPost, "/s/form-1", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var out map[string]any
		raw, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.Equal(t, true, out["success"])
		assert.NotEmpty(t, out["id"])
	})

	t.Run("origin rejected", func(t *testing.T) {
		app, mockForms, _ := newSubmissionApp(t, limiter)

		mockForms.EXPECT().GetActiveByID(gomock.Any(), "form-1").Return(gatedForm(), nil)

		body, _ := json.Marshal(map[string]any{"email": "visitor@example.org"})
		req := httptest.NewRequest(http.MethodPost, "/s/form-1", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Origin", "https://evil.com")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("referer used when origin absent", func(t *testing.T) {
		app, mockForms, mockSubs := newSubmissionApp(t, limiter)

		mockForms.EXPECT().GetActiveByID(gomock.Any(), "form-1").Return(gatedForm(), nil)
		mockSubs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		body, _ := json.Marshal(map[string]any{"email": "visitor@example.org"})
		req := httptest.NewRequest(http.MethodPost, "/s/form-1", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Referer", "https://example.com/contact")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("form not found", func(t *testing.T) {
		app, mockForms, _ := newSubmissionApp(t, limiter)

		mockForms.EXPECT().GetActiveByID(gomock.Any(), "missing").Return(nil, nil)

		body, _ := json.Marshal(map[string]any{"email": "visitor@example.org"})
		req := httptest.NewRequest(http.MethodPost, "/s/missing", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("validation failure", func(t *testing.T) {
		app, mockForms, _ := newSubmissionApp(t, limiter)

		mockForms.EXPECT().GetActiveByID(gomock.Any(), "form-1").Return(openForm(), nil)

		body, _ := json.Marshal(map[string]any{"email": "not-an-email"})
		req := httptest.NewRequest(http.MethodPost, "/s/form-1", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rate limited", func(t *testing.T) {
		app, _, _ := newSubmissionApp(t, ratelimit.NewMemory(0, time.Minute))

		body, _ := json.Marshal(map[string]any{"email": "visitor@example.org"})
		req := httptest.NewRequest(http.MethodPost, "/s/form-1", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	})
}

func TestSubmissionHandler_List(t *testing.T) {
	limiter := ratelimit.NewMemory(100, time.Minute)

	t.Run("success", func(t *testing.T) {
		app, mockForms, mockSubs := newSubmissionApp(t, limiter)

		subs := []domain.Submission{
			{ID: "sub-1", FormID: "form-1", Data: map[string]any{"email": "a@b.co"}},
		}

		mockForms.EXPECT().GetActiveByID(gomock.Any(), "form-1").Return(openForm(), nil)
		mockSubs.EXPECT().ListByForm(gomock.Any(), "form-1", 25).Return(subs, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/forms/form-1/submissions?limit=25", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out []dto.SubmissionOutput
		raw, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(raw, &out))
		require.Len(t, out, 1)
		assert.Equal(t, "sub-1", out[0].ID)
	})

	t.Run("someone else's form", func(t *testing.T) {
		app, mockForms, _ := newSubmissionApp(t, limiter)

		other := openForm()
		other.UserID = "user-2"
		mockForms.EXPECT().GetActiveByID(gomock.Any(), "form-1").Return(other, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/forms/form-1/submissions", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}
