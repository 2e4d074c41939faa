package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CodeRohanDev/FastSubmit-sub004/internal/domains/handler"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/domains/service"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/identity"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterRoutes verifies the domain endpoints are mounted and sit
// behind the session middleware.
func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDomainRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	mockChecker := mocks.NewMockDNSChecker(ctrl)
	registry := service.NewRegistryService(mockRepo, mockTokens, mockChecker, zerolog.Nop())

	app := fiber.New()
	handler.RegisterRoutes(app, handler.NewDomainHandler(registry),
		identity.RequireSession(identity.NewTokenService("test-secret")))

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/domains/"},
		{http.MethodGet, "/api/v1/domains/"},
		{http.MethodPost, "/api/v1/domains/dom-1/verify"},
		{http.MethodDelete, "/api/v1/domains/dom-1"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			// A 404 would mean the route is missing; without a session token
			// every mounted route answers 401.
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}
