package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"siteapi/internal/auth"
	"siteapi/internal/model"
	"siteapi/internal/service"
	svcMocks "siteapi/internal/service/mocks"
)

type testDeps struct {
	auth          *svcMocks.MockAuthService
	contacts      *svcMocks.MockContactService
	applications  *svcMocks.MockApplicationService
	opportunities *svcMocks.MockOpportunityService
	stats         *svcMocks.MockStatsService
	tokens        *auth.TokenService
}

func newTestApp(t *testing.T) (*fiber.App, *testDeps) {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	d := &testDeps{
		auth:          new(svcMocks.MockAuthService),
		contacts:      new(svcMocks.MockContactService),
		applications:  new(svcMocks.MockApplicationService),
		opportunities: new(svcMocks.MockOpportunityService),
		stats:         new(svcMocks.MockStatsService),
		tokens:        auth.NewTokenService("test-secret", time.Hour),
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, db, Deps{
		Auth:          d.auth,
		Contacts:      d.contacts,
		Applications:  d.applications,
		Opportunities: d.opportunities,
		Stats:         d.stats,
		Tokens:        d.tokens,
	})
	return app, d
}

func adminToken(t *testing.T, tokens *auth.TokenService) string {
	t.Helper()
	token, err := tokens.Sign(&model.User{ID: 1, Username: "admin", Role: model.RoleAdmin})
	require.NoError(t, err)
	return token
}

func decodeBody(t *testing.T, resp io.Reader) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp).Decode(&body))
	return body
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("valid credentials return token and user", func(t *testing.T) {
		app, d := newTestApp(t)
		d.auth.On("Login", mock.Anything, "admin", "admin123").
			Return("signed-token", &model.User{ID: 1, Username: "admin", Role: model.RoleAdmin}, nil)

		req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"username":"admin","password":"admin123"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "signed-token", body["token"])

		user := body["user"].(map[string]any)
		assert.Equal(t, "admin", user["username"])
		assert.NotContains(t, user, "password_hash")
	})

	t.Run("bad credentials return 401", func(t *testing.T) {
		app, d := newTestApp(t)
		d.auth.On("Login", mock.Anything, "admin", "wrong").
			Return("", nil, service.ErrInvalidCredentials)

		req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		errObj := body["error"].(map[string]any)
		assert.Equal(t, "UNAUTHORIZED", errObj["code"])
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		app, _ := newTestApp(t)

		req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader("{"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestVerifyEndpoint(t *testing.T) {
	app, d := newTestApp(t)

	t.Run("no token returns 401", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/auth/verify", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token returns 403", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/auth/verify", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer garbage")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("valid token echoes claims", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/auth/verify", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, d.tokens))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		assert.Equal(t, true, body["valid"])
		user := body["user"].(map[string]any)
		assert.Equal(t, "admin", user["username"])
		assert.Equal(t, model.RoleAdmin, user["role"])
	})
}

func TestCreateContactEndpoint(t *testing.T) {
	app, d := newTestApp(t)
	d.contacts.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateContactInput) bool {
		return in.FullName == "Jane" && in.Email == "jane@example.com" && in.Message == "hello"
	})).Return(int64(42), nil)

	req := httptest.NewRequest("POST", "/api/contacts", strings.NewReader(`{"full_name":"Jane","email":"jane@example.com","message":"hello"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "message received", body["message"])
	assert.Equal(t, float64(42), body["id"])
	d.contacts.AssertExpectations(t)
}

func TestListContactsEndpoint(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		app, _ := newTestApp(t)
		resp, err := app.Test(httptest.NewRequest("GET", "/api/contacts", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("defaults the limit to 50", func(t *testing.T) {
		app, d := newTestApp(t)
		d.contacts.On("List", mock.Anything, "", 50).Return([]model.Contact{{ID: 1, FullName: "Jane"}}, nil)

		req := httptest.NewRequest("GET", "/api/contacts", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, d.tokens))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		contacts := body["contacts"].([]any)
		assert.Len(t, contacts, 1)
		d.contacts.AssertExpectations(t)
	})

	t.Run("passes status and limit through", func(t *testing.T) {
		app, d := newTestApp(t)
		d.contacts.On("List", mock.Anything, "new", 10).Return([]model.Contact{}, nil)

		req := httptest.NewRequest("GET", "/api/contacts?status=new&limit=10", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, d.tokens))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		d.contacts.AssertExpectations(t)
	})

	t.Run("rejects a non-numeric limit", func(t *testing.T) {
		app, d := newTestApp(t)

		req := httptest.NewRequest("GET", "/api/contacts?limit=abc", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, d.tokens))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		errObj := body["error"].(map[string]any)
		assert.Equal(t, "INVALID_LIMIT", errObj["code"])
	})
}

func TestUpdateContactStatusEndpoint(t *testing.T) {
	app, d := newTestApp(t)
	d.contacts.On("UpdateStatus", mock.Anything, int64(999), "done").Return(int64(0), nil)

	req := httptest.NewRequest("PATCH", "/api/contacts/999", strings.NewReader(`{"status":"done"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, d.tokens))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["changes"])
}

func TestDeleteContactEndpoint(t *testing.T) {
	app, d := newTestApp(t)
	d.contacts.On("Delete", mock.Anything, int64(3)).Return(int64(1), nil)

	req := httptest.NewRequest("DELETE", "/api/contacts/3", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, d.tokens))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, float64(1), body["changes"])

	t.Run("non-numeric id is a 400", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/contacts/abc", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, d.tokens))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func multipartApplication(t *testing.T, cvContentType string, cvContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("first_name", "Jane"))
	require.NoError(t, w.WriteField("last_name", "Doe"))
	require.NoError(t, w.WriteField("email", "jane@example.com"))

	if cvContent != nil {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="cv"; filename="resume.pdf"`)
		h.Set("Content-Type", cvContentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(cvContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestCreateApplicationEndpoint(t *testing.T) {
	t.Run("without cv", func(t *testing.T) {
		app, d := newTestApp(t)
		d.applications.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateApplicationInput) bool {
			return in.FirstName == "Jane" && in.LastName == "Doe" && in.Phone == nil
		}), (*service.CVUpload)(nil)).Return(int64(7), nil)

		body, contentType := multipartApplication(t, "", nil)
		req := httptest.NewRequest("POST", "/api/applications", body)
		req.Header.Set(fiber.HeaderContentType, contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		respBody := decodeBody(t, resp.Body)
		assert.Equal(t, "application received", respBody["message"])
		assert.Equal(t, float64(7), respBody["id"])
		d.applications.AssertExpectations(t)
	})

	t.Run("with pdf cv", func(t *testing.T) {
		app, d := newTestApp(t)
		d.applications.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(cv *service.CVUpload) bool {
			return cv != nil && cv.ContentType == "application/pdf" && cv.Filename == "resume.pdf"
		})).Return(int64(8), nil)

		body, contentType := multipartApplication(t, "application/pdf", []byte("%PDF-1.4"))
		req := httptest.NewRequest("POST", "/api/applications", body)
		req.Header.Set(fiber.HeaderContentType, contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		d.applications.AssertExpectations(t)
	})

	t.Run("non-pdf cv is rejected with UPLOAD_REJECTED", func(t *testing.T) {
		app, d := newTestApp(t)
		d.applications.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), service.ErrCVNotPDF)

		body, contentType := multipartApplication(t, "image/png", []byte("PNG"))
		req := httptest.NewRequest("POST", "/api/applications", body)
		req.Header.Set(fiber.HeaderContentType, contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		respBody := decodeBody(t, resp.Body)
		errObj := respBody["error"].(map[string]any)
		assert.Equal(t, "UPLOAD_REJECTED", errObj["code"])
	})

	t.Run("oversized cv is rejected with UPLOAD_REJECTED", func(t *testing.T) {
		app, d := newTestApp(t)
		d.applications.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), service.ErrCVTooLarge)

		body, contentType := multipartApplication(t, "application/pdf", []byte("%PDF-1.4"))
		req := httptest.NewRequest("POST", "/api/applications", body)
		req.Header.Set(fiber.HeaderContentType, contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestListOpportunitiesEndpoint(t *testing.T) {
	t.Run("anonymous callers only get published rows", func(t *testing.T) {
		app, d := newTestApp(t)
		d.opportunities.On("List", mock.Anything, false).
			Return([]model.JobOpportunity{{ID: 1, Title: "Backend Engineer", IsPublished: true}}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/opportunities", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		d.opportunities.AssertExpectations(t)
	})

	t.Run("anonymous callers cannot opt into drafts", func(t *testing.T) {
		app, d := newTestApp(t)
		d.opportunities.On("List", mock.Anything, false).Return([]model.JobOpportunity{}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/opportunities?published=false", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		d.opportunities.AssertExpectations(t)
	})

	t.Run("admins see drafts by default", func(t *testing.T) {
		app, d := newTestApp(t)
		d.opportunities.On("List", mock.Anything, true).Return([]model.JobOpportunity{{ID: 1}, {ID: 2}}, nil)

		req := httptest.NewRequest("GET", "/api/opportunities", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, d.tokens))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		d.opportunities.AssertExpectations(t)
	})

	t.Run("admins can narrow to published only", func(t *testing.T) {
		app, d := newTestApp(t)
		d.opportunities.On("List", mock.Anything, false).Return([]model.JobOpportunity{}, nil)

		req := httptest.NewRequest("GET", "/api/opportunities?published=true", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, d.tokens))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		d.opportunities.AssertExpectations(t)
	})
}

func TestOpportunityAdminEndpoints(t *testing.T) {
	t.Run("create requires authentication", func(t *testing.T) {
		app, _ := newTestApp(t)

		req := httptest.NewRequest("POST", "/api/opportunities", strings.NewReader(`{"title":"x"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("create returns 201 with the new id", func(t *testing.T) {
		app, d := newTestApp(t)
		d.opportunities.On("Create", mock.Anything, mock.MatchedBy(func(in service.OpportunityInput) bool {
			return in.Title == "Backend Engineer" && in.ContractType == "full-time"
		})).Return(int64(5), nil)

		req := httptest.NewRequest("POST", "/api/opportunities",
			strings.NewReader(`{"title":"Backend Engineer","contract_type":"full-time"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, d.tokens))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		assert.Equal(t, float64(5), body["id"])
	})

	t.Run("update reports rows changed", func(t *testing.T) {
		app, d := newTestApp(t)
		d.opportunities.On("Update", mock.Anything, int64(5), mock.Anything).Return(int64(1), nil)

		req := httptest.NewRequest("PATCH", "/api/opportunities/5", strings.NewReader(`{"title":"Updated"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, d.tokens))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		assert.Equal(t, float64(1), body["changes"])
	})

	t.Run("toggle-publish returns the new state", func(t *testing.T) {
		app, d := newTestApp(t)
		d.opportunities.On("TogglePublish", mock.Anything, int64(5)).Return(true, nil)

		req := httptest.NewRequest("PATCH", "/api/opportunities/5/toggle-publish", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, d.tokens))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		assert.Equal(t, true, body["is_published"])
	})

	t.Run("toggle-publish on a missing id is a 404", func(t *testing.T) {
		app, d := newTestApp(t)
		d.opportunities.On("TogglePublish", mock.Anything, int64(999)).Return(false, service.ErrNotFound)

		req := httptest.NewRequest("PATCH", "/api/opportunities/999/toggle-publish", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, d.tokens))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		errObj := body["error"].(map[string]any)
		assert.Equal(t, "NOT_FOUND", errObj["code"])
	})

	t.Run("delete reports rows changed", func(t *testing.T) {
		app, d := newTestApp(t)
		d.opportunities.On("Delete", mock.Anything, int64(5)).Return(int64(1), nil)

		req := httptest.NewRequest("DELETE", "/api/opportunities/5", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, d.tokens))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestStatsEndpoint(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		app, _ := newTestApp(t)
		resp, err := app.Test(httptest.NewRequest("GET", "/api/stats", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("returns the aggregate", func(t *testing.T) {
		app, d := newTestApp(t)
		d.stats.On("GetStats", mock.Anything).Return(&service.Stats{
			TotalContacts:     12,
			TotalApplications: 3,
			RecentContacts:    4,
			ContactsByStatus:  []model.StatusCount{{Status: "new", Count: 8}},
		}, nil)

		req := httptest.NewRequest("GET", "/api/stats", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken(t, d.tokens))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		assert.Equal(t, float64(12), body["totalContacts"])
		assert.Equal(t, float64(3), body["totalApplications"])
		assert.Equal(t, float64(4), body["recentContacts"])
	})
}

func TestAPIIndexAndProbes(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	t.Run("unknown routes return the error envelope", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/nope", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		errObj := body["error"].(map[string]any)
		assert.Equal(t, "NOT_FOUND", errObj["code"])
	})

	t.Run("wrong method returns 405", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("PUT", "/api/auth/login", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("healthy database", func(t *testing.T) {
		db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		dbMock.ExpectPing()

		app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
		app.Get("/health", HealthCheck(db))

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unreachable database", func(t *testing.T) {
		db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		dbMock.ExpectPing().WillReturnError(assert.AnError)

		app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
		app.Get("/health", HealthCheck(db))

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})
}
