package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) VerifyToken(tokenString string) (string, error) {
	args := m.Called(tokenString)
	return args.String(0), args.Error(1)
}

type MockPrincipalLoader struct {
	mock.Mock
}

func (m *MockPrincipalLoader) LoadEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

type AuthMiddlewareTestSuite struct {
	suite.Suite
	verifier *MockTokenVerifier
	loader   *MockPrincipalLoader
	router   *gin.Engine
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.verifier = new(MockTokenVerifier)
	s.loader = new(MockPrincipalLoader)

	s.router = gin.New()
	protected := s.router.Group("/", AuthMiddleware(s.verifier, s.loader))
	protected.GET("/whoami", func(c *gin.Context) {
		p, _ := PrincipalFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"id": p.ID, "tenant": p.TenantCode, "role": p.Role})
	})
	protected.DELETE("/danger", Authorize(AdminOnly.WithSharedSecret(), "s3cret"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	protected.POST("/manage", Authorize(Managers, ""), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) do(method, path, auth string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AuthMiddlewareTestSuite) givenEmployee(role domain.Role, active bool) {
	s.verifier.On("VerifyToken", "good").Return("emp-1", nil)
	s.loader.On("LoadEmployee", mock.Anything, "emp-1").Return(&domain.Employee{
		ID: "emp-1", TenantCode: "COMP-1234", Role: role, IsActive: active,
	}, nil)
}

func (s *AuthMiddlewareTestSuite) TestMissingHeader() {
	rec := s.do(http.MethodGet, "/whoami", "", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareTestSuite) TestWrongScheme() {
	rec := s.do(http.MethodGet, "/whoami", "Basic abc", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareTestSuite) TestExpiredToken() {
	s.verifier.On("VerifyToken", "old").Return("", jwt.ErrTokenExpired)

	rec := s.do(http.MethodGet, "/whoami", "Bearer old", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "Token has expired")
}

func (s *AuthMiddlewareTestSuite) TestDeletedEmployee() {
	s.verifier.On("VerifyToken", "good").Return("emp-1", nil)
	s.loader.On("LoadEmployee", mock.Anything, "emp-1").Return(nil, apperrors.NewNotFoundError("employee not found"))

	rec := s.do(http.MethodGet, "/whoami", "Bearer good", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareTestSuite) TestStoreFailure() {
	s.verifier.On("VerifyToken", "good").Return("emp-1", nil)
	s.loader.On("LoadEmployee", mock.Anything, "emp-1").Return(nil, errors.New("db down"))

	rec := s.do(http.MethodGet, "/whoami", "Bearer good", nil)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "db down")
}

func (s *AuthMiddlewareTestSuite) TestInactiveEmployee() {
	s.givenEmployee(domain.RoleAdmin, false)

	rec := s.do(http.MethodGet, "/whoami", "Bearer good", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareTestSuite) TestPrincipalComesFromStore() {
	s.givenEmployee(domain.RoleManager, true)

	rec := s.do(http.MethodGet, "/whoami", "bearer good", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("emp-1", body["id"])
	s.Equal("COMP-1234", body["tenant"])
	s.Equal("manager", body["role"])
}

func (s *AuthMiddlewareTestSuite) TestAuthorizeRejectsRole() {
	s.givenEmployee(domain.RoleEmployee, true)

	rec := s.do(http.MethodPost, "/manage", "Bearer good", nil)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *AuthMiddlewareTestSuite) TestAuthorizeAdmitsManager() {
	s.givenEmployee(domain.RoleManager, true)

	rec := s.do(http.MethodPost, "/manage", "Bearer good", nil)
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *AuthMiddlewareTestSuite) TestSharedSecretRequired() {
	s.givenEmployee(domain.RoleAdmin, true)

	rec := s.do(http.MethodDelete, "/danger", "Bearer good", nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodDelete, "/danger", "Bearer good", map[string]string{AdminSecretHeader: "nope"})
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodDelete, "/danger", "Bearer good", map[string]string{AdminSecretHeader: "s3cret"})
	s.Equal(http.StatusNoContent, rec.Code)
}

func TestAuthorizeWithoutConfiguredSecretIsNoop(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/danger", func(c *gin.Context) {
		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), domain.Principal{ID: "a", Role: domain.RoleAdmin}))
		c.Next()
	}, Authorize(AdminOnly.WithSharedSecret(), ""), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/danger", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAuthorizeWithoutPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", Authorize(AnyRole, ""), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
