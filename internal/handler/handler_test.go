package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"planetary/internal/auth"
	"planetary/internal/config"
	"planetary/internal/errors"
	"planetary/internal/handler"
	"planetary/internal/model"
	"planetary/internal/router"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, firstName, lastName, email, password string) (*model.User, error) {
	args := m.Called(ctx, firstName, lastName, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

// MockPlanetService is a mock implementation of service.PlanetService.
type MockPlanetService struct {
	mock.Mock
}

func (m *MockPlanetService) List(ctx context.Context) ([]model.Planet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Planet), args.Error(1)
}

func (m *MockPlanetService) Get(ctx context.Context, id uint) (*model.Planet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Planet), args.Error(1)
}

func (m *MockPlanetService) Add(ctx context.Context, name string, mass, radius, distance float64) (*model.Planet, error) {
	args := m.Called(ctx, name, mass, radius, distance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Planet), args.Error(1)
}

func (m *MockPlanetService) Update(ctx context.Context, id uint, name string, mass, radius, distance float64) (*model.Planet, error) {
	args := m.Called(ctx, id, name, mass, radius, distance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Planet), args.Error(1)
}

func (m *MockPlanetService) Remove(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

const testSecret = "test-secret"

func newTestServer(userSvc *MockUserService, planetSvc *MockPlanetService) *echo.Echo {
	e := echo.New()
	cfg := &config.Config{JWTSecret: testSecret}
	router.Register(
		e,
		cfg,
		handler.NewGreetingHandler(),
		handler.NewAuthHandler(userSvc),
		handler.NewPlanetHandler(planetSvc),
	)
	return e
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := auth.NewJWTService(testSecret).GenerateAccessToken("fardeen@email.com")
	assert.NoError(t, err)
	return "Bearer " + token
}

func formRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		userSvc := new(MockUserService)
		userSvc.On("Register", mock.Anything, "Fardeen", "Hossain", "a@x.com", "password").
			Return(&model.User{ID: 1, Email: "a@x.com"}, nil)

		e := newTestServer(userSvc, new(MockPlanetService))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formRequest(http.MethodPost, "/register", url.Values{
			"first_name": {"Fardeen"},
			"last_name":  {"Hossain"},
			"email":      {"a@x.com"},
			"password":   {"password"},
		}))

		assert.Equal(t, http.StatusCreated, rec.Code)
		userSvc.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		userSvc := new(MockUserService)
		userSvc.On("Register", mock.Anything, "Fardeen", "Hossain", "a@x.com", "password").
			Return(nil, errors.ErrEmailExists)

		e := newTestServer(userSvc, new(MockPlanetService))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formRequest(http.MethodPost, "/register", url.Values{
			"first_name": {"Fardeen"},
			"last_name":  {"Hossain"},
			"email":      {"a@x.com"},
			"password":   {"password"},
		}))

		assert.Equal(t, http.StatusConflict, rec.Code)
		userSvc.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		e := newTestServer(new(MockUserService), new(MockPlanetService))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formRequest(http.MethodPost, "/register", url.Values{
			"email": {"a@x.com"},
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("success returns token", func(t *testing.T) {
		userSvc := new(MockUserService)
		userSvc.On("Login", mock.Anything, "a@x.com", "password").
			Return("some-token", &model.User{ID: 1, Email: "a@x.com"}, nil)

		e := newTestServer(userSvc, new(MockPlanetService))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formRequest(http.MethodPost, "/login", url.Values{
			"email":    {"a@x.com"},
			"password": {"password"},
		}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "some-token")
		userSvc.AssertExpectations(t)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		userSvc := new(MockUserService)
		userSvc.On("Login", mock.Anything, "a@x.com", "wrong").
			Return("", nil, errors.ErrInvalidCredentials)

		e := newTestServer(userSvc, new(MockPlanetService))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formRequest(http.MethodPost, "/login", url.Values{
			"email":    {"a@x.com"},
			"password": {"wrong"},
		}))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		userSvc.AssertExpectations(t)
	})
}

func TestListPlanets(t *testing.T) {
	planetSvc := new(MockPlanetService)
	planetSvc.On("List", mock.Anything).Return([]model.Planet{
		{ID: 1, Name: "Earth", Mass: 5.972e24, Radius: 6371, Distance: 149.6e6},
	}, nil)

	e := newTestServer(new(MockUserService), planetSvc)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/planets", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Earth")
	planetSvc.AssertExpectations(t)
}

func TestGetPlanet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		planetSvc := new(MockPlanetService)
		planetSvc.On("Get", mock.Anything, uint(1)).
			Return(&model.Planet{ID: 1, Name: "Mars"}, nil)

		e := newTestServer(new(MockUserService), planetSvc)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/planets/1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Mars")
	})

	t.Run("not found", func(t *testing.T) {
		planetSvc := new(MockPlanetService)
		planetSvc.On("Get", mock.Anything, uint(42)).
			Return(nil, errors.ErrPlanetNotFound)

		e := newTestServer(new(MockUserService), planetSvc)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/planets/42", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		e := newTestServer(new(MockUserService), new(MockPlanetService))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/planets/pluto", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAddPlanet(t *testing.T) {
	form := url.Values{
		"name":     {"Mars"},
		"mass":     {"6.39e23"},
		"radius":   {"3389.5"},
		"distance": {"227.9e6"},
	}

	t.Run("requires token", func(t *testing.T) {
		planetSvc := new(MockPlanetService)
		e := newTestServer(new(MockUserService), planetSvc)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formRequest(http.MethodPost, "/add_planet", form))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		planetSvc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("created", func(t *testing.T) {
		planetSvc := new(MockPlanetService)
		planetSvc.On("Add", mock.Anything, "Mars", 6.39e23, 3389.5, 227.9e6).
			Return(&model.Planet{ID: 4, Name: "Mars", Mass: 6.39e23, Radius: 3389.5, Distance: 227.9e6}, nil)

		e := newTestServer(new(MockUserService), planetSvc)
		req := formRequest(http.MethodPost, "/add_planet", form)
		req.Header.Set(echo.HeaderAuthorization, bearerToken(t))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		planetSvc.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		planetSvc := new(MockPlanetService)
		planetSvc.On("Add", mock.Anything, "Mars", 6.39e23, 3389.5, 227.9e6).
			Return(nil, errors.ErrPlanetExists)

		e := newTestServer(new(MockUserService), planetSvc)
		req := formRequest(http.MethodPost, "/add_planet", form)
		req.Header.Set(echo.HeaderAuthorization, bearerToken(t))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		planetSvc.AssertExpectations(t)
	})

	t.Run("malformed mass", func(t *testing.T) {
		planetSvc := new(MockPlanetService)
		e := newTestServer(new(MockUserService), planetSvc)
		req := formRequest(http.MethodPost, "/add_planet", url.Values{
			"name":     {"Mars"},
			"mass":     {"heavy"},
			"radius":   {"3389.5"},
			"distance": {"227.9e6"},
		})
		req.Header.Set(echo.HeaderAuthorization, bearerToken(t))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		planetSvc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdatePlanet(t *testing.T) {
	form := url.Values{
		"name":     {"Terra"},
		"mass":     {"5.972e24"},
		"radius":   {"6371"},
		"distance": {"149.6e6"},
	}

	t.Run("requires token", func(t *testing.T) {
		e := newTestServer(new(MockUserService), new(MockPlanetService))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formRequest(http.MethodPut, "/update_planet/1", form))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("accepted", func(t *testing.T) {
		planetSvc := new(MockPlanetService)
		planetSvc.On("Update", mock.Anything, uint(1), "Terra", 5.972e24, 6371.0, 149.6e6).
			Return(&model.Planet{ID: 1, Name: "Terra"}, nil)

		e := newTestServer(new(MockUserService), planetSvc)
		req := formRequest(http.MethodPut, "/update_planet/1", form)
		req.Header.Set(echo.HeaderAuthorization, bearerToken(t))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		planetSvc.AssertExpectations(t)
	})

	t.Run("not found still answers", func(t *testing.T) {
		planetSvc := new(MockPlanetService)
		planetSvc.On("Update", mock.Anything, uint(42), "Terra", 5.972e24, 6371.0, 149.6e6).
			Return(nil, errors.ErrPlanetNotFound)

		e := newTestServer(new(MockUserService), planetSvc)
		req := formRequest(http.MethodPut, "/update_planet/42", form)
		req.Header.Set(echo.HeaderAuthorization, bearerToken(t))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotEmpty(t, rec.Body.String())
		planetSvc.AssertExpectations(t)
	})
}

func TestRemovePlanet(t *testing.T) {
	t.Run("requires token", func(t *testing.T) {
		e := newTestServer(new(MockUserService), new(MockPlanetService))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/remove_planet/1", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("accepted", func(t *testing.T) {
		planetSvc := new(MockPlanetService)
		planetSvc.On("Remove", mock.Anything, uint(1)).Return(nil)

		e := newTestServer(new(MockUserService), planetSvc)
		req := httptest.NewRequest(http.MethodDelete, "/remove_planet/1", nil)
		req.Header.Set(echo.HeaderAuthorization, bearerToken(t))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		planetSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		planetSvc := new(MockPlanetService)
		planetSvc.On("Remove", mock.Anything, uint(42)).Return(errors.ErrPlanetNotFound)

		e := newTestServer(new(MockUserService), planetSvc)
		req := httptest.NewRequest(http.MethodDelete, "/remove_planet/42", nil)
		req.Header.Set(echo.HeaderAuthorization, bearerToken(t))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		planetSvc.AssertExpectations(t)
	})
}

func TestGreetings(t *testing.T) {
	e := newTestServer(new(MockUserService), new(MockPlanetService))

	t.Run("home", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Planetary API")
	})

	t.Run("not_found demo", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/not_found", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("url variables underage", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/url_variables/Sam/17", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("parameters of age", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/parameters?name=Sam&age=21", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Welcome Sam")
	})

	t.Run("parameters bad age", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/parameters?name=Sam&age=abc", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
