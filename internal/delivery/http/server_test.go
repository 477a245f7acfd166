package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"voll/config"
	"voll/internal/delivery/http/router"
	"voll/internal/delivery/http/router/handler"
	"voll/internal/domain/entity"
	domainerrors "voll/internal/domain/errors"
	"voll/internal/domain/service"
	"voll/internal/errors"
	"voll/internal/infra/metrics"
	mockSvc "voll/internal/mocks/service"
	mockUsecase "voll/internal/mocks/usecase"
	"voll/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	echo    *echo.Echo
	uc      *mockUsecase.MockDoctorUsecase
	tokens  *mockSvc.MockTokenService
	limiter *mockSvc.MockRateLimiter
	metrics *metrics.Metrics
	authOn  bool
	rateOn  bool
	checks  []service.HealthCheck
	proxies []string
}

type apiOption func(*testAPI)

func withAuth() apiOption { return func(a *testAPI) { a.authOn = true } }

func withRateLimit() apiOption { return func(a *testAPI) { a.rateOn = true } }

func withTrustedProxies(cidrs ...string) apiOption {
	return func(a *testAPI) { a.proxies = cidrs }
}

func withHealthChecks(checks ...service.HealthCheck) apiOption {
	return func(a *testAPI) { a.checks = checks }
}

func newTestAPI(t *testing.T, opts ...apiOption) *testAPI {
	t.Helper()

	api := &testAPI{
		uc:      mockUsecase.NewMockDoctorUsecase(t),
		tokens:  mockSvc.NewMockTokenService(t),
		limiter: mockSvc.NewMockRateLimiter(t),
		metrics: metrics.New(),
	}
	for _, opt := range opts {
		opt(api)
	}

	cfg := &config.Config{
		Auth:      &config.AuthConfig{Enabled: api.authOn},
		RateLimit: &config.RateLimitConfig{Enabled: api.rateOn},
		Metrics:   &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.TrustedProxies = api.proxies
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var limiter service.RateLimiter
	if api.rateOn {
		limiter = api.limiter
	}

	var err error
	api.echo, err = NewEcho(cfg, logger, api.metrics)
	require.NoError(t, err)
	router.NewRouter(router.RouterParams{
		Config:        cfg,
		Logger:        logger,
		DoctorHandler: handler.NewDoctorHandler(api.uc),
		HealthHandler: handler.NewHealthHandler(api.checks),
		TokenService:  api.tokens,
		RateLimiter:   limiter,
		Metrics:       api.metrics,
	}).RegisterRoutes(api.echo)

	return api
}

func (a *testAPI) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	env := decode(t, rec)
	require.NotNil(t, env.Error, rec.Body.String())

	return env.Error.Code
}

const registerBody = `{
	"name": "Ana Souza",
	"email": "ana@voll.med",
	"phone": "61999998888",
	"crm": "123456",
	"specialty": "CARDIOLOGIA",
	"address": {"street": "Rua A", "district": "Centro", "zip_code": "70000000", "city": "Brasilia", "state": "DF"}
}`

func sampleDetail() *usecase.DoctorDetail {
	return &usecase.DoctorDetail{
		ID:        uuid.MustParse("0190d6a2-7c1e-7a3b-9c4d-5e6f7a8b9c0d"),
		Name:      "Ana Souza",
		Email:     "ana@voll.med",
		Phone:     "61999998888",
		CRM:       "123456",
		Specialty: entity.SpecialtyCardiology,
		Active:    true,
	}
}

func TestRegister_CreatedWithLocation(t *testing.T) {
	api := newTestAPI(t)
	detail := sampleDetail()

	api.uc.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterDoctorInput) bool {
			return in.CRM == "123456" && in.Specialty == "CARDIOLOGIA" && in.Address.ZipCode == "70000000"
		})).
		Return(detail, nil)

	rec := api.do(http.MethodPost, "/medicos", registerBody, "X-Request-Id", "req-42")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/medicos/"+detail.ID.String(), rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))

	env := decode(t, rec)
	assert.Equal(t, "req-42", env.Meta.RequestID)

	var got usecase.DoctorDetail
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, *detail, got)
}

func TestRegister_MinimalBody(t *testing.T) {
	api := newTestAPI(t)
	detail := &usecase.DoctorDetail{
		ID:        uuid.MustParse("0190d6a2-7c1e-7a3b-9c4d-5e6f7a8b9c0e"),
		Name:      "Ana",
		Email:     "a@x.com",
		CRM:       "123",
		Specialty: entity.SpecialtyCardiology,
		Active:    true,
	}

	api.uc.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterDoctorInput) bool {
			return in.Name == "Ana" && in.Phone == "" && in.CRM == "123"
		})).
		Return(detail, nil)

	rec := api.do(http.MethodPost, "/medicos", `{
		"name": "Ana",
		"email": "a@x.com",
		"crm": "123",
		"specialty": "CARDIOLOGIA",
		"address": {"street": "Rua A", "district": "Centro", "zip_code": "70000000", "city": "Brasilia", "state": "DF"}
	}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got usecase.DoctorDetail
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, detail.ID, got.ID)
	assert.True(t, got.Active)
}

func TestRegister_RejectedBeforeUsecase(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "blank name",
			body:      strings.Replace(registerBody, `"name": "Ana Souza"`, `"name": "   "`, 1),
			wantField: "name",
		},
		{
			name:      "crm too long",
			body:      strings.Replace(registerBody, `"crm": "123456"`, `"crm": "1234567"`, 1),
			wantField: "crm",
		},
		{
			name:      "blank street",
			body:      strings.Replace(registerBody, `"street": "Rua A"`, `"street": " "`, 1),
			wantField: "address.street",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			rec := api.do(http.MethodPost, "/medicos", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			assert.Contains(t, string(env.Error.Details), `"`+tt.wantField+`"`)
			api.uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{"malformed json", `{"name":`, nil, http.StatusBadRequest, "INVALID_INPUT"},
		{"validation", registerBody, domainerrors.ErrValidationFailed.WithDetails([]usecase.FieldError{{Field: "crm", Rule: "number"}}), http.StatusBadRequest, "VALIDATION_FAILED"},
		{"duplicate", registerBody, domainerrors.ErrDoctorAlreadyExists, http.StatusConflict, "DOCTOR_ALREADY_EXISTS"},
		{"wrapped app error", registerBody, errors.Wrap(domainerrors.ErrDoctorAlreadyExists, "tx"), http.StatusConflict, "DOCTOR_ALREADY_EXISTS"},
		{"unexpected", registerBody, errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"transaction failed", registerBody, errors.Join(domainerrors.ErrTransactionFailed, errors.New("commit")), http.StatusInternalServerError, "TRANSACTION_FAILED"},
		{"too large", `{"name":"` + strings.Repeat("a", 2048) + `"}`, nil, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			if tt.ucErr != nil {
				api.uc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := api.do(http.MethodPost, "/medicos", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}

func TestRegister_ValidationDetailsRendered(t *testing.T) {
	api := newTestAPI(t)
	api.uc.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails([]usecase.FieldError{{Field: "address.zip_code", Rule: "len", Param: "8"}}))

	rec := api.do(http.MethodPost, "/medicos", registerBody)

	env := decode(t, rec)
	require.NotNil(t, env.Error)
	var details []usecase.FieldError
	require.NoError(t, json.Unmarshal(env.Error.Details, &details))
	assert.Equal(t, []usecase.FieldError{{Field: "address.zip_code", Rule: "len", Param: "8"}}, details)
}

func TestServerError_HidesDetails(t *testing.T) {
	api := newTestAPI(t)
	api.uc.EXPECT().Get(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("relation missing"), "failed to find doctor by id"))

	rec := api.do(http.MethodGet, "/medicos/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", env.Error.Code)
	assert.Empty(t, env.Error.Details)
}

func TestList_PageRequestFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  entity.PageRequest
	}{
		{"defaults", "", entity.DefaultPageRequest()},
		{"spring style sort", "?page=2&size=5&sort=crm,desc", entity.PageRequest{Page: 2, Size: 5, Sort: entity.SortByCRM, Direction: entity.SortDesc}},
		{"separate direction wins", "?sort=email,asc&direction=DESC", entity.PageRequest{Page: 0, Size: 10, Sort: entity.SortByEmail, Direction: entity.SortDesc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			page := entity.NewPage([]*usecase.DoctorSummary{}, tt.want, 0)
			api.uc.EXPECT().List(mock.Anything, tt.want).Return(page, nil)

			rec := api.do(http.MethodGet, "/medicos"+tt.query, "")

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			var got entity.Page[*usecase.DoctorSummary]
			require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
			assert.Equal(t, tt.want.Size, got.Size)
			assert.True(t, got.Empty)
			assert.NotNil(t, got.Content)
		})
	}
}

func TestList_HugePagePassedThrough(t *testing.T) {
	api := newTestAPI(t)
	want := entity.DefaultPageRequest()
	want.Page = 1_000_000_000_000_000_000
	api.uc.EXPECT().List(mock.Anything, want).
		Return(entity.NewPage([]*usecase.DoctorSummary{}, want, 3), nil)

	rec := api.do(http.MethodGet, "/medicos?page=1000000000000000000", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got entity.Page[*usecase.DoctorSummary]
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.True(t, got.Empty)
	assert.EqualValues(t, 3, got.TotalElements)
}

func TestList_InvalidQuery(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/medicos?size=ten", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PAGE_REQUEST", errorCode(t, rec))
}

func TestGet(t *testing.T) {
	api := newTestAPI(t)
	detail := sampleDetail()
	unknown := uuid.New()

	api.uc.EXPECT().Get(mock.Anything, detail.ID).Return(detail, nil)
	api.uc.EXPECT().Get(mock.Anything, unknown).Return(nil, domainerrors.ErrDoctorNotFound)

	rec := api.do(http.MethodGet, "/medicos/"+detail.ID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/medicos/"+unknown.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DOCTOR_NOT_FOUND", errorCode(t, rec))

	rec = api.do(http.MethodGet, "/medicos/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestUpdate(t *testing.T) {
	detail := sampleDetail()

	t.Run("applies mutable fields", func(t *testing.T) {
		api := newTestAPI(t)
		api.uc.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(in *usecase.UpdateDoctorInput) bool {
				return in.ID == detail.ID && in.Name != nil && *in.Name == "Ana Lima" &&
					in.Email == nil && in.Address != nil && *in.Address.City == "Goiania"
			})).
			Return(detail, nil)

		rec := api.do(http.MethodPut, "/medicos",
			`{"id":"`+detail.ID.String()+`","name":"Ana Lima","address":{"city":"Goiania"}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects crm and specialty", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPut, "/medicos",
			`{"id":"`+detail.ID.String()+`","crm":"999999","specialty":"DERMATOLOGIA"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "IMMUTABLE_FIELD", env.Error.Code)
		assert.Contains(t, string(env.Error.Details), "specialty")
	})

	t.Run("blank name", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPut, "/medicos", `{"id":"`+detail.ID.String()+`","name":"  "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
		api.uc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("invalid id", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPut, "/medicos", `{"name":"Ana"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})

	t.Run("unknown doctor", func(t *testing.T) {
		api := newTestAPI(t)
		api.uc.EXPECT().Update(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrDoctorNotFound)

		rec := api.do(http.MethodPut, "/medicos", `{"id":"`+uuid.NewString()+`","name":"Ana"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeactivate(t *testing.T) {
	api := newTestAPI(t)
	id := uuid.New()
	api.uc.EXPECT().Deactivate(mock.Anything, id).Return(nil)

	rec := api.do(http.MethodDelete, "/medicos/"+id.String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAuth(t *testing.T) {
	api := newTestAPI(t, withAuth())
	page := entity.NewPage([]*usecase.DoctorSummary{}, entity.DefaultPageRequest(), 0)

	api.tokens.EXPECT().ValidateToken("good").Return(&service.Claims{Roles: []string{"admin"}}, nil)
	api.tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired"))
	api.uc.EXPECT().List(mock.Anything, mock.Anything).Return(page, nil).Once()

	rec := api.do(http.MethodGet, "/medicos", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))

	rec = api.do(http.MethodGet, "/medicos", "", echo.HeaderAuthorization, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(http.MethodGet, "/medicos", "", echo.HeaderAuthorization, "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(http.MethodGet, "/medicos", "", echo.HeaderAuthorization, "Bearer good")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code, "health stays public")
}

func TestRateLimit(t *testing.T) {
	api := newTestAPI(t, withRateLimit())
	page := entity.NewPage([]*usecase.DoctorSummary{}, entity.DefaultPageRequest(), 0)

	api.limiter.EXPECT().Allow(mock.Anything, "ip:192.0.2.1").
		Return(service.RateDecision{Allowed: true}, nil).Once()
	api.limiter.EXPECT().Allow(mock.Anything, "ip:192.0.2.1").
		Return(service.RateDecision{Allowed: false, RetryAfter: 2500 * time.Millisecond}, nil).Once()
	api.limiter.EXPECT().Allow(mock.Anything, "ip:192.0.2.1").
		Return(service.RateDecision{}, errors.New("redis down")).Once()
	api.uc.EXPECT().List(mock.Anything, mock.Anything).Return(page, nil).Twice()

	rec := api.do(http.MethodGet, "/medicos", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/medicos", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "3", rec.Header().Get(echo.HeaderRetryAfter))
	assert.Equal(t, "TOO_MANY_REQUESTS", errorCode(t, rec))

	rec = api.do(http.MethodGet, "/medicos", "")
	assert.Equal(t, http.StatusOK, rec.Code, "limiter failure lets the request through")
}

func TestRateLimit_ForwardedHeadersIgnoredWithoutTrustedProxy(t *testing.T) {
	api := newTestAPI(t, withRateLimit())
	page := entity.NewPage([]*usecase.DoctorSummary{}, entity.DefaultPageRequest(), 0)

	api.limiter.EXPECT().Allow(mock.Anything, "ip:192.0.2.1").
		Return(service.RateDecision{Allowed: true}, nil).Once()
	api.limiter.EXPECT().Allow(mock.Anything, "ip:192.0.2.1").
		Return(service.RateDecision{Allowed: false, RetryAfter: time.Second}, nil).Once()
	api.uc.EXPECT().List(mock.Anything, mock.Anything).Return(page, nil).Once()

	rec := api.do(http.MethodGet, "/medicos", "", echo.HeaderXForwardedFor, "10.1.1.1")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/medicos", "",
		echo.HeaderXForwardedFor, "10.9.9.9",
		echo.HeaderXRealIP, "10.8.8.8",
	)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "a fresh forwarded address does not reset the budget")
}

func TestRateLimit_TrustedProxyForwardsClientIP(t *testing.T) {
	api := newTestAPI(t, withRateLimit(), withTrustedProxies("192.0.2.0/24"))
	page := entity.NewPage([]*usecase.DoctorSummary{}, entity.DefaultPageRequest(), 0)

	api.limiter.EXPECT().Allow(mock.Anything, "ip:198.51.100.7").
		Return(service.RateDecision{Allowed: true}, nil).Twice()
	api.uc.EXPECT().List(mock.Anything, mock.Anything).Return(page, nil).Twice()

	rec := api.do(http.MethodGet, "/medicos", "", echo.HeaderXForwardedFor, "198.51.100.7")
	assert.Equal(t, http.StatusOK, rec.Code)

	// A client-supplied leftmost entry is not believed; the proxy's own hop is.
	rec = api.do(http.MethodGet, "/medicos", "", echo.HeaderXForwardedFor, "203.0.113.1, 198.51.100.7")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewEcho_InvalidTrustedProxy(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.TrustedProxies = []string{"10.0.0.0/33"}

	_, err := NewEcho(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "10.0.0.0/33")
}

func TestHealth(t *testing.T) {
	healthy := mockSvc.NewMockHealthCheck(t)
	healthy.EXPECT().Name().Return("postgres")
	healthy.EXPECT().Check(mock.Anything).Return(nil)

	api := newTestAPI(t, withHealthChecks(healthy, nil))
	rec := api.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"postgres":"ok"`)

	broken := mockSvc.NewMockHealthCheck(t)
	broken.EXPECT().Name().Return("redis")
	broken.EXPECT().Check(mock.Anything).Return(errors.New("dial tcp: refused"))

	api = newTestAPI(t, withHealthChecks(broken))
	rec = api.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redis":"down"`)
	assert.NotContains(t, rec.Body.String(), "refused")
}

func TestMetricsEndpoint(t *testing.T) {
	api := newTestAPI(t)
	api.uc.EXPECT().Deactivate(mock.Anything, mock.Anything).Return(domainerrors.ErrDoctorNotFound)

	rec := api.do(http.MethodDelete, "/medicos/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `voll_http_requests_total{method="DELETE",route="/medicos/:id",status="404"} 1`)
	assert.NotContains(t, body, `route="/metrics"`)
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/pacientes", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ROUTE_NOT_FOUND", errorCode(t, rec))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}
