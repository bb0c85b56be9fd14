package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dcommercial-report-api/internal/domain"
	"github.com/vfg2006/dcommercial-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/dcommercial-report-api/pkg/apiErrors"
)

type stubAuthenticator struct {
	result *authenticating.LoginResult
	err    error
}

func (s *stubAuthenticator) Login(username, password, company string) (*authenticating.LoginResult, error) {
	return s.result, s.err
}

func (s *stubAuthenticator) ValidateToken(tokenString string) (*domain.Claims, error) {
	return nil, nil
}

func TestLoginSuccess(t *testing.T) {
	handler := Login(&stubAuthenticator{
		result: &authenticating.LoginResult{Token: "jwt-abc", Pseudonym: "Bar do Zé"},
	})

	body := `{"username":"joao","password":"s3nha","company":"99"}`
	request := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response LoginResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "jwt-abc", response.Token)
	assert.Equal(t, "Bar do Zé", response.Pseudonym)
}

func TestLoginMalformedBody(t *testing.T) {
	handler := Login(&stubAuthenticator{})

	request := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader("{nem-json"))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	handler := Login(&stubAuthenticator{
		err: authenticating.NewAuthError(
			authenticating.ErrInvalidCredentials,
			apiErrors.ErrInvalidCredentials,
			"Usuário, senha ou empresa incorretos",
		),
	})

	body := `{"username":"joao","password":"errada","company":"99"}`
	request := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrInvalidCredentials, apiErr.Code)
}

func TestLoginMissingFields(t *testing.T) {
	handler := Login(&stubAuthenticator{err: authenticating.ErrMissingRequiredData})

	request := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{}`))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
}
