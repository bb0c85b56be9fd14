package duzzclient

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dcommercial-report-api/internal/domain"
)

type authResponse struct {
	SessionToken string `json:"sessionToken"`
	CompanyData  struct {
		Pseudonimo string `json:"pseudonimo"`
	} `json:"companyData"`
}

// Authenticate troca usuário/senha/empresa por um token de sessão no
// endpoint /auth/user. Qualquer status fora de 2xx é tratado como
// credenciais inválidas, sem retry automático.
func (c *DuzzClient) Authenticate(username, password, company string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Duzz.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base do vendor")
	}
	endpoint.Path = path.Join(endpoint.Path, "/auth/user")

	query := endpoint.Query()
	query.Set("username", username)
	query.Set("password", password)
	query.Set("company", company)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de autenticação")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição de autenticação")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logrus.WithFields(logrus.Fields{
			"company": company,
			"status":  resp.Status,
		}).Warn("Autenticação recusada pelo vendor")
		return nil, ErrInvalidCredentials
	}

	var response authResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta de autenticação")
	}

	return &domain.Session{
		Company:      company,
		SessionToken: response.SessionToken,
		Pseudonym:    response.CompanyData.Pseudonimo,
	}, nil
}
