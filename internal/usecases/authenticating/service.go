package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dcommercial-report-api/infrastructure/integrator/duzz"
	"github.com/vfg2006/dcommercial-report-api/infrastructure/integrator/duzz/duzzclient"
	"github.com/vfg2006/dcommercial-report-api/internal/config"
	"github.com/vfg2006/dcommercial-report-api/internal/domain"
	"github.com/vfg2006/dcommercial-report-api/pkg/apiErrors"
)

type Authenticator interface {
	Login(username, password, company string) (*LoginResult, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// LoginResult carrega o token emitido pela API e o pseudônimo da empresa
// retornado pelo back-office para exibição no painel.
type LoginResult struct {
	Token     string
	Pseudonym string
}

type Service struct {
	integrator duzz.Integrator
	cfg        *config.Config
}

func NewService(integrator duzz.Integrator, cfg *config.Config) Authenticator {
	return &Service{
		integrator: integrator,
		cfg:        cfg,
	}
}

// Login valida as credenciais no back-office e embrulha a sessão obtida
// (company, sessionToken, pseudonym) em um JWT próprio da API. Nenhuma
// credencial é armazenada: o token carrega tudo que as próximas
// requisições precisam.
func (s *Service) Login(username, password, company string) (*LoginResult, error) {
	if username == "" || password == "" || company == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário, senha e empresa são obrigatórios")
	}

	session, err := s.integrator.Authenticate(username, password, company)
	if err != nil {
		if errors.Is(err, duzzclient.ErrInvalidCredentials) {
			return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Usuário, senha ou empresa incorretos")
		}

		logrus.WithError(err).Error("Erro ao autenticar no back-office")
		return nil, NewAuthError(err, apiErrors.ErrExternalService, "Erro ao autenticar no back-office")
	}

	token, err := generateJWT(session, s.cfg)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return &LoginResult{
		Token:     token,
		Pseudonym: session.Pseudonym,
	}, nil
}

func generateJWT(session *domain.Session, cfg *config.Config) (string, error) {
	now := time.Now()

	claims := domain.Claims{
		Company:      session.Company,
		SessionToken: session.SessionToken,
		Pseudonym:    session.Pseudonym,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Auth.Secret))
}

// ValidateToken verifica a assinatura e a validade do token emitido no
// login e devolve as claims com a sessão do back-office.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
