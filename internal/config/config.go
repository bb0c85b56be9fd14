package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Server Server `mapstructure:",squash"`
	Duzz   Duzz   `mapstructure:",squash"`
	Auth   Auth   `mapstructure:",squash"`
	Cache  Cache  `mapstructure:",squash"`
	Report Report `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Duzz é a configuração de acesso à API do DUZZ Commercial.
type Duzz struct {
	BaseURL        string `mapstructure:"duzz_base_url"`
	TimeoutSeconds int    `mapstructure:"duzz_timeout_seconds"`
}

type Auth struct {
	Secret          string `mapstructure:"auth_secret"`
	TokenTTLMinutes int    `mapstructure:"auth_token_ttl_minutes"`
}

// Cache controla a memoização das chamadas ao vendor: janela de validade
// e capacidade máxima por operação (descarte LRU ao exceder).
type Cache struct {
	TTLMinutes int `mapstructure:"cache_ttl_minutes"`
	MaxEntries int `mapstructure:"cache_max_entries"`
}

// Report controla a lista de meses de competência selecionáveis.
type Report struct {
	FirstMonth string `mapstructure:"report_first_month"`
}

func (c Cache) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

func (a Auth) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DUZZ_BASE_URL", "http://commercial.duzzsystem.com.br:8080")
	viper.SetDefault("DUZZ_TIMEOUT_SECONDS", 30)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL_MINUTES", 720) // 12 horas de sessão no dashboard

	viper.SetDefault("CACHE_TTL_MINUTES", 10)  // Janela de validade da memoização
	viper.SetDefault("CACHE_MAX_ENTRIES", 128) // Capacidade por operação

	viper.SetDefault("REPORT_FIRST_MONTH", "2023-01")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile tenta carregar o .env das localizações conhecidas.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
