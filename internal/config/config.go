package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	FileDriver     = "file"
	PostgresDriver = "postgres"
	MemoryDriver   = "memory"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Storage  Storage  `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
}

type App struct {
	LogLevel       string         `mapstructure:"log_level"`
	Timezone       string         `mapstructure:"app_timezone"`
	SaleIDStrategy string         `mapstructure:"sale_id_strategy"`
	Location       *time.Location `mapstructure:"-"`
}

type Storage struct {
	Driver     string `mapstructure:"storage_driver"`
	Path       string `mapstructure:"storage_path"`
	Passphrase string `mapstructure:"storage_passphrase"`
	KeyPrefix  string `mapstructure:"storage_key_prefix"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Auth guarda o único par de credenciais aceito pelo painel
type Auth struct {
	Username string `mapstructure:"auth_username"`
	Password string `mapstructure:"auth_password"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_TIMEZONE", "Local")
	viper.SetDefault("SALE_ID_STRATEGY", "uuid") // uuid ou nanoid

	viper.SetDefault("STORAGE_DRIVER", FileDriver) // file, postgres ou memory
	viper.SetDefault("STORAGE_PATH", "./data")
	viper.SetDefault("STORAGE_PASSPHRASE", "") // vazio desabilita a criptografia dos arquivos
	viper.SetDefault("STORAGE_KEY_PREFIX", "dashgreen")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashgreen?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Par fixo de credenciais do painel (sem modelo de segurança)
	viper.SetDefault("AUTH_USERNAME", "Guilherme Gomes")
	viper.SetDefault("AUTH_PASSWORD", "1701215")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	return decode(viper.GetViper())
}

func decode(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) finalize() error {
	switch c.Storage.Driver {
	case FileDriver, PostgresDriver, MemoryDriver:
	default:
		return fmt.Errorf("driver de armazenamento inválido: %q", c.Storage.Driver)
	}

	loc, err := loadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("fuso horário inválido %q: %w", c.App.Timezone, err)
	}
	c.App.Location = loc

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
