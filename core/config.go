package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		AppName  string
		Env      string
		Build    string

		Server struct {
			Addr            string
			ShutdownTimeout time.Duration
		}

		Database struct {
			Engine     string // "sqlite" | "postgres"
			Name       string
			Path       string // sqlite file path
			Host       string
			Port       string
			User       string
			Password   string
			DisableTLS bool
		}

		Rollbar struct {
			Token string
		}
	}
)

// NewConfig loads configuration from defaults, an optional config/.env.<env>
// file and environment variables prefixed with the current ENV name.
func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "OnlyTeaching")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("serverShutdownTimeout", 20*time.Second)
	v.SetDefault("dbEngine", "sqlite")
	v.SetDefault("dbName", "onlyteaching")
	v.SetDefault("dbPath", "db.sqlite")
	v.SetDefault("dbHost", "localhost")
	v.SetDefault("dbPort", "5432")
	v.SetDefault("dbDisableTLS", true)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Debug:    v.GetBool("debug"),
		TestMode: v.GetBool("testMode"),
		AppName:  v.GetString("appName"),
		Env:      env,
		Build:    v.GetString("build"),
	}
	conf.Server.Addr = v.GetString("serverAddr")
	conf.Server.ShutdownTimeout = v.GetDuration("serverShutdownTimeout")
	conf.Database.Engine = v.GetString("dbEngine")
	conf.Database.Name = v.GetString("dbName")
	conf.Database.Path = v.GetString("dbPath")
	conf.Database.Host = v.GetString("dbHost")
	conf.Database.Port = v.GetString("dbPort")
	conf.Database.User = v.GetString("dbUser")
	conf.Database.Password = v.GetString("dbPassword")
	conf.Database.DisableTLS = v.GetBool("dbDisableTLS")
	conf.Rollbar.Token = v.GetString("rollbarToken")
	return conf
}

// Address returns the host:port of the database server.
func (c *Config) DatabaseAddress() string {
	return c.Database.Host + ":" + c.Database.Port
}
