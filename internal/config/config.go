package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Server   Server   `koanf:"server"`
	Frontend Frontend `koanf:"frontend"`
	Session  Session  `koanf:"session"`
	Database Database `koanf:"db"`
}

type Server struct {
	Addr string `koanf:"addr"`
}

type Frontend struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
}

type Session struct {
	// TTL is the session lifetime. Expired sessions are rejected and purged on use.
	TTL time.Duration `koanf:"ttl"`
	// SecureCookie marks the session cookie as Secure for HTTPS deployments.
	SecureCookie bool `koanf:"securecookie"`
}

type Database struct {
	// Driver selects the storage backend: "postgres" or "sqlite".
	Driver string `koanf:"driver"`
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
	// Path is the SQLite database file, used only when Driver is "sqlite".
	Path string `koanf:"path"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Server: Server{
			Addr: ":8080",
		},
		Frontend: Frontend{
			Enabled: true,
			Dir:     "frontend",
		},
		Session: Session{
			TTL: 24 * time.Hour,
		},
		Database: Database{
			Driver: "sqlite",
			Host:   "localhost",
			Port:   5432,
			User:   "spendwell",
			Pass:   "",
			Name:   "spendwell",
			Schema: "spendwell",
			Path:   "data/spendwell.db",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "SPENDWELL_",
		TransformFunc: func(k, v string) (string, any) {
			// SPENDWELL_DB_HOST -> db.host
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "SPENDWELL_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
