package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DefaultFile ruta del archivo de configuración cuando no se indica otra.
	DefaultFile = "config.properties"
	// EnvFile archivo opcional con variables de entorno (DB_PASSWORD=...), relativo al directorio de trabajo.
	EnvFile = ".env"
)

// keys claves reconocidas; también definen qué variables se toman de EnvFile.
var keys = []string{
	"app.env", "app.name", "app.version",
	"db.url", "db.username", "db.password",
	"log.file", "log.level",
	"import.continue_on_bad_number", "import.check_duplicates",
}

// Config agrupa la configuración de la aplicación (lectura vía Viper desde archivo .properties y env).
type Config struct {
	App    AppConfig
	DB     DBConfig
	Log    LogConfig
	Import ImportConfig
}

// AppConfig metadatos de la aplicación.
type AppConfig struct {
	Env     string
	Name    string
	Version string
}

// DBConfig datos de conexión al almacén relacional.
// URL admite el prefijo "jdbc:" por compatibilidad con archivos de configuración heredados.
type DBConfig struct {
	URL      string
	Username string
	Password string
}

// ConnectionString devuelve el DSN con usuario y contraseña incrustados (URL encoding incluido).
func (c DBConfig) ConnectionString() (string, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(c.URL), "jdbc:")
	if raw == "" {
		return "", errors.New("db.url no está configurado")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse db.url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("db.url inválido: %q", raw)
	}
	switch {
	case c.Username != "" && c.Password != "":
		u.User = url.UserPassword(c.Username, c.Password)
	case c.Username != "":
		u.User = url.User(c.Username)
	}
	return u.String(), nil
}

// LogConfig destino y nivel del log.
type LogConfig struct {
	File  string // archivo append-only; vacío = solo consola
	Level string // debug, info, warn, error
}

// ImportConfig ajusta la carga masiva desde archivo.
type ImportConfig struct {
	ContinueOnBadNumber bool // omitir la línea con número inválido en vez de abortar la carga
	CheckDuplicates     bool // omitir líneas cuyo nombre ya existe en el catálogo
}

// Load lee la configuración con esta prioridad: variables de entorno (DB_URL, LOG_FILE, ...),
// EnvFile, el archivo indicado y por último los valores por defecto. Siempre devuelve un *Config utilizable: si el archivo no se puede leer se devuelve el error junto con
// los valores por defecto, y quien llama decide cómo registrarlo.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("properties")

	// Permite DB_URL, DB_USERNAME, APP_NAME, etc.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var loadErr error
	if err := v.ReadInConfig(); err != nil {
		loadErr = fmt.Errorf("leer configuración %s: %w", path, err)
	}
	if err := mergeEnvFile(v, EnvFile); err != nil {
		loadErr = errors.Join(loadErr, err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:     v.GetString("app.env"),
			Name:    v.GetString("app.name"),
			Version: v.GetString("app.version"),
		},
		DB: DBConfig{
			URL:      v.GetString("db.url"),
			Username: v.GetString("db.username"),
			Password: v.GetString("db.password"),
		},
		Log: LogConfig{
			File:  v.GetString("log.file"),
			Level: v.GetString("log.level"),
		},
		Import: ImportConfig{
			ContinueOnBadNumber: v.GetBool("import.continue_on_bad_number"),
			CheckDuplicates:     v.GetBool("import.check_duplicates"),
		},
	}

	return cfg, loadErr
}

// mergeEnvFile superpone las claves conocidas definidas en file sobre las del archivo de configuración.
// Un archivo inexistente no es error.
func mergeEnvFile(v *viper.Viper, file string) error {
	values, err := godotenv.Read(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("leer %s: %w", file, err)
	}

	layer := map[string]any{}
	for _, key := range keys {
		val, ok := values[envName(key)]
		if !ok {
			continue
		}
		section, name, _ := strings.Cut(key, ".")
		sub, _ := layer[section].(map[string]any)
		if sub == nil {
			sub = map[string]any{}
			layer[section] = sub
		}
		sub[name] = val
	}
	if len(layer) == 0 {
		return nil
	}
	return v.MergeConfigMap(layer)
}

func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("log.file", "application.log")
	v.SetDefault("log.level", "debug")
	v.SetDefault("import.continue_on_bad_number", false)
	v.SetDefault("import.check_duplicates", false)
}
