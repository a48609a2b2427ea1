package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TimeLayout formato del timestamp de cada línea: [yyyy-MM-dd HH:mm:ss].
const TimeLayout = "2006-01-02 15:04:05"

// Config opciones para el logger.
type Config struct {
	Level string // trace, debug, info, warn, error
	File  string // archivo append-only; vacío = solo consola
}

// Logger wrapper sobre zerolog para inyección y consistencia.
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// New crea un logger que escribe cada línea en stdout y, si se indica, al final del archivo de log.
// Si el archivo no se puede abrir devuelve el error; el llamador puede caer a NewWithWriter(os.Stdout, ...).
func New(cfg Config) (*Logger, error) {
	var w io.Writer = os.Stdout
	var f *os.File
	if cfg.File != "" {
		var err error
		f, err = os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("abrir archivo de log: %w", err)
		}
		w = io.MultiWriter(os.Stdout, f)
	}

	l := NewWithWriter(w, cfg.Level)
	l.file = f

	// Redirigir el logger global de zerolog para librerías que lo usen
	log.Logger = l.zl

	return l, nil
}

// NewWithWriter crea un logger sobre cualquier writer (tests, stdout). No toca archivos.
func NewWithWriter(w io.Writer, level string) *Logger {
	cw := zerolog.ConsoleWriter{
		Out:             w,
		NoColor:         true,
		TimeFormat:      TimeLayout,
		PartsOrder:      []string{zerolog.TimestampFieldName, zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatTimestamp: formatTimestamp,
		FormatLevel:     formatLevel,
	}
	zl := zerolog.New(cw).Level(parseLevel(level)).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// Nop devuelve un logger que descarta todo.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func formatTimestamp(i interface{}) string {
	s, ok := i.(string)
	if !ok {
		return "[" + fmt.Sprint(i) + "]"
	}
	t, err := time.Parse(zerolog.TimeFieldFormat, s)
	if err != nil {
		return "[" + s + "]"
	}
	return "[" + t.Local().Format(TimeLayout) + "]"
}

func formatLevel(i interface{}) string {
	return "[" + strings.ToUpper(fmt.Sprint(i)) + "]"
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug, Info, Warn, Error delegados a zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Close cierra el archivo de log, si hay uno.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
