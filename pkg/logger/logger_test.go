package logger_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cli/pkg/logger"
)

func TestNewWithWriter_FormatoDeLinea(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "debug")

	log.Info().Msg("sistema iniciado")
	log.Error().Msg("producto no encontrado")
	log.Debug().Msg("detalle")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[INFO\] sistema iniciado$`, lines[0])
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[ERROR\] producto no encontrado$`, lines[1])
	assert.Regexp(t, `\[DEBUG\] detalle$`, lines[2])
}

func TestNewWithWriter_CamposAlFinal(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info")

	log.Error().Err(errors.New("conexión rechazada")).Msg("error de base de datos")

	assert.Contains(t, buf.String(), "[ERROR] error de base de datos")
	assert.Contains(t, buf.String(), "conexión rechazada")
}

func TestNewWithWriter_NivelWarn(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "warn")

	log.Info().Msg("filtrado")
	log.Warn().Msg("configuración no encontrada")

	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[WARN\] configuración no encontrada\n$`, buf.String())
}

func TestNewWithWriter_RespetaNivel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "error")

	log.Info().Msg("no debe aparecer")
	log.Debug().Msg("tampoco")

	assert.Empty(t, buf.String())
}

func TestNew_AgregaAlFinalDelArchivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.log")
	require.NoError(t, os.WriteFile(path, []byte("línea previa\n"), 0o600))

	log, err := logger.New(logger.Config{Level: "info", File: path})
	require.NoError(t, err)
	log.Info().Msg("nueva línea")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "línea previa\n"), "el archivo no se trunca")
	assert.Contains(t, content, "[INFO] nueva línea")
}

func TestNew_ArchivoInaccesible(t *testing.T) {
	_, err := logger.New(logger.Config{File: filepath.Join(t.TempDir(), "no", "existe", "app.log")})
	assert.Error(t, err)
}
