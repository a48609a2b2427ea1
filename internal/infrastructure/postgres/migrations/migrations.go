// Package migrations contiene el esquema mínimo de la base de datos (products, users).
// El esquema lo administra el operador; estos scripts se aplican en los tests de integración.
package migrations

import "embed"

// FS scripts SQL numerados para golang-migrate (fuente iofs).
//
//go:embed *.sql
var FS embed.FS
