package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryReport catálogo completo con totales, listo para renderizar.
type InventoryReport struct {
	Title       string
	GeneratedAt time.Time
	Products    []ReportLine
	Units       int             // suma de cantidades
	TotalValue  decimal.Decimal // suma de precio × cantidad
}

// ReportLine producto más su valor en existencias.
type ReportLine struct {
	ProductResponse
	Value decimal.Decimal
}
