package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout formato de fecha (sin hora) en la API.
const DateLayout = "2006-01-02"

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP. Fields lleva el detalle por campo en errores de validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// MessageResponse respuesta simple con un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// NullString nil para la cadena vacía: en los reportes una referencia ausente sale como null.
func NullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref "" para nil.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Date fecha calendario serializada como YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate construye un Date a partir de un time.Time (se ignora la hora).
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// DatePtr convierte un *time.Time opcional en *Date.
func DatePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := NewDate(*t)
	return &d
}

// TimePtr convierte un *Date opcional en *time.Time.
func (d *Date) TimePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("fecha inválida %q, formato esperado YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}
