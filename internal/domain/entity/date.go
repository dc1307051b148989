package entity

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// DateLayout formato de fecha civil usado en la API y en la UI (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Date fecha civil (sin hora) de un documento. En JSON viaja como "YYYY-MM-DD";
// se aceptan también timestamps RFC 3339 (se conserva solo la parte de fecha).
type Date struct {
	time.Time
}

// NewDate trunca t a su fecha civil (UTC).
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today fecha civil actual.
func Today() Date { return NewDate(time.Now()) }

// ParseDate interpreta "YYYY-MM-DD" o un timestamp RFC 3339.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return NewDate(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD", s)
	}
	return NewDate(t), nil
}

// String devuelve la fecha en formato YYYY-MM-DD.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	s := strings.Trim(string(b), `"`)
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DatePtr convierte un *time.Time leído de la base en *Date (nil se conserva).
func DatePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := NewDate(*t)
	return &d
}

// TimePtr operación inversa de DatePtr, para escribir columnas DATE nulas.
func (d *Date) TimePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
