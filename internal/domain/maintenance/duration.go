// Package maintenance agrupa las reglas de tiempos de parada: formato de duraciones
// y métricas de la semana de referencia.
package maintenance

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ReferenceWeekMinutes minutos de la "semana de referencia" usada para utilización y MTBF.
// No corresponde a una semana calendario (10080 min); se conserva el valor histórico.
const ReferenceWeekMinutes = 4200

// MonitoringWindow ventana hacia atrás del monitoreo por máquina.
const MonitoringWindow = 7 * 24 * time.Hour

// FormatDuration representa d como H:MM:SS (horas sin límite, fracción de segundo truncada).
// La duración cero es "0:00:00".
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%s%d:%02d:%02d", sign, h, m, s)
}

// ParseDuration interpreta "[D ]H:MM:SS[.ffffff]", "MM:SS" o segundos sueltos.
// También acepta la forma "D day(s), H:MM:SS".
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("duración vacía")
	}
	var days int64
	if i := strings.Index(s, ","); i >= 0 {
		head := strings.Fields(s[:i])
		if len(head) == 0 {
			return 0, fmt.Errorf("duración inválida: %q", s)
		}
		n, err := strconv.ParseInt(head[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("duración inválida: %q", s)
		}
		days = n
		s = strings.TrimSpace(s[i+1:])
	} else if parts := strings.Fields(s); len(parts) == 2 {
		n, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("duración inválida: %q", s)
		}
		days = n
		s = parts[1]
	}

	fields := strings.Split(s, ":")
	if len(fields) > 3 {
		return 0, fmt.Errorf("duración inválida: %q", s)
	}
	secs, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil || secs < 0 {
		return 0, fmt.Errorf("duración inválida: %q", s)
	}
	var h, m int64
	if len(fields) >= 2 {
		if m, err = strconv.ParseInt(fields[len(fields)-2], 10, 64); err != nil || m < 0 {
			return 0, fmt.Errorf("duración inválida: %q", s)
		}
	}
	if len(fields) == 3 {
		if h, err = strconv.ParseInt(fields[0], 10, 64); err != nil || h < 0 {
			return 0, fmt.Errorf("duración inválida: %q", s)
		}
	}
	d := time.Duration(days)*24*time.Hour +
		time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(secs*float64(time.Second))
	return d, nil
}

// Duration time.Duration que se serializa en JSON como "H:MM:SS".
type Duration time.Duration

// Std devuelve el valor como time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return FormatDuration(time.Duration(d)) }

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatDuration(time.Duration(d)))
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var secs float64
		if err2 := json.Unmarshal(b, &secs); err2 != nil {
			return fmt.Errorf("duración inválida: %s", string(b))
		}
		*d = Duration(time.Duration(secs * float64(time.Second)))
		return nil
	}
	v, err := ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Utilization 1 - (minutos perdidos / semana de referencia). No se acota: puede ser negativa.
func Utilization(lost time.Duration) float64 {
	return 1 - lost.Minutes()/ReferenceWeekMinutes
}

// MTBF semana de referencia dividida entre el número de paradas; cero si hay una o ninguna.
func MTBF(breakdowns int) time.Duration {
	if breakdowns <= 1 {
		return 0
	}
	return time.Duration(float64(ReferenceWeekMinutes) / float64(breakdowns) * float64(time.Minute))
}
