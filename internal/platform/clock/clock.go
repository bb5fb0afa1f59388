package clock

import "time"

// Clock entrega el año actual. Se inyecta para que el cálculo de edad sea determinista.
type Clock interface {
	CurrentYear() int
}

// System usa el reloj de pared.
type System struct {
	Now func() time.Time // opcional; nil => time.Now
}

func (s System) CurrentYear() int {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return now().Year()
}

// Fixed devuelve siempre el mismo año (tests, CLI --year).
type Fixed int

func (f Fixed) CurrentYear() int { return int(f) }
