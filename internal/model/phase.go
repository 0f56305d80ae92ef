package model

import "time"

// Phase - именованная фаза анимации раунда
type Phase int

const (
	// PhaseReelSpin - прокрутка барабанов: ответ сервера -> фиксация результата
	PhaseReelSpin Phase = iota
	// PhaseReelSettle - остановка барабанов каскадной игры
	PhaseReelSettle
	// PhaseCascadeDelay - пауза перед первым шагом каскада
	PhaseCascadeDelay
	// PhaseBonusAck - показ подтверждения покупки бонуса
	PhaseBonusAck
)

func (p Phase) String() string {
	switch p {
	case PhaseReelSpin:
		return "reel_spin"
	case PhaseReelSettle:
		return "reel_settle"
	case PhaseCascadeDelay:
		return "cascade_delay"
	case PhaseBonusAck:
		return "bonus_ack"
	}
	return "unknown"
}

// PhaseDuration - длительность фазы в обычном и турбо режиме
type PhaseDuration struct {
	Normal time.Duration `yaml:"normal"`
	Turbo  time.Duration `yaml:"turbo"`
}

// Timings - таблица длительностей фаз
type Timings map[Phase]PhaseDuration

func DefaultTimings() Timings {
	return Timings{
		PhaseReelSpin:     {Normal: 1000 * time.Millisecond, Turbo: 100 * time.Millisecond},
		PhaseReelSettle:   {Normal: 3700 * time.Millisecond, Turbo: 370 * time.Millisecond},
		PhaseCascadeDelay: {Normal: 1000 * time.Millisecond, Turbo: 500 * time.Millisecond},
		PhaseBonusAck:     {Normal: 300 * time.Millisecond, Turbo: 300 * time.Millisecond},
	}
}

// Duration возвращает длительность фазы. Неизвестная фаза длится 0.
func (t Timings) Duration(p Phase, turbo bool) time.Duration {
	d := t[p]
	if turbo {
		return d.Turbo
	}
	return d.Normal
}
