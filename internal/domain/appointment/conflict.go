package appointment

import "time"

// ===============================
// Detecção de conflito
// ===============================

// Overlaps aplica a interseção de intervalos semiabertos [start, end):
// agendamentos encostados (um termina 10:00, outro começa 10:00) não
// conflitam.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Interval é a visão mínima de um agendamento persistido que a
// detecção de conflito precisa enxergar.
type Interval struct {
	ID        uint
	StartTime time.Time
	EndTime   time.Time
	Status    Status
}

// FirstConflict percorre os agendamentos persistidos e devolve o
// início do primeiro bloqueante (menor start_time entre os conflitos).
// CANCELLED nunca bloqueia; excludeID ignora o próprio registro em
// remarcações.
func FirstConflict(
	candidateStart, candidateEnd time.Time,
	excludeID uint,
	existing []Interval,
) (time.Time, bool) {

	var blocking time.Time
	found := false

	for _, iv := range existing {
		if iv.ID == excludeID && excludeID != 0 {
			continue
		}
		if iv.Status == StatusCancelled {
			continue
		}
		if !Overlaps(candidateStart, candidateEnd, iv.StartTime, iv.EndTime) {
			continue
		}
		if !found || iv.StartTime.Before(blocking) {
			blocking = iv.StartTime
			found = true
		}
	}

	return blocking, found
}
