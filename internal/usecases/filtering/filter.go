// Package filtering traduz os filtros nomeados do painel em datas de corte
package filtering

import (
	"time"

	"github.com/vfg2006/dashgreen/internal/domain"
	"github.com/vfg2006/dashgreen/pkg/utils"
)

// Clock retorna o instante atual
type Clock func() time.Time

// dias subtraídos de hoje para cada filtro
var cutoffOffsets = map[domain.DateFilter]int{
	domain.Today:      0,
	domain.Yesterday:  1,
	domain.Last7Days:  7,
	domain.Last30Days: 30,
}

// Cutoff retorna a meia-noite do primeiro dia admitido pelo filtro, no fuso de now.
// "all" e tokens desconhecidos não têm corte e retornam false.
func Cutoff(filter domain.DateFilter, now time.Time) (time.Time, bool) {
	days, ok := cutoffOffsets[filter]
	if !ok {
		return time.Time{}, false
	}

	return StartOfDay(now.AddDate(0, 0, -days), now.Location()), true
}

// StartOfDay normaliza t para a meia-noite do seu dia civil em loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = t.Location()
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameDay compara dois instantes pelo dia civil em loc
func SameDay(a, b time.Time, loc *time.Location) bool {
	return StartOfDay(a, loc).Equal(StartOfDay(b, loc))
}

// Engine avalia os filtros contra o relógio no momento da chamada
type Engine struct {
	now Clock
	loc *time.Location
}

func NewEngine(now Clock, loc *time.Location) *Engine {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}

	return &Engine{
		now: now,
		loc: loc,
	}
}

func (e *Engine) Now() time.Time {
	return e.now().In(e.loc)
}

func (e *Engine) Location() *time.Location {
	return e.loc
}

func (e *Engine) Cutoff(filter domain.DateFilter) (time.Time, bool) {
	return Cutoff(filter, e.Now())
}

// Admits indica se a data passa pelo filtro, ignorando o horário
func (e *Engine) Admits(filter domain.DateFilter, date time.Time) bool {
	cutoff, ok := e.Cutoff(filter)
	if !ok {
		return true
	}

	return OnOrAfter(date, cutoff, e.loc)
}

// OnOrAfter indica se o dia civil de date em loc não é anterior ao corte
func OnOrAfter(date, cutoff time.Time, loc *time.Location) bool {
	return !StartOfDay(date, loc).Before(cutoff)
}

// DateKey formata o dia civil de t como chave YYYY-MM-DD
func (e *Engine) DateKey(t time.Time) string {
	return utils.DateKey(t, e.loc)
}
