package hospitalrank

import (
	"fmt"
	"strings"
)

// Outcome is one of the three tracked clinical conditions. Each value
// binds to a fixed mortality-rate field on Record and a fixed column in
// the Schema.
type Outcome string

const (
	HeartAttack  Outcome = "heart attack"
	HeartFailure Outcome = "heart failure"
	Pneumonia    Outcome = "pneumonia"
)

// outcomeRateField maps each outcome to its Record rate accessor.
var outcomeRateField = map[Outcome]func(*Record) string{
	HeartAttack:  func(r *Record) string { return r.HeartAttackRate },
	HeartFailure: func(r *Record) string { return r.HeartFailureRate },
	Pneumonia:    func(r *Record) string { return r.PneumoniaRate },
}

// ParseOutcome resolves an outcome name to its Outcome value. Names are
// case-insensitive and may use spaces or hyphens ("heart attack",
// "heart-failure"). Anything else fails with ErrInvalidOutcome.
func ParseOutcome(name string) (Outcome, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", " ")
	o := Outcome(normalized)
	if _, ok := outcomeRateField[o]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidOutcome, name)
	}
	return o, nil
}

// Valid reports whether o is one of the three recognized outcomes.
func (o Outcome) Valid() bool {
	_, ok := outcomeRateField[o]
	return ok
}

// Rate returns the raw rate text for this outcome from a record.
// Panics on an invalid Outcome; entry points validate first.
func (o Outcome) Rate(r *Record) string {
	return outcomeRateField[o](r)
}

// Outcomes returns the three recognized outcomes in a stable order.
func Outcomes() []Outcome {
	return []Outcome{HeartAttack, HeartFailure, Pneumonia}
}

func (o Outcome) String() string { return string(o) }
