// Package hospitalrank ranks hospitals by 30-day mortality rate for
// heart attack, heart failure, and pneumonia, within a state or across
// every state in a CMS outcome-of-care-measures CSV file.
package hospitalrank

import "fmt"

// StateRanking is one RankAllStates result: the hospital holding the
// requested rank in a state, or nil when no hospital does.
type StateRanking struct {
	State    string
	Hospital *string
}

// BestHospital returns the hospital with the lowest mortality rate for
// the outcome in a state. Fails with ErrInvalidOutcome or
// ErrInvalidState. Missing rates are not excluded here — they sort
// last, so any valid state yields a name even when every rate in it is
// unparseable (the ranked variants exclude missing rates instead).
func BestHospital(ds *Dataset, state string, outcome Outcome) (string, error) {
	if !outcome.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}
	if !ds.HasState(state) {
		return "", fmt.Errorf("%w: %q", ErrInvalidState, state)
	}
	view := RateView(ds.FilterState(state), outcome, false)
	return view[0].Hospital, nil
}

// RankHospital returns the hospital at the requested rank for the
// outcome in a state, after dropping hospitals with missing rates.
// A rank beyond the remaining hospitals yields nil, not an error.
func RankHospital(ds *Dataset, state string, outcome Outcome, rank Rank) (*string, error) {
	if !outcome.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}
	if !ds.HasState(state) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidState, state)
	}
	view := RateView(ds.FilterState(state), outcome, true)
	return SelectRank(view, rank), nil
}

// RankAllStates resolves the requested rank in every state present in
// the dataset: exactly one StateRanking per distinct state, in
// first-encounter order. States with fewer ranked hospitals than the
// requested position carry a nil Hospital.
func RankAllStates(ds *Dataset, outcome Outcome, rank Rank) ([]StateRanking, error) {
	if !outcome.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}

	byState := make(map[string][]Record)
	for i := range ds.Records {
		s := ds.Records[i].State
		byState[s] = append(byState[s], ds.Records[i])
	}

	states := ds.States()
	out := make([]StateRanking, 0, len(states))
	for _, s := range states {
		view := RateView(byState[s], outcome, true)
		out = append(out, StateRanking{
			State:    s,
			Hospital: SelectRank(view, rank),
		})
	}
	return out, nil
}

// Ranker binds a dataset file and schema to the ranking operations.
// The CSV is re-read on every call: no caching, no state shared across
// calls.
type Ranker struct {
	Path   string
	Schema Schema
}

// NewRanker returns a Ranker over a dataset file with the default
// CMS column layout.
func NewRanker(path string) *Ranker {
	return &Ranker{Path: path, Schema: DefaultSchema()}
}

func (k *Ranker) load() (*Dataset, error) {
	return LoadDataset(k.Path, k.Schema)
}

// Best loads the dataset and returns the best hospital for the raw
// outcome name in a state.
func (k *Ranker) Best(state, outcome string) (string, error) {
	o, err := ParseOutcome(outcome)
	if err != nil {
		return "", err
	}
	ds, err := k.load()
	if err != nil {
		return "", err
	}
	return BestHospital(ds, state, o)
}

// Rank loads the dataset and returns the hospital at the raw rank
// request ("best", "worst", or an integer) for an outcome in a state.
func (k *Ranker) Rank(state, outcome, rank string) (*string, error) {
	o, err := ParseOutcome(outcome)
	if err != nil {
		return nil, err
	}
	r, err := ParseRank(rank)
	if err != nil {
		return nil, err
	}
	ds, err := k.load()
	if err != nil {
		return nil, err
	}
	return RankHospital(ds, state, o, r)
}

// RankAll loads the dataset and resolves the rank request in every
// state present.
func (k *Ranker) RankAll(outcome, rank string) ([]StateRanking, error) {
	o, err := ParseOutcome(outcome)
	if err != nil {
		return nil, err
	}
	r, err := ParseRank(rank)
	if err != nil {
		return nil, err
	}
	ds, err := k.load()
	if err != nil {
		return nil, err
	}
	return RankAllStates(ds, o, r)
}
