package hospitalrank

// Record is one hospital row from the outcome dataset. Rate fields hold
// the raw CSV text ("11.3", "Not Available", ...); numeric parsing
// happens when a view is built, not at load time.
type Record struct {
	Hospital         string
	State            string
	HeartAttackRate  string
	HeartFailureRate string
	PneumoniaRate    string
}

// Dataset is the ordered sequence of records loaded from one CSV file.
// It is never mutated after load; every derived view is freshly built.
type Dataset struct {
	Records []Record
}

// HasState reports whether at least one record carries the state code.
// Comparison is exact: state codes in the dataset are already uppercase
// two-letter postal codes.
func (d *Dataset) HasState(state string) bool {
	for i := range d.Records {
		if d.Records[i].State == state {
			return true
		}
	}
	return false
}

// FilterState returns the records for one state, in dataset order.
func (d *Dataset) FilterState(state string) []Record {
	var out []Record
	for i := range d.Records {
		if d.Records[i].State == state {
			out = append(out, d.Records[i])
		}
	}
	return out
}

// States returns the distinct state codes in first-encounter order.
func (d *Dataset) States() []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range d.Records {
		s := d.Records[i].State
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
