package refdata

import "context"

var _ Resolver = &Static{}

// Static is an in-memory resolver seeded with fixed records. It backs
// development setups and tests where no reference data service is running.
type Static struct {
	records map[Category]map[string]string
}

func NewStatic(records map[Category]map[string]string) *Static {
	if records == nil {
		records = map[Category]map[string]string{}
	}
	return &Static{records: records}
}

func (s *Static) Resolve(_ context.Context, category Category, key string) (string, error) {
	display, ok := s.records[category][key]
	if !ok {
		return "", ErrNotFound
	}
	return display, nil
}
