package parser

import (
	"sort"

	"go.uber.org/zap"
)

// IDSet is a set of collection ids.
type IDSet map[int]struct{}

// NewIDSet returns a set holding ids.
func NewIDSet(ids ...int) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is in the set.
func (s IDSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in ascending order.
func (s IDSet) Sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// LoadCollectionIDFilter builds the collection id filter from its raw
// configuration value. A nil raw value means no filter is configured.
//
// A nil set means "do not filter". That is also returned when any token fails
// to parse as an id, so one typo never narrows the run to the remaining ids.
// Malformed lists (empty, mixed separators) are returned as errors.
func LoadCollectionIDFilter(raw *string, r Reporter) (IDSet, error) {
	if raw == nil {
		return nil, nil
	}
	r = reporterOrNop(r)

	tokens, err := ValidateCollectionIDs(*raw)
	if err != nil {
		return nil, err
	}

	set := make(IDSet, len(tokens))
	for _, token := range tokens {
		id, ok := ParseCollectionID(token)
		if !ok {
			r.Error("invalid collection id in filter, filter disabled", zap.String("value", token))
			return nil, nil
		}
		set[id] = struct{}{}
	}

	if len(set) == 0 {
		return nil, nil
	}
	return set, nil
}
