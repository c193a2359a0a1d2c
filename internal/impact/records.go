package impact

import "commit-impact/internal/domain"

// recordSet collects impact records, dropping repeats of (kind, file, test)
// and keeping first-seen order.
type recordSet struct {
	seen    map[string]struct{}
	records []domain.ImpactRecord
}

func newRecordSet() *recordSet {
	return &recordSet{seen: make(map[string]struct{})}
}

func (s *recordSet) add(kind domain.ImpactKind, file, testName string) {
	r := domain.ImpactRecord{Kind: kind, FilePath: file, TestName: testName}
	key := r.Key()
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.records = append(s.records, r)
}

func (s *recordSet) list() []domain.ImpactRecord {
	if s.records == nil {
		return []domain.ImpactRecord{}
	}
	return s.records
}
