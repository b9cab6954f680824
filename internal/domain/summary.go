package domain

import "fmt"

// Summary counts what a single catalogue conversion produced.
type Summary struct {
	Source    string
	Providers int
	Courses   int
	Instances int
	Offers    int
	Triples   int
	Warnings  int
}

func (s Summary) String() string {
	return fmt.Sprintf("providers=%d courses=%d instances=%d offers=%d triples=%d warnings=%d",
		s.Providers, s.Courses, s.Instances, s.Offers, s.Triples, s.Warnings)
}

// Add merges another summary into s; Source is kept.
func (s *Summary) Add(o Summary) {
	s.Providers += o.Providers
	s.Courses += o.Courses
	s.Instances += o.Instances
	s.Offers += o.Offers
	s.Triples += o.Triples
	s.Warnings += o.Warnings
}
