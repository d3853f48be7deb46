package mock

import "github.com/fwojciec/ogimage"

var _ ogimage.Scanner = (*Scanner)(nil)

// Scanner is a mock implementation of ogimage.Scanner.
type Scanner struct {
	ScanFn func(doc string, fn ogimage.StartTagFunc)
}

func (s *Scanner) Scan(doc string, fn ogimage.StartTagFunc) {
	s.ScanFn(doc, fn)
}
