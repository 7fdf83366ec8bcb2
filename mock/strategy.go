package mock

import "github.com/semanticgateway/pagelens"

var _ pagelens.ContentStrategy = (*ContentStrategy)(nil)

// ContentStrategy is a mock implementation of pagelens.ContentStrategy.
type ContentStrategy struct {
	NameFn           func() string
	ExtractContentFn func(rawHTML string, pageURL string) (string, error)
}

func (s *ContentStrategy) Name() string {
	return s.NameFn()
}

func (s *ContentStrategy) ExtractContent(rawHTML string, pageURL string) (string, error) {
	return s.ExtractContentFn(rawHTML, pageURL)
}
