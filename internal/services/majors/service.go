package majors

import (
	"context"

	"github.com/rs/zerolog/log"
)

// A live list shorter than this is treated as a failed scrape.
const liveMinimum = 10

// Source produces the list of majors used to build OSU prompts.
type Source interface {
	Majors(ctx context.Context) ([]string, error)
}

// Fetcher scrapes the majors list from the live site.
type Fetcher interface {
	FetchMajors(ctx context.Context) ([]string, error)
}

// Static serves the embedded majors dataset.
type Static struct {
	majors []string
}

func NewStatic() *Static {
	return &Static{majors: staticMajors}
}

func (s *Static) Majors(ctx context.Context) ([]string, error) {
	out := make([]string, len(s.majors))
	copy(out, s.majors)
	return out, nil
}

// Live serves majors scraped from the OSU site.
type Live struct {
	fetcher Fetcher
}

func NewLive(fetcher Fetcher) *Live {
	return &Live{fetcher: fetcher}
}

func (l *Live) Majors(ctx context.Context) ([]string, error) {
	return l.fetcher.FetchMajors(ctx)
}

// Fallback prefers a primary source but answers from the fallback when
// the primary fails or returns a suspiciously short list.
type Fallback struct {
	primary  Source
	fallback Source
}

func NewFallback(primary, fallback Source) *Fallback {
	return &Fallback{primary: primary, fallback: fallback}
}

func (f *Fallback) Majors(ctx context.Context) ([]string, error) {
	live, err := f.primary.Majors(ctx)
	if err == nil && len(live) > liveMinimum {
		return live, nil
	}
	if err != nil {
		log.Warn().Err(err).Msg("Failed to fetch OSU majors, using static list")
	}
	return f.fallback.Majors(ctx)
}
