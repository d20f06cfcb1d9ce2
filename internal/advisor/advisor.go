// Package advisor turns a free-text farming question into a rendered advice
// block. Routing is a fixed, ordered table of keyword rules; the first rule
// whose predicate holds picks the template.
package advisor

import (
	"math/rand"
	"strings"
	"time"

	"github.com/BerylCAtieno/agriguru-agent/internal/knowledge"
	"github.com/BerylCAtieno/agriguru-agent/internal/models"
)

// QueryTypeExpertAdvice is echoed in every AdviceContext.
const QueryTypeExpertAdvice = "expert_advice"

// WeatherSource supplies a weather sample for a location string.
type WeatherSource interface {
	Get(location string) models.WeatherSample
}

// SoilSource resolves a location to a soil report.
type SoilSource interface {
	Resolve(location string) models.SoilReport
}

// Chooser picks an index in [0, n). *rand.Rand satisfies it.
type Chooser interface {
	Intn(n int) int
}

type globalChooser struct{}

func (globalChooser) Intn(n int) int { return rand.Intn(n) }

// Query is one advice request. Empty optional fields count as absent.
type Query struct {
	Text     string
	Crop     string
	Location string
	Season   string
}

type Advisor struct {
	kb      *knowledge.Base
	weather WeatherSource
	soil    SoilSource
	rnd     Chooser
	now     func() time.Time
}

type Option func(*Advisor)

// WithChooser sets the source used to pick among alternative headings.
func WithChooser(c Chooser) Option {
	return func(a *Advisor) { a.rnd = c }
}

// WithClock overrides the clock used for dates in rendered text.
func WithClock(now func() time.Time) Option {
	return func(a *Advisor) { a.now = now }
}

func New(kb *knowledge.Base, weather WeatherSource, soil SoilSource, opts ...Option) *Advisor {
	a := &Advisor{
		kb:      kb,
		weather: weather,
		soil:    soil,
		rnd:     globalChooser{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// request is a Query prepared for rule matching.
type request struct {
	Query
	lower   string
	cropKey string
	crop    models.CropProfile
	hasCrop bool
}

func (a *Advisor) prepare(q Query) *request {
	r := &request{
		Query:   q,
		lower:   strings.ToLower(q.Text),
		cropKey: strings.ToLower(strings.TrimSpace(q.Crop)),
	}
	if r.cropKey != "" {
		r.crop, r.hasCrop = a.kb.Crop(r.cropKey)
	}
	return r
}

func (r *request) mentions(words ...string) bool {
	for _, w := range words {
		if strings.Contains(r.lower, w) {
			return true
		}
	}
	return false
}

// Classify reports which template Advise would render for q.
func (a *Advisor) Classify(q Query) Kind {
	return match(a.prepare(q)).kind
}

// Advise renders the advice text for q. Unknown crops, locations and
// seasons fall through to generic templates; it never fails.
func (a *Advisor) Advise(q Query) string {
	r := a.prepare(q)
	return match(r).render(a, r)
}

// Result renders q and wraps it with request context.
func (a *Advisor) Result(q Query) models.AdviceResult {
	r := a.prepare(q)
	rule := match(r)
	return models.AdviceResult{
		Advice: rule.render(a, r),
		Context: models.AdviceContext{
			Timestamp:  a.now().Format(time.RFC3339),
			QueryType:  QueryTypeExpertAdvice,
			AdviceKind: string(rule.kind),
			Query:      q.Text,
			Crop:       optional(q.Crop),
			Location:   optional(q.Location),
			Season:     optional(q.Season),
		},
	}
}

// WeatherReport renders location weather advice regardless of the query
// text, for callers that already know they want it.
func (a *Advisor) WeatherReport(location, crop string) string {
	return a.renderWeatherLocal(a.prepare(Query{Location: location, Crop: crop}))
}

// SoilReport renders location soil advice regardless of the query text.
func (a *Advisor) SoilReport(location string) string {
	return a.renderLocationSoil(a.prepare(Query{Location: location}))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
