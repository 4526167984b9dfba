// Package portrait turns a calculation request into rendered spread slots.
package portrait

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/arcana/internal/meaning"
	"github.com/leapstack-labs/arcana/internal/reduction"
	"github.com/leapstack-labs/arcana/internal/spread"
	"github.com/leapstack-labs/arcana/pkg/core"
)

// Calculator renders portraits from a catalog and a spread configuration.
// It holds no per-request state and is safe for concurrent use.
type Calculator struct {
	catalog *meaning.Catalog
	spreads *spread.Config
	logger  *slog.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger sets the logger used for configuration inconsistencies.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSpreads replaces the default spread configuration.
func WithSpreads(cfg *spread.Config) Option {
	return func(c *Calculator) {
		if cfg != nil {
			c.spreads = cfg
		}
	}
}

// New creates a Calculator. A catalog is required; a missing catalog is a
// precondition failure for the whole feature.
func New(catalog *meaning.Catalog, opts ...Option) (*Calculator, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, fmt.Errorf("%w: no catalog loaded", meaning.ErrCatalogUnavailable)
	}

	c := &Calculator{
		catalog: catalog,
		spreads: spread.Defaults(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Spreads returns the spread configuration in use.
func (c *Calculator) Spreads() *spread.Config {
	return c.spreads
}

// Catalog returns the meaning catalog in use.
func (c *Calculator) Catalog() *meaning.Catalog {
	return c.catalog
}

// Result holds one date's positions. Rendering another spread reuses them.
type Result struct {
	Request   core.Request
	Positions core.Positions

	calc *Calculator
}

// Calculate derives the positions for req once and returns a Result.
func (c *Calculator) Calculate(req core.Request) *Result {
	c.logger.Debug("deriving positions",
		slog.Int("day", req.Day),
		slog.Int("month", req.Month),
		slog.Int("year", req.Year))

	return &Result{
		Request:   req,
		Positions: reduction.Derive(req),
		calc:      c,
	}
}

// Portrait renders the request's own spread.
// An empty spread renders as individual.
func (r *Result) Portrait() core.Portrait {
	s := r.Request.Spread
	if s == "" {
		s = core.SpreadIndividual
	}
	return r.Render(s)
}

// Render renders any spread from the stored positions without recomputing.
func (r *Result) Render(s core.SpreadType) core.Portrait {
	c := r.calc
	p := core.Portrait{
		Spread: s,
		Title:  c.spreads.Title(s),
	}

	for _, key := range c.spreads.Keys(s) {
		value, ok := r.Positions.Get(key)
		if !ok {
			c.logger.Warn("spread lists a position that is never computed",
				slog.String("spread", s.String()),
				slog.String("position", key.String()))
			p.Skipped = append(p.Skipped, key)
			continue
		}
		p.Slots = append(p.Slots, c.slot(key, value, s, r.Positions))
	}
	return p
}

func (c *Calculator) slot(key core.PositionKey, cardID int, s core.SpreadType, positions core.Positions) core.Slot {
	if _, ok := c.catalog.Card(cardID); !ok {
		c.logger.Warn("card missing from catalog",
			slog.Int("card", cardID),
			slog.String("position", key.String()))
	}

	slot := core.Slot{
		Key:     key,
		CardID:  cardID,
		Name:    c.catalog.Name(cardID),
		Numeral: meaning.DisplayNumeral(key, positions),
		Meaning: c.catalog.Resolve(cardID, key, s),
	}
	if s == core.SpreadShadow {
		slot.ShadowAspect = c.catalog.ShadowAspect(cardID)
	}
	return slot
}

// Render is a one-shot Calculate followed by rendering the request's spread.
func (c *Calculator) Render(req core.Request) core.Portrait {
	return c.Calculate(req).Portrait()
}
