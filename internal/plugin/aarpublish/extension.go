package aarpublish

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/aarpublish/internal/config"
	"github.com/specialistvlad/aarpublish/internal/publication"
)

// ErrExtensionFrozen is returned when a setting changes after the first
// variant was processed.
var ErrExtensionFrozen = errors.New("aarPublishing settings are frozen once variants are processed")

// Extension holds the plugin settings. One set of toggles applies to every
// variant, so the settings freeze when the first variant is processed.
type Extension struct {
	toggles   publication.Toggles
	aggregate bool
	strategy  publication.Strategy
	frozen    bool
}

// NewExtension returns the defaults: javadoc and sources on, no aggregate,
// classifier strategy.
func NewExtension() *Extension {
	return &Extension{
		toggles:  publication.DefaultToggles(),
		strategy: publication.ClassifierStrategy{},
	}
}

// Configure applies a decoded aar_publishing block. nil keeps the defaults.
func (e *Extension) Configure(c *config.AarPublishing) error {
	if c == nil {
		return nil
	}
	if err := e.SetPublishJavadoc(c.PublishJavadoc); err != nil {
		return err
	}
	if err := e.SetPublishSources(c.PublishSources); err != nil {
		return err
	}
	if err := e.SetAggregate(c.Aggregate); err != nil {
		return err
	}
	s, ok := publication.StrategyByName(c.Strategy)
	if !ok {
		return fmt.Errorf("unknown publication strategy '%s'", c.Strategy)
	}
	return e.SetStrategy(s)
}

func (e *Extension) SetPublishJavadoc(v bool) error {
	if e.frozen {
		return ErrExtensionFrozen
	}
	e.toggles.PublishJavadoc = v
	return nil
}

func (e *Extension) SetPublishSources(v bool) error {
	if e.frozen {
		return ErrExtensionFrozen
	}
	e.toggles.PublishSources = v
	return nil
}

func (e *Extension) SetAggregate(v bool) error {
	if e.frozen {
		return ErrExtensionFrozen
	}
	e.aggregate = v
	return nil
}

func (e *Extension) SetStrategy(s publication.Strategy) error {
	if e.frozen {
		return ErrExtensionFrozen
	}
	e.strategy = s
	return nil
}

func (e *Extension) Toggles() publication.Toggles { return e.toggles }

func (e *Extension) Aggregate() bool { return e.aggregate }

func (e *Extension) Strategy() publication.Strategy { return e.strategy }

func (e *Extension) freeze() { e.frozen = true }
