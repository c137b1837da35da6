package runtime

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/NduatiK/modsheet/parser"
	"github.com/NduatiK/modsheet/stylesheet"
)

// Session carries the navigation-boundary handles the embedding
// application supplies: the current document URL and connection state.
// Resolution itself never touches the network.
type Session struct {
	URL       *url.URL
	Connected bool
}

// Resolver resolves class names and inline modifier payloads into
// typed modifier values. Both the stylesheet and the registry are
// immutable, so one Resolver may serve concurrent renders.
type Resolver struct {
	Sheet    *stylesheet.Stylesheet
	Registry *parser.Registry
	// Params feeds #{...} runtime expressions during resolution.
	Params map[string]any
	// Session, when set, attributes resolution failures to the
	// document being rendered.
	Session *Session
}

// ResolveClass resolves one class name to its ordered modifier values.
// Each resolved invocation's canonical serialized form is parsed back
// through the registry, so per-modifier argument validation applies to
// stylesheet-sourced modifiers exactly as it does to inline ones.
func (r *Resolver) ResolveClass(className string) ([]parser.ModifierValue, error) {
	invocations, err := r.Sheet.Resolve(className, r.Params)
	if err != nil {
		return nil, err
	}

	values := make([]parser.ModifierValue, 0, len(invocations))

	for _, inv := range invocations {
		value, err := r.Registry.Parse(inv.String())
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", className, err)
		}

		if typed, ok := value.(*parser.TypedModifier); ok && typed.Meta.IsZero() {
			typed.Meta = inv.Meta
		}

		values = append(values, value)
	}

	return values, nil
}

// ResolveElement resolves every class of an element. Modifier values
// for classes that resolved cleanly are returned alongside the joined
// errors of those that did not; the embedding layer decides whether to
// skip the offending styles or surface the failure.
func (r *Resolver) ResolveElement(el Element) ([]parser.ModifierValue, error) {
	var (
		values []parser.ModifierValue
		errs   []error
	)

	for _, className := range el.ClassNames() {
		resolved, err := r.ResolveClass(className)
		if err != nil {
			if errors.Is(err, stylesheet.ErrNoMatchingSelector) {
				// Classes without a stylesheet entry are not errors;
				// most class names belong to other styling systems.
				continue
			}

			errs = append(errs, err)
			continue
		}

		values = append(values, resolved...)
	}

	err := errors.Join(errs...)
	if err != nil && r.Session != nil && r.Session.URL != nil {
		err = fmt.Errorf("rendering %s: %w", r.Session.URL.Path, err)
	}

	return values, err
}

// ParseInline parses one server-sent inline modifier payload.
func (r *Resolver) ParseInline(text string) (parser.ModifierValue, error) {
	return r.Registry.Parse(text)
}
