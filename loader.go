package forge

import (
	"encoding/xml"
	"fmt"
)

// configDocument mirrors the XML shape of SPEC_FULL.md §6: an Overrides
// block, a Services block, and a Plugins block, each a flat list of
// directives. encoding/xml decodes attribute-bearing elements directly
// into these without any intermediate map-building — the same approach
// the pack's example configs take for declarative setup.
type configDocument struct {
	XMLName   xml.Name            `xml:""`
	Overrides []overrideDirective `xml:"Overrides>Override"`
	Services  []nameDirective     `xml:"Services>Service"`
	Plugins   []nameDirective     `xml:"Plugins>Plugin"`
}

type overrideDirective struct {
	Capability string `xml:"capability,attr"`
	Target     string `xml:"target,attr"`
}

type nameDirective struct {
	Name string `xml:"name,attr"`
}

// Loader is the Declarative Loader (spec.md §4.G): it drives a Container
// from an XML document instead of direct Go calls, for hosts that want
// their assembly described data-first.
type Loader struct {
	rootElement string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithRootElement overrides the expected document root element name,
// which defaults to "Container" to match the reference shape.
func WithRootElement(name string) LoaderOption {
	return func(l *Loader) { l.rootElement = name }
}

// NewLoader creates a Loader with its defaults applied.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{rootElement: "Container"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load parses doc and drives c: Overrides first, then Services and
// Plugins (in that order) via Container.Load(name, retain=true). It
// reports false, with err set to a *ConfigParseError, if doc does not
// parse as well-formed XML at all — nothing is registered or loaded in
// that case. A malformed individual directive (a missing required
// attribute) is skipped with a logged warning; the rest of the document
// still loads, and Load still reports true as long as the document itself
// parsed.
func (l *Loader) Load(c *Container, doc []byte) (bool, error) {
	var parsed configDocument
	if err := xml.Unmarshal(doc, &parsed); err != nil {
		return false, &ConfigParseError{ContainerID: c.id.String(), Cause: err}
	}
	if parsed.XMLName.Local != l.rootElement {
		return false, &ConfigParseError{
			ContainerID: c.id.String(),
			Cause:       fmt.Errorf("expected root element %q, got %q", l.rootElement, parsed.XMLName.Local),
		}
	}

	for _, o := range parsed.Overrides {
		if o.Capability == "" || o.Target == "" {
			c.logger.Printf("skipping malformed Override element (capability=%q target=%q): both attributes are required", o.Capability, o.Target)
			continue
		}
		if err := l.applyOverride(c, o); err != nil {
			c.logger.Printf("skipping Override capability=%q target=%q: %v", o.Capability, o.Target, err)
		}
	}

	directives := make([]nameDirective, 0, len(parsed.Services)+len(parsed.Plugins))
	directives = append(directives, parsed.Services...)
	directives = append(directives, parsed.Plugins...)

	for _, d := range directives {
		if d.Name == "" {
			c.logger.Printf("skipping malformed Service/Plugin element: name attribute is required")
			continue
		}
		if _, err := c.Load(d.Name, true); err != nil {
			c.logger.Printf("skipping Service/Plugin %q: %v", d.Name, err)
		}
	}

	return true, nil
}

// applyOverride resolves an override directive's capability and target
// names under the container's OverrideRoot and registers the result.
// capability names resolve against the capability name table (see
// RegisterCapability); target names resolve against the component
// registry like any other concrete component reference.
func (l *Loader) applyOverride(c *Container, o overrideDirective) error {
	capability, ok := lookupCapability(c.overrideRoot + o.Capability)
	if !ok {
		return fmt.Errorf("capability %q: no capability registered under that name", o.Capability)
	}
	targetEntry, err := c.registry.Lookup(c.overrideRoot + o.Target)
	if err != nil {
		return fmt.Errorf("target %q: %w", o.Target, err)
	}

	return c.SetOverride(capability, targetEntry.Type)
}
