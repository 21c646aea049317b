package forge_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/stratoframe/forge"
	"github.com/stratoframe/forge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 6 — declarative configuration.
func TestLoader_DeclarativeConfig(t *testing.T) {
	c := testutil.NewContainerBuilder(t).Build()
	l := forge.NewLoader()

	doc := []byte(`
<Container>
  <Overrides>
    <Override capability="Places" target="MockPlaces"/>
  </Overrides>
  <Services>
    <Service name="Locator"/>
  </Services>
</Container>`)

	ok, err := l.Load(c, doc)
	require.NoError(t, err)
	require.True(t, ok)

	roots := c.RetainedRoots()
	require.Len(t, roots, 1)

	locator, ok := roots[0].(*testutil.Locator)
	require.True(t, ok, "expected *Locator, got %T", roots[0])
	_, ok = locator.Places.(*testutil.MockPlaces)
	assert.True(t, ok, "expected Locator.Places to be *MockPlaces, got %T", locator.Places)
}

// A malformed individual directive is skipped, the rest of the document
// still loads.
func TestLoader_MalformedEntry_SkipsButContinues(t *testing.T) {
	var logBuf bytes.Buffer
	c := testutil.NewContainerBuilder(t).
		WithOption(forge.WithLogger(log.New(&logBuf, "", 0))).
		Build()
	l := forge.NewLoader()

	doc := []byte(`
<Container>
  <Services>
    <Service name=""/>
    <Service name="Bus"/>
  </Services>
</Container>`)

	ok, err := l.Load(c, doc)
	require.NoError(t, err)
	require.True(t, ok)

	roots := c.RetainedRoots()
	require.Len(t, roots, 1)
	assert.IsType(t, &testutil.Bus{}, roots[0])
	assert.Contains(t, logBuf.String(), "malformed")
}

func TestLoader_MalformedDocument_NothingLoaded(t *testing.T) {
	c := testutil.NewContainerBuilder(t).Build()
	l := forge.NewLoader()

	ok, err := l.Load(c, []byte(`<Container><Services>`))
	require.Error(t, err)
	assert.False(t, ok)
	testutil.AssertConfigParseError(t, err)
	assert.Empty(t, c.RetainedRoots())
}

func TestLoader_CustomRootElement(t *testing.T) {
	c := testutil.NewContainerBuilder(t).Build()
	l := forge.NewLoader(forge.WithRootElement("Assembly"))

	doc := []byte(`<Assembly><Services><Service name="Bus"/></Services></Assembly>`)

	ok, err := l.Load(c, doc)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, c.RetainedRoots(), 1)
}
