package integration_tests

import (
	"testing"

	"github.com/specialistvlad/psetforge/internal/app"
	"github.com/specialistvlad/psetforge/internal/btag"
	"github.com/specialistvlad/psetforge/internal/pset"
	"github.com/specialistvlad/psetforge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chainBase = `
record "Filter" "base" {
  window = double(0.5)
  weight = double(1.0)
  tags   = vstring("a", "b")

  cuts {
    lo = double(0.1)
    hi = double(2.0)
  }
}
`

// TestDerivation_ChainResolvesInDependencyOrder declares a chain in reverse
// order across files and checks every link sees its parent's values.
func TestDerivation_ChainResolvesInDependencyOrder(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"a.hcl": `
derive "third" {
  from = "second"
  override "cuts.hi" {
    value = 3.0
  }
}
`,
		"b.hcl": `
derive "second" {
  from = "first"
  set {
    cuts {
      lo = -0.1
    }
  }
}
`,
		"c.hcl": `
derive "first" {
  from = "base"
  set {
    window = 0.7
    tags   = ["x", "y", "z"]
  }
}
`,
		"d.hcl": chainBase,
	}

	result := testutil.RunIntegrationTest(t, files, app.Config{NoBuiltin: true})
	require.NoError(t, result.Err)

	reg := result.App.Registry()
	require.Equal(t, []string{"base", "first", "second", "third"}, reg.Names())

	third, err := reg.Lookup("third")
	require.NoError(t, err)

	window, err := third.GetDouble("window")
	require.NoError(t, err)
	assert.Equal(t, 0.7, window)

	lo, err := third.GetDouble("cuts.lo")
	require.NoError(t, err)
	assert.Equal(t, -0.1, lo)

	hi, err := third.GetDouble("cuts.hi")
	require.NoError(t, err)
	assert.Equal(t, 3.0, hi)

	tags, err := third.Value("tags")
	require.NoError(t, err)
	assert.Equal(t, 3, tags.LengthInt())

	base, err := reg.Lookup("base")
	require.NoError(t, err)
	assert.True(t, base.SameSchema(third))
	baseHi, err := base.GetDouble("cuts.hi")
	require.NoError(t, err)
	assert.Equal(t, 2.0, baseHi, "derivations never touch their base")
}

// TestDerivation_VectorElementOverride overrides a single element by index.
func TestDerivation_VectorElementOverride(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"base.hcl": chainBase,
		"derived.hcl": `
derive "renamed" {
  from = "base"
  override "tags[1]" {
    value = "B"
  }
}
`,
	}

	result := testutil.RunIntegrationTest(t, files, app.Config{
		NoBuiltin: true,
		Records:   []string{"renamed"},
		Diff:      true,
	})

	require.NoError(t, result.Err)
	assert.Equal(t, "# renamed (from base)\ntags: [\"a\", \"b\"] -> [\"a\", \"B\"]\n", result.Output)
}

// TestDerivation_NegativeTagInfos checks the sign-flipped control sample end
// to end, from the embedded catalog to the sealed registry.
func TestDerivation_NegativeTagInfos(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, nil, app.Config{})
	require.NoError(t, result.Err)

	reg := result.App.Registry()
	base, err := reg.Lookup(btag.FilteredTagInfos)
	require.NoError(t, err)
	neg, err := reg.Lookup(btag.FilteredNegativeTagInfos)
	require.NoError(t, err)

	changes, err := pset.Diff(base, neg)
	require.NoError(t, err)

	got := map[string]float64{}
	for _, c := range changes {
		f, _ := c.To.AsBigFloat().Float64()
		got[c.Path] = f
	}
	assert.Equal(t, map[string]float64{
		"extSVDeltaRToJet":              -0.4,
		"vertexCuts.distVal2dMin":       -2.5,
		"vertexCuts.distVal2dMax":       -0.01,
		"vertexCuts.distSig2dMin":       -99999.9,
		"vertexCuts.distSig2dMax":       -2.0,
		"vertexCuts.maxDeltaRToJetAxis": -0.5,
	}, got)

	// The negative cuts mirror the filtered ones: each new bound is the
	// negated opposite bound of the base.
	for _, pair := range [][2]string{
		{"vertexCuts.distVal2dMin", "vertexCuts.distVal2dMax"},
		{"vertexCuts.distSig2dMin", "vertexCuts.distSig2dMax"},
		{"vertexCuts.distVal2dMax", "vertexCuts.distVal2dMin"},
		{"vertexCuts.maxDeltaRToJetAxis", "vertexCuts.maxDeltaRToJetAxis"},
	} {
		negVal, err := neg.GetDouble(pair[0])
		require.NoError(t, err)
		baseVal, err := base.GetDouble(pair[1])
		require.NoError(t, err)
		assert.Equal(t, -baseVal, negVal, pair[0])
	}
}

// TestDerivation_FromGoModule derives in HCL from a record a Go module
// registered. Passing modules explicitly keeps the built-in ones out.
func TestDerivation_FromGoModule(t *testing.T) {
	t.Parallel()

	module := &testutil.RecordModule{
		Names: []string{"fromGo"},
		Records: []*pset.Record{
			pset.New("Producer").MustAdd("threshold", pset.Int32(4)),
		},
	}
	files := map[string]string{
		"derived.hcl": `
derive "fromHCL" {
  from = "fromGo"
  set {
    threshold = -4
  }
}
`,
	}

	result := testutil.RunIntegrationTest(t, files, app.Config{}, module)
	require.NoError(t, result.Err)
	require.Equal(t, []string{"fromGo", "fromHCL"}, result.App.Registry().Names())

	rec, err := result.App.Registry().Lookup("fromHCL")
	require.NoError(t, err)
	v, err := rec.GetInt64("threshold")
	require.NoError(t, err)
	assert.Equal(t, int64(-4), v)
}

func TestDerivation_NoModules(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, nil, app.Config{}, testutil.NoOpModule{})
	require.NoError(t, result.Err)
	assert.Empty(t, result.App.Registry().Names())
	assert.Empty(t, result.Output)
}
