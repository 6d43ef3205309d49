package pset

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestTypedGetters(t *testing.T) {
	r := newTagInfos()

	d, err := r.GetDouble("vertexCuts.distSig2dMax")
	require.NoError(t, err)
	assert.Equal(t, 99999.9, d)

	i, err := r.GetInt64("minHits")
	require.NoError(t, err)
	assert.Equal(t, int64(8), i)

	u, err := r.GetUint64("vertexCuts.multiplicityMin")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), u)

	b, err := r.GetBool("useExternalSV")
	require.NoError(t, err)
	assert.True(t, b)

	s, err := r.GetString("extSVCollection")
	require.NoError(t, err)
	assert.Equal(t, "inclusiveSecondaryVertices", s)

	v, err := r.GetVDouble("weights")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.5, 0.25}, v)

	cuts, err := r.GetPSet("vertexCuts")
	require.NoError(t, err)
	assert.Equal(t, 7, cuts.Len())
}

func TestGetters_WrongKind(t *testing.T) {
	r := newTagInfos()

	_, err := r.GetDouble("minHits")
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, KindDouble, mismatch.Want)
	assert.Equal(t, "int32", mismatch.Got)

	_, err = r.GetPSet("extSVDeltaRToJet")
	require.ErrorAs(t, err, &mismatch)

	_, err = r.GetBool("nonexistentField")
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestValue_VectorElement(t *testing.T) {
	r := newTagInfos()

	v, err := r.Value("weights[1]")
	require.NoError(t, err)
	f, _ := v.AsBigFloat().Float64()
	assert.Equal(t, 0.5, f)

	_, err = r.Value("weights[3]")
	assert.Error(t, err)

	_, err = r.Get("weights[1]")
	assert.Error(t, err, "Get addresses parameters only")
}

func TestValue_PSetAsObject(t *testing.T) {
	r := newTagInfos()

	v, err := r.Value("vertexCuts.v0Filter")
	require.NoError(t, err)
	require.True(t, v.Type().IsObjectType())
	assert.True(t, v.Type().HasAttribute("k0sMassWindow"))
}

func TestExists(t *testing.T) {
	r := newTagInfos()

	testCases := []struct {
		path string
		want bool
	}{
		{path: "extSVDeltaRToJet", want: true},
		{path: "vertexCuts", want: true},
		{path: "vertexCuts.v0Filter.k0sMassWindow", want: true},
		{path: "weights[0]", want: true},
		{path: "weights[9]", want: false},
		{path: "vertexCuts.fracPV", want: false},
		{path: "", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Exists(tc.path))
		})
	}
}

func TestGetDoubleOr(t *testing.T) {
	r := newTagInfos()

	got, err := r.GetDoubleOr("vertexCuts.fracPV", 0.65)
	require.NoError(t, err)
	assert.Equal(t, 0.65, got)

	got, err = r.GetDoubleOr("extSVDeltaRToJet", 0.65)
	require.NoError(t, err)
	assert.Equal(t, 0.3, got)

	_, err = r.GetDoubleOr("trackSort", 0)
	assert.Error(t, err, "present parameters of another kind are not defaulted")
}

func TestUntracked(t *testing.T) {
	r := newTagInfos()

	p, err := r.Get("debugTag")
	require.NoError(t, err)
	assert.False(t, p.Tracked())

	p, err = r.Get("trackSort")
	require.NoError(t, err)
	assert.True(t, p.Tracked())

	// Overriding keeps the tracked flag of the declaration.
	require.NoError(t, r.Apply(Declare("debugTag", String("neg"))))
	p, err = r.Get("debugTag")
	require.NoError(t, err)
	assert.False(t, p.Tracked())
	assert.Equal(t, cty.StringVal("neg"), p.Value())
}

func TestNewParameter(t *testing.T) {
	p, err := NewParameter(KindVInt32, cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2)}))
	require.NoError(t, err)
	assert.Equal(t, KindVInt32, p.Kind())
	assert.True(t, p.Value().Type().IsListType())

	_, err = NewParameter(KindVInt32, cty.TupleVal([]cty.Value{cty.NumberFloatVal(1.5)}))
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindDouble, KindInt32, KindUInt32, KindInt64, KindUInt64, KindBool, KindString, KindInputTag, KindVDouble, KindVInt32, KindVString, KindPSet} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("vuint64")
	assert.Error(t, err)
}

func TestGetters_ConversionErrorsNamePath(t *testing.T) {
	huge, _, err := big.ParseFloat("1e400", 10, 512, big.ToNearestEven)
	require.NoError(t, err)

	// Built without coercion, as a value that never passed a type check.
	r := New("").
		MustAdd("cut", scalar(KindDouble, cty.NumberVal(huge))).
		MustAdd("count", scalar(KindInt64, cty.NumberVal(huge))).
		MustAdd("size", scalar(KindUInt64, cty.NumberVal(huge))).
		MustAdd("weights", scalar(KindVDouble, cty.ListVal([]cty.Value{cty.NumberVal(huge)})))

	_, err = r.GetDouble("cut")
	assert.ErrorContains(t, err, `get "cut"`)
	_, err = r.GetInt64("count")
	assert.ErrorContains(t, err, `get "count"`)
	_, err = r.GetUint64("size")
	assert.ErrorContains(t, err, `get "size"`)
	_, err = r.GetVDouble("weights")
	assert.ErrorContains(t, err, `get "weights"`)
}
