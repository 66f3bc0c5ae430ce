package job_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadkowskimaciek/BibliotekaNumeryczna/job"
	"github.com/sadkowskimaciek/BibliotekaNumeryczna/lsq"
)

func TestDetectFormat(t *testing.T) {
	for path, want := range map[string]job.Format{
		"a.yaml":      job.FormatYAML,
		"dir/b.YML":   job.FormatYAML,
		"c.toml":      job.FormatTOML,
		"/x/y/z.TOML": job.FormatTOML,
	} {
		got, err := job.DetectFormat(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := job.DetectFormat("job.json")
	assert.ErrorIs(t, err, job.ErrUnknownFormat)
}

func TestLoad_YAMLLine(t *testing.T) {
	j, err := job.Load("testdata/line.yaml")
	require.NoError(t, err)
	assert.Equal(t, "line", j.Name)

	res, err := j.Run()
	require.NoError(t, err)
	assert.Equal(t, []string{"poly:0", "poly:1"}, res.Terms)
	assert.Equal(t, 50, res.Report.Points)
	assert.InDeltaSlice(t, []float64{1, 2}, res.Report.Coefficients, 1e-9)
	assert.Less(t, res.Report.RMS, 0.01)
	assert.Equal(t, "line", res.Session.ID())
}

func TestLoad_TOMLSine(t *testing.T) {
	j, err := job.Load("testdata/sine.toml")
	require.NoError(t, err)

	res, err := j.Run()
	require.NoError(t, err)
	assert.Len(t, res.Terms, 7)
	assert.Less(t, res.Report.RMS, 0.1)

	y, err := res.Session.Evaluate(0.25)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, y, 0.01)
}

func TestLoad_PointsDefaultInterval(t *testing.T) {
	j, err := job.Load("testdata/points.yml")
	require.NoError(t, err)
	a, b := j.Bounds()
	assert.Equal(t, lsq.DefaultIntervalStart, a)
	assert.Equal(t, lsq.DefaultIntervalEnd, b)

	s, err := j.Build()
	require.NoError(t, err)
	assert.Len(t, s.DataPoints(), 3)
	require.True(t, s.Approximate())
	y, err := s.Evaluate(0.25)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, y, 1e-6)
}

func TestLoad_Errors(t *testing.T) {
	_, err := job.Load("testdata/unknown_key.yaml")
	assert.Error(t, err)

	_, err = job.Load("testdata/missing.yaml")
	assert.Error(t, err)

	_, err = job.Load("testdata/line.json")
	assert.ErrorIs(t, err, job.ErrUnknownFormat)
}

func TestParse_TOMLUnknownKey(t *testing.T) {
	_, err := job.Parse([]byte("colour = 1\n[basis]\npolynomial = 1\n[[points]]\nx = 0.0\ny = 1.0\n"), job.FormatTOML)
	assert.ErrorIs(t, err, job.ErrInvalidJob)
}

func TestValidate(t *testing.T) {
	one := 1
	neg := -1
	tests := []struct {
		name string
		yaml string
		ok   bool
	}{
		{"points only", "basis: {polynomial: 1}\npoints: [{x: 0, y: 1}]", true},
		{"reversed interval", "interval: {a: 1, b: 0}\nbasis: {polynomial: 1}\npoints: [{x: 0, y: 1}]", false},
		{"equal interval", "interval: {a: 1, b: 1}\nbasis: {polynomial: 1}\npoints: [{x: 0, y: 1}]", false},
		{"no basis", "points: [{x: 0, y: 1}]", false},
		{"negative degree", "basis: {polynomial: -2}\npoints: [{x: 0, y: 1}]", false},
		{"bad term", "basis: {terms: [\"tan:1\"]}\npoints: [{x: 0, y: 1}]", false},
		{"no data", "basis: {polynomial: 1}", false},
		{"empty target", "basis: {polynomial: 1}\ntarget: {samples: 5}", false},
		{"negative samples", "basis: {polynomial: 1}\ntarget: {samples: -5, terms: [{term: \"sin:1\"}]}", false},
		{"bad target term", "basis: {polynomial: 1}\ntarget: {terms: [{term: \"sin\"}]}", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := job.Parse([]byte(tc.yaml), job.FormatYAML)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, job.ErrInvalidJob)
			}
		})
	}

	j := &job.Job{Basis: job.Basis{Polynomial: &one, Trigonometric: &neg}}
	assert.ErrorIs(t, j.Validate(), job.ErrInvalidJob)
}

func TestFunctions_SectionOrder(t *testing.T) {
	deg, freq := 1, 1
	j := &job.Job{Basis: job.Basis{
		Terms:         []string{"exp:2"},
		Exponential:   []float64{-1},
		Trigonometric: &freq,
		Polynomial:    &deg,
	}}
	fs, err := j.Functions()
	require.NoError(t, err)

	got := make([]string, len(fs))
	for i, f := range fs {
		got[i] = f.String()
	}
	assert.Equal(t, []string{"poly:0", "poly:1", "cos:0", "cos:1", "sin:1", "exp:-1", "exp:2"}, got)
}

func TestTargetFunc_Weights(t *testing.T) {
	w := 3.0
	j := &job.Job{Target: &job.Target{Terms: []job.WeightedTerm{
		{Term: "poly:2", Weight: &w},
		{Term: "cos:1"},
	}}}
	f, err := j.TargetFunc()
	require.NoError(t, err)
	assert.InDelta(t, 3*0.25+math.Cos(math.Pi*0.5), f(0.5), 1e-12)

	none := &job.Job{}
	f, err = none.TargetFunc()
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestRun_SingularReported(t *testing.T) {
	j := &job.Job{
		Basis:  job.Basis{Terms: []string{"poly:1", "poly:1"}},
		Target: &job.Target{Samples: 10, Terms: []job.WeightedTerm{{Term: "poly:1"}}},
	}
	res, err := j.Run()
	require.Error(t, err)
	assert.NotNil(t, res.Session)
	assert.False(t, res.Session.Fitted())
	assert.Equal(t, 2, res.Report.Basis)
}

func TestBuild_UsesOptions(t *testing.T) {
	var seen int
	obs := lsq.ObserverFunc(func(lsq.Report, error) { seen++ })
	deg := 0
	j := &job.Job{Basis: job.Basis{Polynomial: &deg}, Target: &job.Target{Terms: []job.WeightedTerm{{Term: "poly:0"}}}}

	_, err := j.Run(lsq.WithObserver(obs))
	require.NoError(t, err)
	assert.Equal(t, 1, seen)
}
