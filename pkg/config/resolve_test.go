package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seededStore returns a store pre-loaded with the built-in defaults
// plus overrides, so tests never touch the real environment or XDG
// config files.
func seededStore(overrides map[string]interface{}, loadErrs []string, widthCommitted bool) *Store {
	committed := Defaults()
	if overrides != nil {
		MergeMaps(committed, overrides)
	}
	s := NewStore()
	s.setLoadedForTest(committed, loadErrs, widthCommitted)
	return s
}

func TestResolveDefaults(t *testing.T) {
	s := seededStore(nil, nil, false)

	res, diag, err := s.Resolve(nil, 0, false, "")
	require.NoError(t, err)
	assert.Empty(t, diag)
	assert.Equal(t, 80, res.Schema.Width)
	assert.Equal(t, 2, res.Schema.Indent.Width)
	assert.True(t, res.Schema.Tab.Expand)
	assert.False(t, res.Schema.Color)
	assert.Equal(t, "magenta", res.Schema.ColorMap["keyword"])
}

func TestResolveBareWidthOverridesCommitted(t *testing.T) {
	s := seededStore(map[string]interface{}{"width": 999}, nil, true)

	res, _, err := s.Resolve(nil, 40, true, "")
	require.NoError(t, err)
	assert.Equal(t, 40, res.Schema.Width)
	assert.Equal(t, 40, res.Options["width"])
}

func TestResolveCallBeatsCommitted(t *testing.T) {
	s := seededStore(map[string]interface{}{
		"color": true,
		"tab":   map[string]interface{}{"width": 4},
	}, nil, false)

	res, _, err := s.Resolve(map[string]interface{}{
		"tab": map[string]interface{}{"width": 2},
	}, 0, false, "")
	require.NoError(t, err)

	// Call-local wins key by key; untouched committed keys survive.
	assert.Equal(t, 2, res.Schema.Tab.Width)
	assert.True(t, res.Schema.Color)
	assert.True(t, res.Schema.Tab.Expand)
}

func TestResolveStyleOverlay(t *testing.T) {
	s := seededStore(nil, nil, false)

	res, _, err := s.Resolve(map[string]interface{}{"style": "narrow"}, 0, false, "")
	require.NoError(t, err)
	assert.Equal(t, 60, res.Schema.Width)
}

func TestResolveStyleOverlayBeatsCallValue(t *testing.T) {
	s := seededStore(nil, nil, false)

	// The named-style layer merges after per-call options.
	res, _, err := s.Resolve(map[string]interface{}{
		"style": "narrow",
		"width": 70,
	}, 0, false, "")
	require.NoError(t, err)
	assert.Equal(t, 60, res.Schema.Width)
}

func TestResolveMultipleStyles(t *testing.T) {
	s := seededStore(nil, nil, false)

	res, _, err := s.Resolve(map[string]interface{}{"style": "narrow, color"}, 0, false, "")
	require.NoError(t, err)
	assert.Equal(t, 60, res.Schema.Width)
	assert.True(t, res.Schema.Color)
}

func TestResolveUnknownStyleFails(t *testing.T) {
	s := seededStore(nil, nil, false)

	_, _, err := s.Resolve(map[string]interface{}{"style": "no-such-style"}, 0, false, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown style "no-such-style"`)
	assert.Contains(t, err.Error(), "this call")
}

func TestResolveAggregatesLoadAndCallErrors(t *testing.T) {
	s := seededStore(nil, []string{"A"}, false)

	_, _, err := s.Resolve(map[string]interface{}{"bogus": 1}, 0, false, "")
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "global configuration: A")
	assert.Contains(t, msg, `this call: unknown option "bogus"`)
}

func TestResolveLoadErrorsAloneFail(t *testing.T) {
	s := seededStore(nil, []string{"could not parse resin.toml"}, false)

	_, _, err := s.Resolve(nil, 0, false, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "global configuration: could not parse resin.toml")
}

func TestResolveInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		call map[string]interface{}
		want string
	}{
		{"negative_width", map[string]interface{}{"width": -1}, `option "width"`},
		{"bool_width", map[string]interface{}{"width": true}, `option "width"`},
		{"string_color", map[string]interface{}{"color": "yes"}, `option "color"`},
		{"bad_color_name", map[string]interface{}{"color-map": map[string]interface{}{"keyword": "chartreuse"}}, `option "color-map.keyword"`},
		{"unknown_nested", map[string]interface{}{"tab": map[string]interface{}{"stops": 3}}, `unknown option "tab.stops"`},
	}

	s := seededStore(nil, nil, false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := s.Resolve(tt.call, 0, false, "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestResolveSpecialFlags(t *testing.T) {
	s := seededStore(nil, nil, false)

	res, diag, err := s.Resolve(nil, 0, false, "explain")
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Contains(t, diag, "width = 80")

	_, diag, err = s.Resolve(nil, 0, false, "explain-justified")
	require.NoError(t, err)
	assert.Contains(t, diag, "width")
	assert.NotContains(t, diag, "width =")

	_, diag, err = s.Resolve(nil, 0, false, "help")
	require.NoError(t, err)
	assert.Contains(t, diag, "Recognized options")
	assert.Contains(t, diag, "auto-width")
	assert.Contains(t, diag, "Style presets")
}

func TestResolveUnknownSpecialFlagWarns(t *testing.T) {
	s := seededStore(nil, nil, false)

	res, diag, err := s.Resolve(nil, 0, false, "frobnicate")
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.True(t, strings.HasPrefix(diag, "warning:"))
	assert.Contains(t, diag, "frobnicate")
}

func TestResolveAutoWidthProbe(t *testing.T) {
	orig := widthProbe
	widthProbe = func() (int, bool) { return 132, true }
	defer func() { widthProbe = orig }()

	s := seededStore(map[string]interface{}{"auto-width": true}, nil, false)

	res, _, err := s.Resolve(nil, 0, false, "")
	require.NoError(t, err)
	assert.Equal(t, 132, res.Schema.Width)
}

func TestResolveAutoWidthNeverOverridesExplicit(t *testing.T) {
	orig := widthProbe
	widthProbe = func() (int, bool) { return 132, true }
	defer func() { widthProbe = orig }()

	s := seededStore(map[string]interface{}{"auto-width": true}, nil, false)

	// Explicit call width wins over the probe.
	res, _, err := s.Resolve(nil, 40, true, "")
	require.NoError(t, err)
	assert.Equal(t, 40, res.Schema.Width)

	// A width committed above the defaults also wins.
	s = seededStore(map[string]interface{}{"auto-width": true, "width": 90}, nil, true)
	res, _, err = s.Resolve(nil, 0, false, "")
	require.NoError(t, err)
	assert.Equal(t, 90, res.Schema.Width)
}

func TestResolveAutoWidthNeverOverridesStyleWidth(t *testing.T) {
	orig := widthProbe
	widthProbe = func() (int, bool) { return 132, true }
	defer func() { widthProbe = orig }()

	s := seededStore(map[string]interface{}{"auto-width": true}, nil, false)

	// A width supplied by a style preset is an explicit layer above the
	// defaults, so the probe must not win.
	res, _, err := s.Resolve(map[string]interface{}{"style": "narrow"}, 0, false, "")
	require.NoError(t, err)
	assert.Equal(t, 60, res.Schema.Width)

	// A committed style with a width gates the probe the same way.
	s = seededStore(map[string]interface{}{"auto-width": true, "style": "narrow"}, nil, false)
	res, _, err = s.Resolve(nil, 0, false, "")
	require.NoError(t, err)
	assert.Equal(t, 60, res.Schema.Width)
}

func TestResolveAutoWidthIgnoresWidthlessStyle(t *testing.T) {
	orig := widthProbe
	widthProbe = func() (int, bool) { return 132, true }
	defer func() { widthProbe = orig }()

	s := seededStore(map[string]interface{}{"auto-width": true}, nil, false)

	// A preset that says nothing about width leaves the probe in play.
	res, _, err := s.Resolve(map[string]interface{}{"style": "keep-tabs"}, 0, false, "")
	require.NoError(t, err)
	assert.Equal(t, 132, res.Schema.Width)
}

func TestResolveDoesNotMutateCallMap(t *testing.T) {
	s := seededStore(nil, nil, false)
	call := map[string]interface{}{"color": true}

	_, _, err := s.Resolve(call, 40, true, "")
	require.NoError(t, err)
	_, hasWidth := call["width"]
	assert.False(t, hasWidth)
}

func TestBindPairsTagAndCaps(t *testing.T) {
	res := &Resolved{}

	res.Bind(RepDocument)
	assert.Equal(t, RepDocument, res.Rep)
	assert.Equal(t, "document", res.Caps.Name())

	res.Bind(RepValue)
	assert.Equal(t, RepValue, res.Rep)
	assert.Equal(t, "value", res.Caps.Name())

	assert.Panics(t, func() { res.Bind(Representation("bogus")) })
}

func TestParseSpecial(t *testing.T) {
	tests := []struct {
		flag string
		want Special
		ok   bool
	}{
		{"explain", SpecialExplain, true},
		{":explain", SpecialExplain, true},
		{"explain-justified", SpecialExplainJustified, true},
		{"explain-all", SpecialExplainAll, true},
		{"help", SpecialHelp, true},
		{"nope", SpecialNone, false},
	}

	for _, tt := range tests {
		got, ok := ParseSpecial(tt.flag)
		assert.Equal(t, tt.ok, ok, tt.flag)
		assert.Equal(t, tt.want, got, tt.flag)
	}
}
