package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changeCounter struct {
	calls []Option
}

func (c *changeCounter) OptionChanged(o Option) {
	c.calls = append(c.calls, o)
}

func TestSpinOption(t *testing.T) {
	var tests = []struct {
		value   string
		changed bool
		want    int
	}{
		{"8", true, 8},
		{"1", true, 1},
		{"512", true, 512},
		{"9.7", true, 9},
		{"0", false, 1},
		{"9999", false, 1},
		{"abc", false, 1},
		{"", false, 1},
		{"NaN", false, 1},
		{"nan", false, 1},
		{"+Inf", false, 1},
		{"-Inf", false, 1},
	}
	for _, test := range tests {
		t.Run(test.value, func(t *testing.T) {
			var counter = &changeCounter{}
			var r = NewOptionRegistry()
			r.MustRegister(SpinOption("Threads", 1, 1, 512, counter))

			changed, err := r.Set("Threads", test.value)
			require.NoError(t, err)
			assert.Equal(t, test.changed, changed)
			assert.Equal(t, test.want, r.Int("Threads"))
			if test.changed {
				require.Len(t, counter.calls, 1)
				assert.Equal(t, test.want, counter.calls[0].Int())
			} else {
				assert.Empty(t, counter.calls)
			}
		})
	}
}

func TestRejectedValueVisibleInDisplay(t *testing.T) {
	var r = NewOptionRegistry()
	r.MustRegister(SpinOption("Threads", 1, 1, 512, nil))
	_, err := r.Set("Threads", "9999")
	require.NoError(t, err)
	assert.Equal(t, "option name Threads type spin default 1 min 1 max 512\n", r.Display())
	assert.Equal(t, "1", r.Value("Threads"))
}

func TestCaseInsensitiveLookup(t *testing.T) {
	var r = NewOptionRegistry()
	r.MustRegister(SpinOption("Hash", 16, 1, 1024, nil))

	changed, err := r.Set("hash", "64")
	require.NoError(t, err)
	assert.True(t, changed)

	o1, ok := r.Lookup("Hash")
	require.True(t, ok)
	o2, ok := r.Lookup("HASH")
	require.True(t, ok)
	assert.Equal(t, o1.Index(), o2.Index())
	assert.Equal(t, 64, o1.Int())
	assert.Equal(t, "Hash", o2.Name())
}

func TestCheckOption(t *testing.T) {
	var r = NewOptionRegistry()
	r.MustRegister(CheckOption("Ponder", false, nil))

	for _, v := range []string{"yes", "1", "TRUE", ""} {
		changed, err := r.Set("Ponder", v)
		require.NoError(t, err)
		assert.False(t, changed, v)
	}
	assert.False(t, r.Bool("Ponder"))

	changed, err := r.Set("Ponder", "true")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, r.Bool("Ponder"))
}

func TestComboOption(t *testing.T) {
	var counter = &changeCounter{}
	var r = NewOptionRegistry()
	r.MustRegister(ComboOption("EvalSource", "pesto var pesto var material", "pesto", counter))

	o, _ := r.Lookup("EvalSource")
	assert.Equal(t, []string{"pesto", "material"}, o.Choices())
	assert.Equal(t, "option name EvalSource type combo default pesto var pesto var material", o.UciString())

	for _, v := range []string{"var", "nnue", ""} {
		changed, err := r.Set("EvalSource", v)
		require.NoError(t, err)
		assert.False(t, changed, v)
	}
	assert.Equal(t, "pesto", r.Value("EvalSource"))
	assert.Empty(t, counter.calls)

	changed, err := r.Set("EvalSource", " Material ")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "material", r.Value("EvalSource"))
	o, _ = r.Lookup("EvalSource")
	assert.True(t, o.Is("MATERIAL"))
}

func TestButtonOption(t *testing.T) {
	var calls int
	var r = NewOptionRegistry()
	r.MustRegister(ButtonOption("Clear Hash", ChangeFunc(func(Option) { calls++ })))

	changed, err := r.Set("clear hash", "")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, calls)

	o, _ := r.Lookup("Clear Hash")
	assert.Equal(t, "option name Clear Hash type button", o.UciString())
}

func TestStringOption(t *testing.T) {
	var r = NewOptionRegistry()
	r.MustRegister(StringOption("SyzygyPath", "<empty>", nil))

	changed, err := r.Set("SyzygyPath", "/tb/wdl /tb/dtz")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "/tb/wdl /tb/dtz", r.Value("SyzygyPath"))

	changed, err = r.Set("SyzygyPath", "")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestUnknownOption(t *testing.T) {
	var r = NewOptionRegistry()
	_, err := r.Set("Contempt", "10")
	require.ErrorIs(t, err, ErrUnknownOption)
}

func TestRegisterDuplicate(t *testing.T) {
	var r = NewOptionRegistry()
	require.NoError(t, r.Register(SpinOption("Hash", 16, 1, 1024, nil)))
	require.ErrorIs(t, r.Register(CheckOption("HASH", false, nil)), ErrOptionExists)
	assert.Panics(t, func() { r.MustRegister(CheckOption("hash", false, nil)) })
}

func TestDisplayOrder(t *testing.T) {
	var names = []string{"Zeta", "alpha", "Mu", "beta", "Omega", "a", "Z1", "gamma"}
	var r = NewOptionRegistry()
	for _, name := range names {
		r.MustRegister(CheckOption(name, false, nil))
	}
	var options = r.Options()
	require.Len(t, options, len(names))
	for i, o := range options {
		assert.Equal(t, names[i], o.Name())
		assert.Equal(t, i, o.Index())
	}
}

func TestChangeHandlerSeesNewValue(t *testing.T) {
	var r = NewOptionRegistry()
	var seen string
	r.MustRegister(SpinOption("MultiPV", 1, 1, 256, ChangeFunc(func(o Option) {
		seen = r.Value(o.Name())
	})))
	_, err := r.Set("MultiPV", "3")
	require.NoError(t, err)
	assert.Equal(t, "3", seen)
}
