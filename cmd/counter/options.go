package main

import (
	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/CounterUci/internal/config"
	"github.com/ChizhovVadim/CounterUci/internal/evalbuilder"
	"github.com/ChizhovVadim/CounterUci/internal/tablebase"
	"github.com/ChizhovVadim/CounterUci/pkg/engine"
	"github.com/ChizhovVadim/CounterUci/pkg/uci"
)

// collaborators receive option changes.
type collaborators struct {
	engine   *engine.Engine
	tables   *tablebase.Tables
	protocol *uci.Protocol
	options  *uci.OptionRegistry
	logger   zerolog.Logger
}

func comboChoices(names []string) string {
	var s = names[0]
	for _, name := range names {
		s += " var " + name
	}
	return s
}

func (c *collaborators) registerOptions(evalSource string) {
	var eng = c.engine
	var intHook = func(set func(int)) uci.ChangeHandler {
		return uci.ChangeFunc(func(o uci.Option) { set(o.Int()) })
	}
	c.options.MustRegister(
		uci.StringOption(uci.OptionDebugLogFile, uci.EmptyPath, uci.ChangeFunc(func(o uci.Option) {
			if c.protocol == nil {
				return
			}
			if err := c.protocol.SetDebugLogFile(o.Value()); err != nil {
				c.logger.Error().Err(err).Msg("debug log file disabled")
			}
		})),
		uci.ButtonOption(uci.OptionClearHash, uci.ChangeFunc(func(uci.Option) { eng.Clear() })),
		uci.SpinOption(uci.OptionHash, 16, 1, 33554432, intHook(eng.SetHash)),
		uci.SpinOption(uci.OptionLimitStrengthNPSAdj, 50, 1, 200, uci.ChangeFunc(func(uci.Option) { c.selectStrength() })),
		uci.CheckOption(uci.OptionMinimalOutput, false, nil),
		uci.SpinOption(uci.OptionMoveOverhead, 10, 0, 5000, intHook(eng.SetMoveOverhead)),
		uci.SpinOption(uci.OptionMultiPV, 1, 1, 256, intHook(eng.SetMultiPV)),
		uci.SpinOption(uci.OptionNodesTime, 0, 0, 10000, intHook(eng.SetNodesTime)),
		uci.CheckOption(uci.OptionPonder, false, nil),
		uci.SpinOption(uci.OptionSearchDepth, 0, 0, 60, nil),
		uci.SpinOption(uci.OptionSearchNodes, 0, 0, 10000000, nil),
		uci.SpinOption(uci.OptionSlowMover, 100, 10, 1000, intHook(eng.SetSlowMover)),
		uci.CheckOption(uci.OptionSyzygy50MoveRule, true, uci.ChangeFunc(func(o uci.Option) {
			c.tables.SetRule50(o.Bool())
		})),
		uci.StringOption(uci.OptionSyzygyPath, tablebase.EmptyPath, uci.ChangeFunc(func(o uci.Option) {
			c.tables.Init(o.Value())
		})),
		uci.SpinOption(uci.OptionSyzygyProbeDepth, 1, 1, 100, intHook(c.tables.SetProbeDepth)),
		uci.SpinOption(uci.OptionSyzygyProbeLimit, 7, 0, 7, intHook(c.tables.SetProbeLimit)),
		uci.SpinOption(uci.OptionTacticalDepth, 0, 0, 32, uci.ChangeFunc(func(uci.Option) { c.selectTactical() })),
		uci.SpinOption(uci.OptionTactical, 0, 0, 8, uci.ChangeFunc(func(uci.Option) { c.selectTactical() })),
		uci.SpinOption(uci.OptionThreads, 1, 1, 512, intHook(eng.SetThreads)),
		uci.CheckOption(uci.OptionAnalyseMode, false, uci.ChangeFunc(func(uci.Option) { c.selectVariety() })),
		uci.CheckOption(uci.OptionChess960, false, nil),
		uci.CheckOption(uci.OptionLimitStrength, false, uci.ChangeFunc(func(uci.Option) { c.selectStrength() })),
		uci.CheckOption(uci.OptionShowWDL, false, nil),
		uci.SpinOption(uci.OptionVariety, 0, 0, 80, uci.ChangeFunc(func(uci.Option) { c.selectVariety() })),
		uci.CheckOption(uci.OptionUseNN, true, uci.ChangeFunc(func(uci.Option) { c.selectEval() })),
		uci.ComboOption(uci.OptionEvalSource, comboChoices(evalbuilder.Names()), evalSource,
			uci.ChangeFunc(func(uci.Option) { c.selectEval() })),
	)
}

func (c *collaborators) selectStrength() {
	c.engine.SetLimitStrength(c.options.Bool(uci.OptionLimitStrength),
		c.options.Int(uci.OptionLimitStrengthNPSAdj))
}

func (c *collaborators) selectTactical() {
	c.engine.SetTactical(c.options.Int(uci.OptionTactical), c.options.Int(uci.OptionTacticalDepth))
}

// selectVariety keeps analysis deterministic.
func (c *collaborators) selectVariety() {
	var variety = c.options.Int(uci.OptionVariety)
	if c.options.Bool(uci.OptionAnalyseMode) {
		variety = 0
	}
	c.engine.SetVariety(variety)
}

// selectEval installs the evaluation named by EvalSource, or the classical one
// when UseNN is off.
func (c *collaborators) selectEval() {
	var name = evalbuilder.Classical
	if c.options.Bool(uci.OptionUseNN) {
		name = c.options.Value(uci.OptionEvalSource)
	}
	c.engine.SetEvalBuilder(evalbuilder.Get(name))
	c.logger.Debug().Str("eval", name).Msg("evaluation selected")
}

// applyPresets assigns configured option values through the registry so they
// pass the same validation as setoption.
func (c *collaborators) applyPresets(presets []config.OptionPreset) {
	for _, preset := range presets {
		var changed, err = c.options.Set(preset.Name, preset.Value)
		if err != nil {
			c.logger.Warn().Err(err).Str("option", preset.Name).Msg("config option ignored")
			continue
		}
		if !changed {
			c.logger.Warn().Str("option", preset.Name).Str("value", preset.Value).Msg("config option value rejected")
		}
	}
}
