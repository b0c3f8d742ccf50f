package uci

import (
	"github.com/ChizhovVadim/CounterUci/pkg/bench"
)

// benchCommand replays the synthesized bench commands through the session.
// It is the only handler that blocks on search completion.
func (uci *Protocol) benchCommand(cmd BenchCommand) error {
	if uci.job != nil {
		return errSearchRunning
	}
	var list, err = bench.Setup(uci.currentPosition().FEN(), cmd.Args)
	if err != nil {
		uci.logger.Error().Err(err).Msg("bench corpus unavailable")
		uci.exit(1)
		return err
	}
	var recorder = bench.NewRecorder(uci.diag, bench.CountSearches(list))
	for _, line := range list {
		switch c := ParseCommand(line).(type) {
		case GoCommand:
			recorder.BeginPosition(uci.currentPosition().FEN())
			if err := uci.goCommand(c); err != nil {
				return err
			}
			var result = uci.waitSearch()
			recorder.EndSearch(uint64(max(0, result.Nodes)), uci.evalInfo())
		case EvalCommand:
			recorder.BeginPosition(uci.currentPosition().FEN())
			uci.evalCommand()
		case NewGameCommand:
			uci.uciNewGameCommand()
			recorder.ResetClock()
		case nil:
		default:
			if err := uci.handle(c); err != nil {
				uci.logger.Warn().Err(err).Str("command", line).Msg("bench command failed")
			}
		}
	}
	uci.lastBench = recorder.Finish()
	return nil
}

// LastBench returns the statistics of the most recent bench command.
func (uci *Protocol) LastBench() bench.Report {
	return uci.lastBench
}
