package uci

import (
	"fmt"
	"strings"
)

var setShortcuts = map[string]string{
	"50":  OptionSyzygy50MoveRule,
	"960": OptionChess960,
	"h":   OptionHash,
	"mo":  OptionMinimalOutput,
	"mv":  OptionMultiPV,
	"nn":  OptionUseNN,
	"t":   OptionThreads,
	"ta":  OptionTactical,
	"z":   OptionSyzygyPath,
}

const shortcutHelp = `
 Shortcut Commands:
  Note: setoption name 'option name' value 'value'
  is replaced by:
    set (or 's'), 'option name' or 'option shortcut' 'value'
  Note: 'set' or 's', without an 'option' entered, displays the shortcuts

 Shortcuts:
    '50'  -> shortcut for 'Syzygy50MoveRule'
    '960' -> shortcut for 'UCI_Chess960'
    'b'   -> shortcut for 'bench'
    'd'   -> shortcut for 'depth'
    'g'   -> shortcut for 'go'
    'h'   -> shortcut for 'Hash'
    'i'   -> shortcut for 'infinite'
    'm'   -> shortcut for 'mate'
    'mo'  -> shortcut for 'Minimal_Output'
    'mv'  -> shortcut for 'MultiPV'
    'mt'  -> shortcut for 'movetime'
  Note: 'mt' is in seconds, while
  movetime is in milliseconds
    'nn'  -> shortcut for 'UseNN'
    'p f' -> shortcut for 'position fen'
    'q'   -> shortcut for 'quit'
    'sm'  -> shortcut for 'searchmoves'
  Note: 'sm' or 'searchmoves' MUST be the
  last option on the command line!
    'so'  -> shortcut for 'setoption'
    't'   -> shortcut for 'Threads'
    'ta'  -> shortcut for 'Tactical'
    'z'   -> shortcut for 'SyzygyPath'
    '?'   -> shortcut for 'stop'
`

// resolveSetName maps a set command name to a registered option name.
func (uci *Protocol) resolveSetName(name string) (string, bool) {
	if o, found := uci.options.Lookup(name); found {
		return o.Name(), true
	}
	if optionName, found := setShortcuts[strings.ToLower(name)]; found {
		if _, registered := uci.options.Lookup(optionName); registered {
			return optionName, true
		}
	}
	return "", false
}

func (uci *Protocol) setCommand(cmd SetCommand) error {
	if cmd.Name == "" || cmd.Name == "option" {
		uci.printf("%s", shortcutHelp)
		return nil
	}
	var name, found = uci.resolveSetName(cmd.Name)
	if !found {
		uci.printf("No such option: %v\n", cmd.Name)
		uci.logger.Warn().Str("option", cmd.Name).Msg("no such option")
		return nil
	}
	var changed, err = uci.options.Set(name, cmd.Value)
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("invalid value %q for option %v", cmd.Value, name)
	}
	var suffix string
	if name == OptionHash {
		suffix = " Mb"
	}
	uci.printf("Confirmation: %v set to %v%v\n", name, cmd.Value, suffix)
	if name == OptionUseNN {
		uci.printf("info string: %v\n", uci.evalInfo())
	}
	return nil
}

// evalInfo names the evaluation the next search will use.
func (uci *Protocol) evalInfo() string {
	if uci.options.Bool(OptionUseNN) {
		return fmt.Sprintf("NN evaluation using %v enabled.", uci.options.Value(OptionEvalSource))
	}
	return "Classical evaluation enabled."
}
