package uci

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
)

var (
	ErrUnknownOption = errors.New("no such option")
	ErrOptionExists  = errors.New("option already registered")
)

type OptionKind int

const (
	KindString OptionKind = iota
	KindCheck
	KindSpin
	KindButton
	KindCombo
)

func (k OptionKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindCheck:
		return "check"
	case KindSpin:
		return "spin"
	case KindButton:
		return "button"
	case KindCombo:
		return "combo"
	}
	return "unknown"
}

const comboSeparator = "var"

// ChangeHandler is called synchronously after a value has been accepted.
type ChangeHandler interface {
	OptionChanged(o Option)
}

type ChangeFunc func(o Option)

func (f ChangeFunc) OptionChanged(o Option) {
	f(o)
}

// Option is a snapshot of a named engine setting. Values are kept as text,
// typed accessors interpret them according to the kind.
type Option struct {
	name         string
	kind         OptionKind
	defaultValue string
	value        string
	min, max     int
	index        int
	onChange     ChangeHandler
}

func StringOption(name, defaultValue string, h ChangeHandler) Option {
	return Option{name: name, kind: KindString, defaultValue: defaultValue, value: defaultValue, onChange: h}
}

func CheckOption(name string, defaultValue bool, h ChangeHandler) Option {
	var v = strconv.FormatBool(defaultValue)
	return Option{name: name, kind: KindCheck, defaultValue: v, value: v, onChange: h}
}

func SpinOption(name string, defaultValue, min, max int, h ChangeHandler) Option {
	var v = strconv.Itoa(defaultValue)
	return Option{name: name, kind: KindSpin, defaultValue: v, value: v, min: min, max: max, onChange: h}
}

func ButtonOption(name string, h ChangeHandler) Option {
	return Option{name: name, kind: KindButton, onChange: h}
}

// ComboOption declares an enumerated option. choices is the UCI enumeration
// string, e.g. "pesto var pesto var material".
func ComboOption(name, choices, current string, h ChangeHandler) Option {
	return Option{name: name, kind: KindCombo, defaultValue: choices, value: current, onChange: h}
}

func (o Option) Name() string       { return o.name }
func (o Option) Kind() OptionKind   { return o.kind }
func (o Option) Default() string    { return o.defaultValue }
func (o Option) Value() string      { return o.value }
func (o Option) Min() int           { return o.min }
func (o Option) Max() int           { return o.max }
func (o Option) Index() int         { return o.index }
func (o Option) Bool() bool         { return o.kind == KindCheck && o.value == "true" }
func (o Option) Is(val string) bool { return o.kind == KindCombo && strings.EqualFold(o.value, val) }

func (o Option) Int() int {
	if o.kind != KindSpin {
		return 0
	}
	var f, err = strconv.ParseFloat(o.value, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

// Choices returns the tokens accepted by a combo option.
func (o Option) Choices() []string {
	if o.kind != KindCombo {
		return nil
	}
	var result []string
	for _, token := range strings.Fields(o.defaultValue) {
		if token == comboSeparator {
			continue
		}
		var seen = false
		for _, c := range result {
			if strings.EqualFold(c, token) {
				seen = true
				break
			}
		}
		if !seen {
			result = append(result, token)
		}
	}
	return result
}

func (o Option) UciString() string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "option name %v type %v", o.name, o.kind)
	switch o.kind {
	case KindString, KindCheck, KindCombo:
		fmt.Fprintf(sb, " default %v", o.defaultValue)
	case KindSpin:
		var f, _ = strconv.ParseFloat(o.defaultValue, 64)
		fmt.Fprintf(sb, " default %v min %v max %v", int(f), o.min, o.max)
	}
	return sb.String()
}

// accept returns the value to store, or false if the assignment must be ignored.
func (o Option) accept(value string) (string, bool) {
	if o.kind == KindButton {
		return "", true
	}
	if value == "" {
		return "", false
	}
	switch o.kind {
	case KindCheck:
		if value != "true" && value != "false" {
			return "", false
		}
	case KindSpin:
		var f, err = strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) ||
			f < float64(o.min) || f > float64(o.max) {
			return "", false
		}
	case KindCombo:
		value = strings.TrimSpace(value)
		if value == comboSeparator {
			return "", false
		}
		for _, choice := range o.Choices() {
			if strings.EqualFold(choice, value) {
				return choice, true
			}
		}
		return "", false
	}
	return value, true
}

// OptionRegistry keeps options keyed by case-insensitive name.
// Assignments are serialized; reads may run concurrently with each other.
type OptionRegistry struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	options map[string]*Option
	size    int
}

func NewOptionRegistry() *OptionRegistry {
	return &OptionRegistry{options: make(map[string]*Option)}
}

func registryKey(name string) string {
	return strings.ToLower(name)
}

func (r *OptionRegistry) Register(o Option) error {
	if o.name == "" {
		return errors.New("option name is empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var key = registryKey(o.name)
	if _, found := r.options[key]; found {
		return fmt.Errorf("%w: %v", ErrOptionExists, o.name)
	}
	o.index = r.size
	r.size++
	r.options[key] = &o
	return nil
}

// MustRegister registers the options in order and panics on the first failure.
func (r *OptionRegistry) MustRegister(options ...Option) {
	for _, o := range options {
		if err := r.Register(o); err != nil {
			panic(err)
		}
	}
}

// Set assigns value to the named option. A rejected value leaves the option
// unchanged and reports false without error. The change handler runs after the
// new value is visible to readers and before Set returns.
func (r *OptionRegistry) Set(name, value string) (bool, error) {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	r.mu.Lock()
	var o, found = r.options[registryKey(name)]
	if !found {
		r.mu.Unlock()
		return false, fmt.Errorf("%w: %v", ErrUnknownOption, name)
	}
	var stored, ok = o.accept(value)
	if !ok {
		r.mu.Unlock()
		return false, nil
	}
	if o.kind != KindButton {
		o.value = stored
	}
	var snapshot = *o
	r.mu.Unlock()

	if snapshot.onChange != nil {
		snapshot.onChange.OptionChanged(snapshot)
	}
	return true, nil
}

func (r *OptionRegistry) Lookup(name string) (Option, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var o, found = r.options[registryKey(name)]
	if !found {
		return Option{}, false
	}
	return *o, true
}

func (r *OptionRegistry) Int(name string) int {
	var o, _ = r.Lookup(name)
	return o.Int()
}

func (r *OptionRegistry) Bool(name string) bool {
	var o, _ = r.Lookup(name)
	return o.Bool()
}

func (r *OptionRegistry) Value(name string) string {
	var o, _ = r.Lookup(name)
	return o.Value()
}

// Options returns snapshots in registration order.
func (r *OptionRegistry) Options() []Option {
	r.mu.RLock()
	var result = make([]Option, 0, len(r.options))
	for _, o := range r.options {
		result = append(result, *o)
	}
	r.mu.RUnlock()
	sort.Slice(result, func(i, j int) bool {
		return result[i].index < result[j].index
	})
	return result
}

// Display renders every option as a UCI declaration line.
func (r *OptionRegistry) Display() string {
	var sb = &strings.Builder{}
	for _, o := range r.Options() {
		sb.WriteString(o.UciString())
		sb.WriteString("\n")
	}
	return sb.String()
}
