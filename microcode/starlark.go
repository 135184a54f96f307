package microcode

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/sis16/svm/cpu"
	"github.com/sis16/svm/internal"
)

// Symbol names of the signals, as predeclared in scripts.
var (
	unitSymbols    = map[string]cpu.Unit{}
	counterSymbols = map[string]cpu.Counter{}
	aluSymbols     = map[string]cpu.AluOp{}
	condSymbols    = map[string]cpu.Cond{}
)

func init() {
	for unit := range cpu.Unit(cpu.UNIT_COUNT) {
		unitSymbols[strings.ToUpper(unit.String())] = unit
	}
	counterSymbols["PC_INC"] = cpu.COUNT_PC_INC
	counterSymbols["SP_INC"] = cpu.COUNT_SP_INC
	counterSymbols["SP_DEC"] = cpu.COUNT_SP_DEC
	for op := range cpu.AluOp(cpu.ALU_OP_COUNT) {
		if op != cpu.ALU_OP_NONE {
			aluSymbols["ALU_"+strings.ToUpper(op.String())] = op
		}
	}
	for cond := range cpu.Cond(cpu.COND_COUNT) {
		if cond != cpu.COND_ALWAYS {
			condSymbols["IF_"+strings.ToUpper(cond.String())] = cond
		}
	}
}

func symbols[T fmt.Stringer](table map[string]T) iter.Seq2[string, string] {
	return internal.IterSeq2Map(maps.All(table), func(v T) string { return v.String() })
}

// Defines iterates over the signal symbols predeclared in scripts, and the
// signal name each one stands for.
func Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		symbols(unitSymbols),
		symbols(counterSymbols),
		symbols(aluSymbols),
		symbols(condSymbols),
	)
}

// parse maps a signal name, or its predeclared symbol, to its value.
func parse[T fmt.Stringer](table map[string]T, name string) (value T, ok bool) {
	value, ok = table[strings.ToUpper(name)]
	if ok {
		return
	}
	for _, v := range table {
		if v.String() == name {
			return v, true
		}
	}
	return
}

// stepValue is a control word inside a script.
type stepValue struct {
	ctl cpu.Control
}

var _ starlark.Value = (*stepValue)(nil)

func (sv *stepValue) String() string        { return "step(" + sv.ctl.String() + ")" }
func (sv *stepValue) Type() string          { return "step" }
func (sv *stepValue) Freeze()               {}
func (sv *stepValue) Truth() starlark.Bool  { return starlark.True }
func (sv *stepValue) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable: step") }

// names collects the strings of an optional iterable argument.
// optional returns the string value of an argument that may be omitted or
// None.
func optional(fn string, arg string, x starlark.Value) (str string, err error) {
	if x == nil || x == starlark.None {
		return
	}

	str, ok := starlark.AsString(x)
	if !ok {
		err = fmt.Errorf("%v: %v: got %v, want string or None", fn, arg, x.Type())
	}
	return
}

func names(fn string, arg string, it starlark.Iterable) (list []string, err error) {
	if it == nil {
		return
	}

	elems := it.Iterate()
	defer elems.Done()

	var x starlark.Value
	for elems.Next(&x) {
		str, ok := starlark.AsString(x)
		if !ok {
			err = fmt.Errorf("%v: %v: got %v, want string", fn, arg, x.Type())
			return
		}
		list = append(list, str)
	}
	return
}

func builtinStep(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var drive, latch, count starlark.Iterable
	var aluArg, condArg starlark.Value
	var isLast, isHalt bool

	err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"drive?", &drive,
		"latch?", &latch,
		"count?", &count,
		"alu?", &aluArg,
		"cond?", &condArg,
		"last?", &isLast,
		"halt?", &isHalt,
	)
	if err != nil {
		return nil, err
	}

	ctl := cpu.Control{Last: isLast, Halt: isHalt}

	for _, pair := range []struct {
		arg  string
		it   starlark.Iterable
		dest *cpu.Units
	}{{"drive", drive, &ctl.Drive}, {"latch", latch, &ctl.Latch}} {
		list, err := names(b.Name(), pair.arg, pair.it)
		if err != nil {
			return nil, err
		}
		for _, name := range list {
			unit, ok := parse(unitSymbols, name)
			if !ok {
				return nil, fmt.Errorf("%v: %v: unknown unit %q", b.Name(), pair.arg, name)
			}
			*pair.dest |= cpu.MakeUnits(unit)
		}
	}

	list, err := names(b.Name(), "count", count)
	if err != nil {
		return nil, err
	}
	for _, name := range list {
		counter, ok := parse(counterSymbols, name)
		if !ok {
			return nil, fmt.Errorf("%v: count: unknown counter %q", b.Name(), name)
		}
		ctl.Count |= cpu.MakeCounters(counter)
	}

	aluName, err := optional(b.Name(), "alu", aluArg)
	if err != nil {
		return nil, err
	}
	if aluName != "" {
		op, ok := parse(aluSymbols, aluName)
		if !ok {
			return nil, fmt.Errorf("%v: alu: unknown operation %q", b.Name(), aluName)
		}
		ctl.Alu = op
	}

	condName, err := optional(b.Name(), "cond", condArg)
	if err != nil {
		return nil, err
	}
	if condName != "" {
		cond, ok := parse(condSymbols, condName)
		if !ok {
			return nil, fmt.Errorf("%v: cond: unknown condition %q", b.Name(), condName)
		}
		ctl.Cond = cond
	}

	return &stepValue{ctl: ctl}, nil
}

// controls flattens steps and lists of steps.
func controls(fn string, args starlark.Tuple) (ctls []cpu.Control, err error) {
	for _, arg := range args {
		switch v := arg.(type) {
		case *stepValue:
			ctls = append(ctls, v.ctl)
		case starlark.Iterable:
			var inner starlark.Tuple
			elems := v.Iterate()
			var x starlark.Value
			for elems.Next(&x) {
				inner = append(inner, x)
			}
			elems.Done()
			var more []cpu.Control
			more, err = controls(fn, inner)
			if err != nil {
				return
			}
			ctls = append(ctls, more...)
		default:
			err = fmt.Errorf("%v: got %v, want step", fn, arg.Type())
			return
		}
	}
	return
}

// Load evaluates a Starlark control table script. When src is nil the
// script is read from filename.
//
// The script describes the table with three builtins:
//
//	step(drive=[], latch=[], count=[], alu=None, cond=None, last=False, halt=False)
//	fetch(*steps)
//	op(code, name, *steps)
//
// Unit, counter, ALU and condition names are predeclared, e.g. PC, PC_INC,
// ALU_ADD and IF_Z. The loaded table is validated.
func Load(filename string, src any) (mc *cpu.Microcode, err error) {
	defer func() {
		if err != nil {
			mc = nil
			err = errors.Join(ErrScript, err)
		}
	}()

	mc = cpu.NewMicrocode(filename)
	fetched := false

	fetch := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if len(kwargs) != 0 {
			return nil, fmt.Errorf("%v: unexpected keyword arguments", b.Name())
		}
		if fetched {
			return nil, fmt.Errorf("%v: fetch prefix already defined", b.Name())
		}
		ctls, err := controls(b.Name(), args)
		if err != nil {
			return nil, err
		}
		mc.FetchSteps = ctls
		fetched = true
		return starlark.None, nil
	}

	op := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if len(kwargs) != 0 {
			return nil, fmt.Errorf("%v: unexpected keyword arguments", b.Name())
		}
		var code int
		var name string
		if len(args) < 2 {
			return nil, fmt.Errorf("%v: want code, name and steps", b.Name())
		}
		err := starlark.UnpackPositionalArgs(b.Name(), args[:2], nil, 2, &code, &name)
		if err != nil {
			return nil, err
		}
		if code < 0 || code > 0xff {
			return nil, fmt.Errorf("%v: opcode %v out of range", b.Name(), code)
		}
		ctls, err := controls(b.Name(), args[2:])
		if err != nil {
			return nil, err
		}
		err = mc.Define(uint8(code), name, ctls...)
		if err != nil {
			return nil, err
		}
		return starlark.None, nil
	}

	pred := starlark.StringDict{
		"step":  starlark.NewBuiltin("step", builtinStep),
		"fetch": starlark.NewBuiltin("fetch", fetch),
		"op":    starlark.NewBuiltin("op", op),
	}
	for key, value := range Defines() {
		pred[key] = starlark.String(value)
	}

	thread := starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("microcode: %v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}

	_, err = starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		return
	}

	if !fetched {
		err = ErrNoFetch
		return
	}

	err = mc.Validate()
	return
}

// LoadFile evaluates the control table script at path.
func LoadFile(path string) (mc *cpu.Microcode, err error) {
	return Load(path, nil)
}
