package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"

	"github.com/sis16/svm/cpu"
	"github.com/sis16/svm/emulator"
	"github.com/sis16/svm/microcode"
	"github.com/sis16/svm/translate"
)

const version = "0.1.0"

// options are the parsed command line.
type options struct {
	rom       string
	microcode string
	lang      string
	debug     bool
	help      bool
	version   bool
}

var errUsage = errors.New("usage")

func usage(w io.Writer) {
	fmt.Fprintln(w, "      SVM - SIS16 Virtual Machine")
	fmt.Fprintln(w, "A fully featured SIS16 interpreter to substitute for real hardware")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  svm --help")
	fmt.Fprintln(w, "  svm --version")
	fmt.Fprintln(w, "  svm [options...] rom_binary")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -h, --help                    Prints this help dialogue")
	fmt.Fprintln(w, "  -v, --version                 Print the current version")
	fmt.Fprintln(w, "  -d, --debug                   Emits debug extra information")
	fmt.Fprintln(w, "  -m, --microcode file.star     Use a Starlark control table")
	fmt.Fprintln(w, "  -l, --lang tag                Language of messages, e.g. en-US")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  svm --debug main.bin")
}

// parseArgs parses argv, without the program name.
func parseArgs(args []string, stderr io.Writer) (opts options, err error) {
	fs := flag.NewFlagSet("svm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&opts.help, "h", false, "")
	fs.BoolVar(&opts.help, "help", false, "")
	fs.BoolVar(&opts.version, "v", false, "")
	fs.BoolVar(&opts.version, "version", false, "")
	fs.BoolVar(&opts.debug, "d", false, "")
	fs.BoolVar(&opts.debug, "debug", false, "")
	fs.StringVar(&opts.microcode, "m", "", "")
	fs.StringVar(&opts.microcode, "microcode", "", "")
	fs.StringVar(&opts.lang, "l", "", "")
	fs.StringVar(&opts.lang, "lang", "", "")

	if len(args) == 0 {
		err = errUsage
		return
	}

	err = fs.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		err = errUsage
		return
	}

	if opts.help || opts.version {
		return
	}

	switch fs.NArg() {
	case 0:
		fmt.Fprintln(stderr, "Expected file name after options!")
		err = errUsage
		return
	case 1:
	default:
		fmt.Fprintf(stderr, "Unexpected arguments after file name: %v\n", fs.Args()[1:])
		err = errUsage
		return
	}

	opts.rom = fs.Arg(0)
	if !strings.HasSuffix(opts.rom, ".bin") {
		fmt.Fprintf(stderr, "File name '%v' must end with '.bin'!\n", opts.rom)
		err = errUsage
		return
	}

	return
}

// reportError prints an error, in red when w is a terminal.
func reportError(w io.Writer, err error) {
	tag := "[ERROR]"
	msg := err.Error()
	if file, ok := w.(*os.File); ok && (isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())) {
		w = colorable.NewColorable(file)
		tag = ansi.Color(tag, "red+b")
		msg = ansi.Color(msg, "red")
	}
	fmt.Fprintf(w, "%v %v\n", tag, msg)
}

// run executes the machine and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintln(stdout, "Use 'svm --help' to see usage!")
		return 1
	}

	if opts.help {
		usage(stdout)
		return 0
	}
	if opts.version {
		fmt.Fprintf(stdout, "SVM v%v\n", version)
		return 0
	}

	if len(opts.lang) != 0 {
		err = translate.Use(opts.lang)
		if err != nil {
			reportError(stderr, err)
			return 1
		}
	}

	image, err := emulator.LoadImage(opts.rom)
	if err != nil {
		reportError(stderr, err)
		return 1
	}

	var table cpu.Table
	if len(opts.microcode) != 0 {
		table, err = microcode.LoadFile(opts.microcode)
		if err != nil {
			reportError(stderr, err)
			return 1
		}
	}

	options := cpu.DefaultOptions()
	options.Debug = opts.debug

	emu, err := emulator.NewEmulator(image, table, options)
	if err != nil {
		reportError(stderr, err)
		return 1
	}
	emu.Tape.Input = stdin
	emu.Tape.Output = stdout

	err = emu.Run(0)
	if opts.debug {
		log.Printf("svm: %v pulses, %v instructions\n%v", emu.Cpu.Pulses, emu.Cpu.Instructions, emu.Cpu.DumpRam(cpu.DEFAULT_STACK_BASE, cpu.STACK_WINDOW))
	}
	if err != nil {
		reportError(stderr, err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
