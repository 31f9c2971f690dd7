/*
Package main is the vsort cli tool: it reads version-like strings from
stdin, one per line, and prints them in ascending version order.
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/woozymasta/vsort"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	// Parsing behavior
	OptionsParse OptionsParse `group:"Parsing"`
	// Output format and ordering
	OptionsOutput OptionsOutput `group:"Output"`
	// Input filters
	OptionsFilter OptionsFilter `group:"Input filters"`
	// Range clipping
	OptionsRange OptionsRange `group:"Range"`
}

type OptionsParse struct {
	Ignore      bool `short:"i" long:"ignore"        description:"Drop unparseable lines instead of aborting"`
	Lenient     bool `short:"l" long:"lenient"       description:"Accept any alphabetic marker text (skip the recognition gate)"`
	CountIsChar bool `short:"c" long:"count-is-char" description:"Treat a single trailing letter as an ordinal build counter"`
	CharCount   bool `long:"charcount" hidden:"true" description:"Alias of --count-is-char"`
}

type OptionsOutput struct {
	Format  bool `short:"f" long:"format"  description:"Print canonical renderings instead of the original lines"`
	Reverse bool `short:"r" long:"reverse" description:"Sort in descending order"`
	Limit   int  `short:"n" long:"limit"   description:"Max number of output lines (<=0 = unlimited)" default:"0"`
}

type OptionsFilter struct {
	Include string `short:"I" long:"include" description:"Regexp to keep lines (applied before parsing)"`
	Exclude string `short:"e" long:"exclude" description:"Regexp to drop lines (applied before parsing)"`
}

type OptionsRange struct {
	Min          string `short:"m" long:"min"           description:"Lower version bound (parsed with the same flags)"`
	Max          string `short:"x" long:"max"           description:"Upper version bound (parsed with the same flags)"`
	MinExclusive bool   `short:"M" long:"min-exclusive" description:"Exclude the lower bound itself"`
	MaxExclusive bool   `short:"X" long:"max-exclusive" description:"Exclude the upper bound itself"`
}

func main() {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default|flags.AllowBoolValues)
	parser.LongDescription = `vsort — natural version sort.
Reads version-like strings from stdin, one per line, and prints them in
ascending version order: pre-release markers (dev, pre, next, alpha,
beta, rc) sort below the unmarked version, patch markers above it.`
	args, err := parser.Parse()
	if err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "unrecognized argument: %s\n", args[0])
		os.Exit(1)
	}

	// stdin line by line, blanks skipped
	in := make([]string, 0, 1024)
	sc := bufio.NewScanner(os.Stdin)
	const maxLine = 10 * 1024 * 1024
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, maxLine)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			in = append(in, s)
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
		os.Exit(2)
	}

	// compile regex gates (if set)
	var incRe, excRe *regexp.Regexp
	if s := strings.TrimSpace(opt.OptionsFilter.Include); s != "" {
		re, err := regexp.Compile(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "include regexp: %v\n", err)
			os.Exit(2)
		}
		incRe = re
	}
	if s := strings.TrimSpace(opt.OptionsFilter.Exclude); s != "" {
		re, err := regexp.Compile(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "exclude regexp: %v\n", err)
			os.Exit(2)
		}
		excRe = re
	}

	// start from defaults and override with flags
	vOpt := vsort.DefaultOptions()

	vOpt.Ignore = opt.OptionsParse.Ignore
	vOpt.Lenient = opt.OptionsParse.Lenient
	vOpt.CountIsChar = opt.OptionsParse.CountIsChar || opt.OptionsParse.CharCount

	vOpt.Canonical = opt.OptionsOutput.Format
	vOpt.Limit = opt.OptionsOutput.Limit
	if opt.OptionsOutput.Reverse {
		vOpt.Sort = vsort.SortDesc
	}

	vOpt.Include = incRe
	vOpt.Exclude = excRe

	vOpt.Range = vsort.Range{
		Min:          strings.TrimSpace(opt.OptionsRange.Min),
		Max:          strings.TrimSpace(opt.OptionsRange.Max),
		MinExclusive: opt.OptionsRange.MinExclusive,
		MaxExclusive: opt.OptionsRange.MaxExclusive,
	}

	out, err := vsort.Select(in, vOpt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	for _, t := range out {
		fmt.Println(t)
	}
}
