// Command wiredump decodes a hex-encoded Lightning message body with a named
// field layout and prints one line per field.
//
//	wiredump -layout funding_signed 0101...
//	echo 0101... | wiredump -fields bytes32,sig
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/oy3o/lnwire/internal/layout"
)

type options struct {
	config  string
	layout  string
	fields  string
	list    bool
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("wiredump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.config, "config", "", "TOML file with extra [layouts.<name>] tables")
	fs.StringVar(&opts.layout, "layout", "", "named layout to decode with")
	fs.StringVar(&opts.fields, "fields", "", "comma separated field kinds, instead of -layout")
	fs.BoolVar(&opts.list, "list", false, "list layouts and field kinds")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := initLogger(stderr, opts.verbose)

	set, err := loadSet(opts.config)
	if err != nil {
		logger.Error().Err(err).Str("config", opts.config).Msg("load layouts")
		return 1
	}

	if opts.list {
		printList(stdout, set)
		return 0
	}

	l, err := pickLayout(set, opts)
	if err != nil {
		logger.Error().Err(err).Msg("select layout")
		return 2
	}

	data, err := readInput(fs.Args(), stdin)
	if err != nil {
		logger.Error().Err(err).Msg("read input")
		return 1
	}
	logger.Debug().Str("layout", l.Name).Int("bytes", len(data)).Msg("decoding")

	if err := dump(stdout, l, data, logger); err != nil {
		logger.Error().Err(err).Str("layout", l.Name).Msg("decode")
		return 1
	}
	return 0
}

func loadSet(path string) (layout.Set, error) {
	if path == "" {
		return layout.Builtin(), nil
	}
	return layout.LoadFile(path)
}

func pickLayout(set layout.Set, opts options) (layout.Layout, error) {
	switch {
	case opts.fields != "" && opts.layout != "":
		return layout.Layout{}, fmt.Errorf("use either -layout or -fields")
	case opts.fields != "":
		return layout.Parse("adhoc", opts.fields)
	case opts.layout != "":
		return set.Get(opts.layout)
	}
	return layout.Layout{}, fmt.Errorf("one of -layout or -fields is required")
}

// readInput takes hex from args, or from stdin when there are none. Whitespace is ignored.
func readInput(args []string, stdin io.Reader) ([]byte, error) {
	text := strings.Join(args, "")
	if len(args) == 0 {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		text = string(raw)
	}
	text = strings.Join(strings.Fields(text), "")
	text = strings.TrimPrefix(text, "0x")
	return hex.DecodeString(text)
}

func dump(out io.Writer, l layout.Layout, data []byte, logger zerolog.Logger) error {
	rec, err := l.Build()
	if err != nil {
		return err
	}
	if err := rec.UnmarshalBinary(data); err != nil {
		return err
	}
	for i, f := range rec.Fields() {
		fmt.Fprintf(out, "%2d %-8s %s\n", i, l.Fields[i], layout.Describe(f))
	}
	logger.Debug().Int("fields", rec.Len()).Int("size", rec.Size()).Msg("decoded")
	return nil
}

func printList(out io.Writer, set layout.Set) {
	fmt.Fprintln(out, "layouts:")
	for _, name := range set.Names() {
		l := set[name]
		kinds := make([]string, len(l.Fields))
		for i, k := range l.Fields {
			kinds[i] = string(k)
		}
		fmt.Fprintf(out, "  %-18s %s\n", name, strings.Join(kinds, ","))
	}
	fmt.Fprintln(out, "kinds:")
	for _, k := range layout.Kinds() {
		fmt.Fprintf(out, "  %s\n", k)
	}
}
