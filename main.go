package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errFormatPrefix = errors.New("format must start with +")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole program minus the process; it returns
// the exit code rather than calling os.Exit so it can be
// driven from tests.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("durl", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { printUsage(stderr) }

	var unique bool
	flags.BoolVarP(&unique, "unique", "u", false, "")

	var verbose bool
	flags.BoolVarP(&verbose, "verbose", "v", false, "")

	var psl bool
	flags.BoolVar(&psl, "psl", false, "")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %s\n", err)
		return 1
	}

	if flags.NArg() == 0 {
		printUsage(stderr)
		return 2
	}

	// the format has to be checked before any URL is
	// looked at; a bad invocation is never a parse error
	mask := flags.Arg(0)
	if !strings.HasPrefix(mask, "+") {
		fmt.Fprintf(stderr, "error: %s\n", errFormatPrefix)
		return 1
	}
	mask = mask[1:]

	log := zap.NewNop()
	if verbose {
		log = buildLogger(stderr)
	}
	defer func() { _ = log.Sync() }()

	subdomain := subdomainFunc(labelSubdomain)
	if psl {
		subdomain = suffixSubdomain
	}

	seen := make(map[string]bool)
	emit := func(val string) {
		if seen[val] && unique {
			return
		}

		fmt.Fprintln(stdout, val)

		// no point using up memory if we're outputting dupes
		if unique {
			seen[val] = true
		}
	}

	// URLs given as arguments: any failure is fatal
	if urls := flags.Args()[1:]; len(urls) > 0 {
		for _, raw := range urls {
			u, err := parseURL(raw)
			if err != nil {
				fmt.Fprintf(stderr, "error: %s\n", err)
				return 1
			}
			emit(format(u, mask, subdomain))
		}
		return 0
	}

	// otherwise it's one URL per line on stdin, and the
	// ones that don't parse are skipped
	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}

		u, err := parseURL(raw)
		if err != nil {
			log.Warn("parse failure", zap.String("url", raw), zap.Error(err))
			continue
		}

		val := format(u, mask, subdomain)

		// you do see empty values sometimes
		if val == "" {
			continue
		}
		emit(val)
	}

	if err := sc.Err(); err != nil {
		fmt.Fprintf(stderr, "failed to read input: %s\n", err)
		return 1
	}

	return 0
}

func buildLogger(w io.Writer) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core)
}
