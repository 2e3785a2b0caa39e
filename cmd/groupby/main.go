package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	groupby "github.com/marco-gagliardi/group-by"
)

func main() {
	options := parseOpts()

	level, err := log.ParseLevel(options.logLevel)
	if err != nil {
		log.Fatalf("Invalid log level %q: %v", options.logLevel, err)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	result, err := run(options)
	if err != nil {
		log.Fatalf("Error aggregating: %v", err)
	}
	log.WithField("groups", len(result)).Info("Aggregation done")

	if err := writeResult(os.Stdout, result, options.pretty); err != nil {
		log.Fatalf("Error writing result: %v", err)
	}
}

func run(options opts) ([]groupby.Record, error) {
	if options.requestFile != "" {
		data, err := readFile(options.requestFile)
		if err != nil {
			return nil, fmt.Errorf("error reading request JSON: %w", err)
		}
		params, err := groupby.ParseAggregateParams(data)
		if err != nil {
			return nil, err
		}
		log.Debugf("Request '%s' is valid: %v", options.requestFile, params)
		return params.Run()
	}

	if options.inputFile == "" {
		return nil, errors.New("one of -request or -input is required")
	}
	data, err := readFile(options.inputFile)
	if err != nil {
		return nil, fmt.Errorf("error reading input JSON: %w", err)
	}
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("error unmarshalling input JSON: %w", err)
	}
	log.Debugf("Input JSON '%s' loaded", options.inputFile)

	spec, err := aggregationsFromFlags(options.sumFields, options.aggregations)
	if err != nil {
		return nil, err
	}
	return groupby.Aggregate(input, splitList(options.groupings), spec, nil)
}

// aggregationsFromFlags binds -sum fields to the default aggregator, then
// -agg pairs field=name to builtins.
func aggregationsFromFlags(sumFields, pairs string) (*groupby.Aggregations, error) {
	spec := groupby.SumFields(splitList(sumFields)...)
	for _, pair := range splitList(pairs) {
		field, name, ok := strings.Cut(pair, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("%w: expected field=aggregator, got %q", groupby.ErrInvalidAggregationSpec, pair)
		}
		fn, err := groupby.AggregationByName(name)
		if err != nil {
			return nil, err
		}
		spec.Add(field, fn)
	}
	return spec, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func readFile(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeResult(w io.Writer, result []groupby.Record, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

type opts struct {
	requestFile  string
	inputFile    string
	groupings    string
	sumFields    string
	aggregations string
	logLevel     string
	pretty       bool
}

func parseOpts() opts {
	// Parse command line arguments to fill opts
	var options opts
	flag.StringVar(&options.requestFile, "request", "", "Path to a JSON request document ('-' for stdin)")
	flag.StringVar(&options.inputFile, "input", "", "Path to a JSON array of records, used when -request is not set")
	flag.StringVar(&options.groupings, "group", "", "Comma separated fields to group by")
	flag.StringVar(&options.sumFields, "sum", "", "Comma separated fields to sum")
	flag.StringVar(&options.aggregations, "agg", "", "Comma separated field=aggregator pairs, aggregators: "+strings.Join(groupby.AggregationNames(), ", "))
	flag.StringVar(&options.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&options.pretty, "pretty", false, "Indent the JSON output")
	flag.Parse()
	return options

}
