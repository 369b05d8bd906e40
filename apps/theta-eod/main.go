// Copyright 2025 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// theta-eod downloads end of day stock reports from a running ThetaData
// terminal and writes them as CSV.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"net/http"
	"os"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
	"github.com/stockparfait/logging"
	"github.com/stockparfait/thetadata/theta"
	"github.com/stockparfait/thetadata/theta/record"
	"github.com/stockparfait/thetadata/theta/stock"
	"gonum.org/v1/gonum/stat"
)

type Flags struct {
	Config   string // required
	Output   string // default: stdout
	LogLevel logging.Level
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("theta-eod", flag.ExitOnError)
	fs.StringVar(&flags.Config, "conf", "", "config file in TOML (required)")
	fs.StringVar(&flags.Output, "output", "", "output CSV file; default: stdout")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")

	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}
	if flags.Config == "" {
		return nil, errors.Reason("missing required -conf argument")
	}
	return &flags, nil
}

type Config struct {
	Server    string   `toml:"server"`     // terminal address; default: theta.URL
	Symbols   []string `toml:"symbols"`    // required
	StartDate string   `toml:"start_date"` // required, YYYYMMDD
	EndDate   string   `toml:"end_date"`   // required, YYYYMMDD

	start theta.Date
	end   theta.Date
}

func loadConfig(fileName string) (*Config, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Annotate(err, "failed to open config file %s", fileName)
	}
	defer f.Close()

	var c Config
	if err := toml.NewDecoder(f).Decode(&c); err != nil {
		return nil, errors.Annotate(err, "failed to read config file %s", fileName)
	}
	if len(c.Symbols) == 0 {
		return nil, errors.Reason("config has no symbols")
	}
	if c.start, err = theta.NewDateFromString(c.StartDate); err != nil {
		return nil, errors.Annotate(err, "invalid start_date")
	}
	if c.end, err = theta.NewDateFromString(c.EndDate); err != nil {
		return nil, errors.Annotate(err, "invalid end_date")
	}
	return &c, nil
}

var csvHeader = []string{
	"symbol", "date", "open", "high", "low", "close", "volume", "count"}

func writeReport(w *csv.Writer, symbol string, r record.EodReport) error {
	return w.Write([]string{
		symbol,
		r.Time().In(record.MarketTimeZone).Format("20060102"),
		r.Open.String(),
		r.High.String(),
		r.Low.String(),
		r.Close.String(),
		strconv.Itoa(r.Volume),
		strconv.Itoa(r.Count),
	})
}

func downloadSymbol(ctx context.Context, w *csv.Writer, symbol string, c *Config) error {
	reports, err := stock.EodReports(ctx, symbol, c.start, c.end)
	if err != nil {
		return errors.Annotate(err, "failed to request EOD reports for %s", symbol)
	}
	defer reports.Close()

	var closes []float64
	for r, ok := reports.Next(); ok; r, ok = reports.Next() {
		if err := writeReport(w, symbol, r); err != nil {
			return errors.Annotate(err, "failed to write CSV row for %s", symbol)
		}
		f, _ := r.Close.Float64()
		closes = append(closes, f)
	}
	if err := reports.Err(); err != nil {
		return errors.Annotate(err, "failed to download EOD reports for %s", symbol)
	}
	logging.Infof(ctx, "%s: %d days, close mean=%.2f stddev=%.2f", symbol,
		len(closes), stat.Mean(closes, nil), stat.StdDev(closes, nil))
	return nil
}

func run(args []string) error {
	flags, err := parseFlags(args)
	if err != nil {
		return errors.Annotate(err, "failed to parse flags")
	}
	ctx := context.Background()
	ctx = logging.Use(ctx, logging.DefaultGoLogger(flags.LogLevel))

	config, err := loadConfig(flags.Config)
	if err != nil {
		return errors.Annotate(err, "failed to load config")
	}
	if config.Server != "" {
		theta.URL = config.Server
	}
	ctx = fetch.UseClient(ctx, &http.Client{})
	ctx = theta.UseClient(ctx)

	out := os.Stdout
	if flags.Output != "" {
		f, err := os.OpenFile(flags.Output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return errors.Annotate(err, "failed to create %s", flags.Output)
		}
		defer f.Close()
		out = f
	}
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return errors.Annotate(err, "failed to write CSV header")
	}
	for _, symbol := range config.Symbols {
		if err := downloadSymbol(ctx, w, symbol, config); err != nil {
			return err
		}
	}
	return nil
}

// main is not tested, keep it short.
func main() {
	if err := run(os.Args[1:]); err != nil {
		ctx := context.Background()
		ctx = logging.Use(ctx, logging.DefaultGoLogger(logging.Info))
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
