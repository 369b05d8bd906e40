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

// Package stock queries historical stock quotes, trades and end of day
// reports from a ThetaData terminal. All methods require a client in the
// context, installed with theta.UseClient.
package stock

import (
	"context"
	"time"

	"github.com/stockparfait/thetadata/theta"
	"github.com/stockparfait/thetadata/theta/record"
)

// Date range split size accepted by the terminal for stock requests.
const splitDays = 30

// Quote consolidation venue for at_time requests.
const venue = "utp_cta"

// Symbols lists all stock root symbols known to the terminal.
func Symbols(ctx context.Context) ([]string, error) {
	rows, err := theta.NewQuery("list", "roots", "stock").Stream(ctx)
	if err != nil {
		return nil, err
	}
	return theta.All(theta.MapRows(rows, func(row theta.Row) (string, bool, error) {
		root, ok := row["root"]
		return root, ok, nil
	}))
}

func atTimeQuery(request, symbol string, start, end theta.Date, at record.TimeOfDay) *theta.Query {
	return theta.NewQuery("at_time", "stock", request).
		Param("root", symbol).
		Param("ivl", at.Param()).
		Param("venue", venue).
		Param("rth", "false").
		DateRange(start, end).
		SplitDays(splitDays)
}

// QuotesAtTime streams the symbol's quote at the given time of day for each
// day in [start, end].
func QuotesAtTime(ctx context.Context, symbol string, start, end theta.Date, at record.TimeOfDay) (*theta.MappedStream[record.Quote], error) {
	rows, err := atTimeQuery("quote", symbol, start, end, at).Stream(ctx)
	if err != nil {
		return nil, err
	}
	return theta.MapRows(rows, func(row theta.Row) (record.Quote, bool, error) {
		q, err := record.ParseQuote(row)
		return q, err == nil, err
	}), nil
}

// QuoteAtTime returns the symbol's quote at the given moment. Returns
// theta.ErrNoData if the terminal has no quote for that day.
func QuoteAtTime(ctx context.Context, symbol string, at time.Time) (record.Quote, error) {
	day := theta.NewDateFromTime(at.In(record.MarketTimeZone))
	quotes, err := QuotesAtTime(ctx, symbol, day, day, record.TimeOfDayOf(at))
	if err != nil {
		return record.Quote{}, err
	}
	return theta.First(quotes)
}

// TradesAtTime streams the symbol's last trade at or before the given time
// of day for each day in [start, end].
func TradesAtTime(ctx context.Context, symbol string, start, end theta.Date, at record.TimeOfDay) (*theta.MappedStream[record.Trade], error) {
	rows, err := atTimeQuery("trade", symbol, start, end, at).Stream(ctx)
	if err != nil {
		return nil, err
	}
	return theta.MapRows(rows, func(row theta.Row) (record.Trade, bool, error) {
		t, err := record.ParseTrade(row)
		return t, err == nil, err
	}), nil
}

// TradeAtTime returns the symbol's last trade at or before the given moment.
// Returns theta.ErrNoData if the terminal has no trade for that day.
func TradeAtTime(ctx context.Context, symbol string, at time.Time) (record.Trade, error) {
	day := theta.NewDateFromTime(at.In(record.MarketTimeZone))
	trades, err := TradesAtTime(ctx, symbol, day, day, record.TimeOfDayOf(at))
	if err != nil {
		return record.Trade{}, err
	}
	return theta.First(trades)
}

// EodReports streams the symbol's end of day reports for each trading day in
// [start, end].
func EodReports(ctx context.Context, symbol string, start, end theta.Date) (*theta.MappedStream[record.EodReport], error) {
	rows, err := theta.NewQuery("hist", "stock", "eod").
		Param("root", symbol).
		DateRange(start, end).
		SplitDays(splitDays).
		Stream(ctx)
	if err != nil {
		return nil, err
	}
	return theta.MapRows(rows, func(row theta.Row) (record.EodReport, bool, error) {
		r, err := record.ParseEodReport(row)
		return r, err == nil, err
	}), nil
}

// EodReport returns the symbol's end of day report for the given day.
// Returns theta.ErrNoData if the terminal has no report for that day.
func EodReport(ctx context.Context, symbol string, day theta.Date) (record.EodReport, error) {
	reports, err := EodReports(ctx, symbol, day, day)
	if err != nil {
		return record.EodReport{}, err
	}
	return theta.First(reports)
}
