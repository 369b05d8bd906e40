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

// Package option queries historical option quotes, trades and end of day
// reports from a ThetaData terminal. All methods require a client in the
// context, installed with theta.UseClient.
package option

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockparfait/thetadata/theta"
	"github.com/stockparfait/thetadata/theta/record"
)

// Date range split sizes, in days, accepted by the terminal for the
// corresponding request types.
const (
	atTimeSplitDays     = 30
	bulkAtTimeSplitDays = 5
	tickSplitDays       = 3
	intervalSplitDays   = 7
)

// historySplitDays picks the range split size for interval requests. Tick
// and near-tick intervals return far more rows per day and get a smaller
// split.
func historySplitDays(interval record.Interval) int {
	if interval <= 2*record.Minute {
		return tickSplitDays
	}
	return intervalSplitDays
}

// Symbols lists all option root symbols known to the terminal.
func Symbols(ctx context.Context) ([]string, error) {
	rows, err := theta.NewQuery("list", "roots", "option").Stream(ctx)
	if err != nil {
		return nil, err
	}
	return theta.All(theta.MapRows(rows, func(row theta.Row) (string, bool, error) {
		root, ok := row["root"]
		return root, ok, nil
	}))
}

func contractQuery(path []string, symbol string, expiration theta.Date, strike decimal.Decimal, right record.OptionRight) *theta.Query {
	return theta.NewQuery(path...).
		Param("root", symbol).
		Param("exp", expiration.String()).
		Param("strike", record.FormatPrice(strike)).
		Param("right", string(right))
}

// parseQuote decodes quote rows, dropping the all-zero rows the terminal
// returns for non-trading days.
func parseQuote(row theta.Row) (record.Quote, bool, error) {
	if row["date"] == "0" {
		return record.Quote{}, false, nil
	}
	q, err := record.ParseQuote(row)
	return q, err == nil, err
}

func parseTrade(row theta.Row) (record.Trade, bool, error) {
	t, err := record.ParseTrade(row)
	return t, err == nil, err
}

// QuotesAtTime streams the contract's quote at the given time of day for
// each day in [start, end].
func QuotesAtTime(ctx context.Context, symbol string, expiration theta.Date, strike decimal.Decimal, right record.OptionRight, start, end theta.Date, at record.TimeOfDay) (*theta.MappedStream[record.Quote], error) {
	rows, err := contractQuery([]string{"at_time", "option", "quote"},
		symbol, expiration, strike, right).
		Param("ivl", at.Param()).
		Param("rth", "false").
		DateRange(start, end).
		SplitDays(atTimeSplitDays).
		Stream(ctx)
	if err != nil {
		return nil, err
	}
	return theta.MapRows(rows, parseQuote), nil
}

// QuoteAtTime returns the contract's quote at the given moment. Returns
// theta.ErrNoData if the terminal has no quote for that day.
func QuoteAtTime(ctx context.Context, symbol string, expiration theta.Date, strike decimal.Decimal, right record.OptionRight, at time.Time) (record.Quote, error) {
	day := theta.NewDateFromTime(at.In(record.MarketTimeZone))
	quotes, err := QuotesAtTime(ctx, symbol, expiration, strike, right,
		day, day, record.TimeOfDayOf(at))
	if err != nil {
		return record.Quote{}, err
	}
	return theta.First(quotes)
}

// AllQuotesAtTime streams quotes at the given time of day for every contract
// of the symbol and expiration, for each day in [start, end].
func AllQuotesAtTime(ctx context.Context, symbol string, expiration theta.Date, start, end theta.Date, at record.TimeOfDay) (*theta.MappedStream[record.OptionQuote], error) {
	rows, err := theta.NewQuery("bulk_at_time", "option", "quote").
		Param("root", symbol).
		Param("exp", expiration.String()).
		Param("ivl", at.Param()).
		Param("rth", "false").
		DateRange(start, end).
		SplitDays(bulkAtTimeSplitDays).
		Stream(ctx)
	if err != nil {
		return nil, err
	}
	return theta.MapRows(rows, func(row theta.Row) (record.OptionQuote, bool, error) {
		q, ok, err := parseQuote(row)
		if err != nil || !ok {
			return record.OptionQuote{}, false, err
		}
		o, err := record.ParseOption(row)
		if err != nil {
			return record.OptionQuote{}, false, err
		}
		return record.OptionQuote{Option: o, Quote: q}, true, nil
	}), nil
}

// TradesAtTime streams the contract's last trade at or before the given time
// of day for each day in [start, end].
func TradesAtTime(ctx context.Context, symbol string, expiration theta.Date, strike decimal.Decimal, right record.OptionRight, start, end theta.Date, at record.TimeOfDay) (*theta.MappedStream[record.Trade], error) {
	rows, err := contractQuery([]string{"at_time", "option", "trade"},
		symbol, expiration, strike, right).
		Param("ivl", at.Param()).
		Param("rth", "false").
		DateRange(start, end).
		SplitDays(atTimeSplitDays).
		Stream(ctx)
	if err != nil {
		return nil, err
	}
	return theta.MapRows(rows, parseTrade), nil
}

// TradeAtTime returns the contract's last trade at or before the given
// moment. Returns theta.ErrNoData if the terminal has no trade for that day.
func TradeAtTime(ctx context.Context, symbol string, expiration theta.Date, strike decimal.Decimal, right record.OptionRight, at time.Time) (record.Trade, error) {
	day := theta.NewDateFromTime(at.In(record.MarketTimeZone))
	trades, err := TradesAtTime(ctx, symbol, expiration, strike, right,
		day, day, record.TimeOfDayOf(at))
	if err != nil {
		return record.Trade{}, err
	}
	return theta.First(trades)
}

// AllTradesAtTime streams trades at the given time of day for every contract
// of the symbol and expiration, for each day in [start, end].
func AllTradesAtTime(ctx context.Context, symbol string, expiration theta.Date, start, end theta.Date, at record.TimeOfDay) (*theta.MappedStream[record.OptionTrade], error) {
	rows, err := theta.NewQuery("bulk_at_time", "option", "trade").
		Param("root", symbol).
		Param("exp", expiration.String()).
		Param("ivl", at.Param()).
		Param("rth", "false").
		DateRange(start, end).
		SplitDays(bulkAtTimeSplitDays).
		Stream(ctx)
	if err != nil {
		return nil, err
	}
	return theta.MapRows(rows, func(row theta.Row) (record.OptionTrade, bool, error) {
		t, ok, err := parseTrade(row)
		if err != nil || !ok {
			return record.OptionTrade{}, false, err
		}
		o, err := record.ParseOption(row)
		if err != nil {
			return record.OptionTrade{}, false, err
		}
		return record.OptionTrade{Option: o, Trade: t}, true, nil
	}), nil
}

// EodReport returns the contract's end of day report for the given day.
// Returns theta.ErrNoData if the terminal has no report for that day.
func EodReport(ctx context.Context, symbol string, expiration theta.Date, strike decimal.Decimal, right record.OptionRight, day theta.Date) (record.EodReport, error) {
	rows, err := contractQuery([]string{"hist", "option", "eod"},
		symbol, expiration, strike, right).
		DateRange(day, day).
		Stream(ctx)
	if err != nil {
		return record.EodReport{}, err
	}
	return theta.First(theta.MapRows(rows, func(row theta.Row) (record.EodReport, bool, error) {
		r, err := record.ParseEodReport(row)
		return r, err == nil, err
	}))
}

// HistoricalQuotes streams the contract's quotes at the given interval
// within [startTime, endTime] of each day in [start, end]. Use record.Tick
// for every quote.
func HistoricalQuotes(ctx context.Context, symbol string, expiration theta.Date, strike decimal.Decimal, right record.OptionRight, start, end theta.Date, startTime, endTime record.TimeOfDay, interval record.Interval) (*theta.MappedStream[record.Quote], error) {
	rows, err := contractQuery([]string{"hist", "option", "quote"},
		symbol, expiration, strike, right).
		Param("start_time", startTime.Param()).
		Param("end_time", endTime.Param()).
		Param("ivl", interval.Param()).
		Param("rth", "false").
		DateRange(start, end).
		SplitDays(historySplitDays(interval)).
		Stream(ctx)
	if err != nil {
		return nil, err
	}
	return theta.MapRows(rows, parseQuote), nil
}
