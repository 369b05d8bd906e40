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

// Package index queries historical index values from a ThetaData terminal.
// All methods require a client in the context, installed with
// theta.UseClient.
package index

import (
	"context"

	"github.com/stockparfait/thetadata/theta"
	"github.com/stockparfait/thetadata/theta/record"
)

const (
	tickSplitDays     = 3
	intervalSplitDays = 7
)

// Symbols lists all index root symbols known to the terminal.
func Symbols(ctx context.Context) ([]string, error) {
	rows, err := theta.NewQuery("list", "roots", "index").Stream(ctx)
	if err != nil {
		return nil, err
	}
	return theta.All(theta.MapRows(rows, func(row theta.Row) (string, bool, error) {
		root, ok := row["root"]
		return root, ok, nil
	}))
}

// HistoricalPrices streams the index values at the given interval for each
// day in [start, end]. Zero values, reported by the terminal outside the
// index's quoted hours, are dropped.
func HistoricalPrices(ctx context.Context, symbol string, start, end theta.Date, interval record.Interval, hours record.TradingHours) (*theta.MappedStream[record.IndexPrice], error) {
	days := intervalSplitDays
	if interval <= 2*record.Minute {
		days = tickSplitDays
	}
	rows, err := theta.NewQuery("hist", "index", "price").
		Param("root", symbol).
		Param("ivl", interval.Param()).
		Param("rth", hours.Param()).
		DateRange(start, end).
		SplitDays(days).
		Stream(ctx)
	if err != nil {
		return nil, err
	}
	return theta.MapRows(rows, func(row theta.Row) (record.IndexPrice, bool, error) {
		p, err := record.ParseIndexPrice(row)
		if err != nil {
			return record.IndexPrice{}, false, err
		}
		return p, !p.Price.IsZero(), nil
	}), nil
}
