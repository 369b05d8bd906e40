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

package record

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/thetadata/theta"
)

func fieldStr(row theta.Row, key string) (string, error) {
	v, ok := row[key]
	if !ok {
		return "", errors.Reason("row has no %q field", key)
	}
	return v, nil
}

func fieldInt(row theta.Row, key string) (int, error) {
	v, err := fieldStr(row, key)
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Annotate(err, "invalid %q field", key)
	}
	return i, nil
}

func fieldDecimal(row theta.Row, key string) (decimal.Decimal, error) {
	v, err := fieldStr(row, key)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, errors.Annotate(err, "invalid %q field", key)
	}
	return d, nil
}

// ParseDate parses a YYYYMMDD response field as midnight Eastern.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("20060102", s, MarketTimeZone)
	if err != nil {
		return time.Time{}, errors.Annotate(err, "invalid date %q", s)
	}
	return t, nil
}

// ParseDateTime combines the "date" and "ms_of_day" wire values into an
// Eastern timestamp.
func ParseDateTime(date, msOfDay string) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	ms, err := strconv.Atoi(msOfDay)
	if err != nil {
		return time.Time{}, errors.Annotate(err, "invalid ms_of_day %q", msOfDay)
	}
	return TimeOfDay(ms).At(d.Year(), d.Month(), d.Day()), nil
}

// rowTime extracts the timestamp of a row from its "date" field and the
// named millisecond of day field.
func rowTime(row theta.Row, msKey string) (time.Time, error) {
	date, err := fieldStr(row, "date")
	if err != nil {
		return time.Time{}, err
	}
	ms, err := fieldStr(row, msKey)
	if err != nil {
		return time.Time{}, err
	}
	return ParseDateTime(date, ms)
}

// ParseQuote parses the quote fields of a row.
func ParseQuote(row theta.Row) (Quote, error) {
	var q Quote
	var err error
	if q.Time, err = rowTime(row, "ms_of_day"); err != nil {
		return Quote{}, err
	}
	if q.Bid, err = fieldDecimal(row, "bid"); err != nil {
		return Quote{}, err
	}
	if q.Ask, err = fieldDecimal(row, "ask"); err != nil {
		return Quote{}, err
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"bid_size", &q.BidSize},
		{"ask_size", &q.AskSize},
		{"bid_exchange", (*int)(&q.BidExchange)},
		{"ask_exchange", (*int)(&q.AskExchange)},
		{"bid_condition", (*int)(&q.BidCondition)},
		{"ask_condition", (*int)(&q.AskCondition)},
	}
	for _, f := range ints {
		if *f.dst, err = fieldInt(row, f.key); err != nil {
			return Quote{}, err
		}
	}
	return q, nil
}

// ParseTrade parses the trade fields of a row. The main "condition" field
// and the four "ext_condition" fields are collected in order, skipping the
// absent value 255.
func ParseTrade(row theta.Row) (Trade, error) {
	var t Trade
	var err error
	if t.Time, err = rowTime(row, "ms_of_day"); err != nil {
		return Trade{}, err
	}
	if t.Price, err = fieldDecimal(row, "price"); err != nil {
		return Trade{}, err
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"sequence", &t.Sequence},
		{"size", &t.Size},
		{"records_back", &t.RecordsBack},
		{"exchange", (*int)(&t.Exchange)},
	}
	for _, f := range ints {
		if *f.dst, err = fieldInt(row, f.key); err != nil {
			return Trade{}, err
		}
	}
	for _, key := range []string{"condition", "ext_condition1", "ext_condition2",
		"ext_condition3", "ext_condition4"} {
		c, err := fieldInt(row, key)
		if err != nil {
			return Trade{}, err
		}
		if TradeCondition(c) != NoTradeCondition {
			t.Conditions = append(t.Conditions, TradeCondition(c))
		}
	}
	return t, nil
}

// ParseEodReport parses an end of day row: the closing quote, the OHLC bar,
// and the last trade time from "ms_of_day2".
func ParseEodReport(row theta.Row) (EodReport, error) {
	var r EodReport
	var err error
	if r.Quote, err = ParseQuote(row); err != nil {
		return EodReport{}, err
	}
	if r.LastTrade, err = rowTime(row, "ms_of_day2"); err != nil {
		return EodReport{}, err
	}
	prices := []struct {
		key string
		dst *decimal.Decimal
	}{
		{"open", &r.Open},
		{"high", &r.High},
		{"low", &r.Low},
		{"close", &r.Close},
	}
	for _, f := range prices {
		if *f.dst, err = fieldDecimal(row, f.key); err != nil {
			return EodReport{}, err
		}
	}
	if r.Volume, err = fieldInt(row, "volume"); err != nil {
		return EodReport{}, err
	}
	if r.Count, err = fieldInt(row, "count"); err != nil {
		return EodReport{}, err
	}
	return r, nil
}

// ParseIndexPrice parses an index price row.
func ParseIndexPrice(row theta.Row) (IndexPrice, error) {
	var p IndexPrice
	var err error
	if p.Time, err = rowTime(row, "ms_of_day"); err != nil {
		return IndexPrice{}, err
	}
	if p.Price, err = fieldDecimal(row, "price"); err != nil {
		return IndexPrice{}, err
	}
	return p, nil
}

// ParseOption parses the contract identity fields of a bulk endpoint row:
// "root", "exp", "strike" (in 1/10 cent) and "right".
func ParseOption(row theta.Row) (Option, error) {
	var o Option
	var err error
	if o.Symbol, err = fieldStr(row, "root"); err != nil {
		return Option{}, err
	}
	exp, err := fieldStr(row, "exp")
	if err != nil {
		return Option{}, err
	}
	if o.Expiration, err = ParseDate(exp); err != nil {
		return Option{}, err
	}
	strike, err := fieldStr(row, "strike")
	if err != nil {
		return Option{}, err
	}
	if o.Strike, err = ParsePrice(strike); err != nil {
		return Option{}, errors.Annotate(err, "invalid %q field", "strike")
	}
	right, err := fieldStr(row, "right")
	if err != nil {
		return Option{}, err
	}
	switch OptionRight(right) {
	case Call, Put:
		o.Right = OptionRight(right)
	default:
		return Option{}, errors.Reason("invalid option right %q", right)
	}
	return o, nil
}
