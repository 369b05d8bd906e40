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

// Package record defines the typed records decoded from ThetaData responses,
// the enumerated condition and exchange codes, and the formatters and parsers
// converting between Go values and the terminal's wire representation.
package record

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Option identifies a single option contract.
type Option struct {
	Symbol     string
	Expiration time.Time
	Strike     decimal.Decimal
	Right      OptionRight
}

func (o Option) String() string {
	return fmt.Sprintf("%s %s %s%s", o.Symbol, o.Expiration.Format("2006-01-02"),
		o.Right, o.Strike)
}

// Quote is a single NBBO quote sample.
type Quote struct {
	Time         time.Time
	Bid          decimal.Decimal
	BidSize      int
	BidExchange  Exchange
	BidCondition QuoteCondition
	Ask          decimal.Decimal
	AskSize      int
	AskExchange  Exchange
	AskCondition QuoteCondition
}

// Trade is a single trade print. Conditions lists the sale conditions in
// wire order, main condition first, with absent (255) slots dropped.
type Trade struct {
	Time        time.Time
	Sequence    int
	Price       decimal.Decimal
	Size        int
	Exchange    Exchange
	Conditions  []TradeCondition
	RecordsBack int
}

// Condition returns the main sale condition.
func (t Trade) Condition() TradeCondition {
	if len(t.Conditions) == 0 {
		return NoTradeCondition
	}
	return t.Conditions[0]
}

// EodReport is an end of day summary for one trading day: the OHLC bar plus
// the closing NBBO quote. LastTrade is the time of the day's last trade.
type EodReport struct {
	Quote     Quote
	LastTrade time.Time
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Close     decimal.Decimal
	Volume    int
	Count     int
}

// Time returns the report's timestamp.
func (r EodReport) Time() time.Time { return r.Quote.Time }

// IndexPrice is a single index value sample.
type IndexPrice struct {
	Time  time.Time
	Price decimal.Decimal
}

// OptionQuote pairs a contract with one of its quotes, as returned by bulk
// endpoints.
type OptionQuote struct {
	Option Option
	Quote  Quote
}

// OptionTrade pairs a contract with one of its trades.
type OptionTrade struct {
	Option Option
	Trade  Trade
}
