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

package option

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
	"github.com/stockparfait/thetadata/theta"
	"github.com/stockparfait/thetadata/theta/record"

	. "github.com/smartystreets/goconvey/convey"
)

// testServer records the latest request and replies with the queued response
// bodies, the last body repeating once the queue runs out.
type testServer struct {
	ResponseBody []string
	RequestPath  string
	RequestQuery url.Values
	server       *httptest.Server
	requests     int
}

func newTestServer() *testServer {
	s := &testServer{}
	s.server = httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			s.RequestPath = r.URL.Path
			s.RequestQuery = r.URL.Query()
			i := s.requests
			s.requests++
			if i >= len(s.ResponseBody) {
				i = len(s.ResponseBody) - 1
			}
			if i >= 0 {
				w.Write([]byte(s.ResponseBody[i]))
			}
		}))
	return s
}

func (s *testServer) Client() *http.Client { return s.server.Client() }
func (s *testServer) URL() string { return s.server.URL }
func (s *testServer) Close() { s.server.Close() }

const quoteHeader = "ms_of_day,bid_size,bid_exchange,bid,bid_condition," +
	"ask_size,ask_exchange,ask,ask_condition,date"

func csvBody(header string, rows ...string) string {
	return header + "\n" + strings.Join(rows, "\n") + "\n"
}

func price(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	So(err, ShouldBeNil)
	return d
}

func TestOption(t *testing.T) {
	Convey("Option API works", t, func() {
		server := newTestServer()
		defer server.Close()

		ctx := fetch.UseClient(context.Background(), server.Client())
		theta.URL = server.URL()
		ctx = theta.UseClient(ctx)

		expiration := theta.NewDate(2024, 3, 15)
		strike := decimal.NewFromInt(6000)

		Convey("Symbols", func() {
			server.ResponseBody = []string{csvBody("root", "MSFT", "AAPL", "SPX")}
			symbols, err := Symbols(ctx)
			So(err, ShouldBeNil)
			So(symbols, ShouldResemble, []string{"MSFT", "AAPL", "SPX"})
			So(server.RequestPath, ShouldEqual, "/v2/list/roots/option")
			So(server.RequestQuery["use_csv"], ShouldResemble, []string{"true"})
		})

		Convey("QuoteAtTime", func() {
			server.ResponseBody = []string{csvBody(quoteHeader,
				"36000000,1,1,325.3600,0,2,3,326.2800,1,20250219")}

			at := time.Date(2024, 3, 1, 10, 0, 0, 0, record.MarketTimeZone)
			quote, err := QuoteAtTime(ctx, "SPXW", expiration, strike, record.Put, at)
			So(err, ShouldBeNil)

			Convey("sends the full parameter set", func() {
				So(server.RequestPath, ShouldEqual, "/v2/at_time/option/quote")
				So(server.RequestQuery, ShouldResemble, url.Values{
					"root":       []string{"SPXW"},
					"exp":        []string{"20240315"},
					"strike":     []string{"6000000"},
					"right":      []string{"P"},
					"start_date": []string{"20240301"},
					"end_date":   []string{"20240301"},
					"ivl":        []string{"36000000"},
					"rth":        []string{"false"},
					"use_csv":    []string{"true"},
				})
			})

			Convey("decodes the quote", func() {
				So(quote, ShouldResemble, record.Quote{
					Time:         time.Date(2025, 2, 19, 10, 0, 0, 0, record.MarketTimeZone),
					Bid:          price("325.3600"),
					BidSize:      1,
					BidExchange:  record.NQEX,
					BidCondition: record.QuoteRegular,
					Ask:          price("326.2800"),
					AskSize:      2,
					AskExchange:  record.NYSE,
					AskCondition: record.QuoteBidAskAutoExec,
				})
			})
		})

		Convey("QuotesAtTime skips non-trading day filler rows", func() {
			server.ResponseBody = []string{csvBody(quoteHeader,
				"0,0,0,0.0000,0,0,0,0.0000,0,0",
				"36000000,1,1,325.3600,0,2,1,326.2800,0,20250219")}

			quotes, err := QuotesAtTime(ctx, "SPXW", expiration, strike, record.Put,
				theta.NewDate(2024, 2, 20), theta.NewDate(2024, 2, 29),
				record.NewTimeOfDay(10, 0, 0, 0))
			So(err, ShouldBeNil)
			all, err := theta.All(quotes)
			So(err, ShouldBeNil)
			So(len(all), ShouldEqual, 1)
			So(all[0].Ask.Equal(price("326.2800")), ShouldBeTrue)
		})

		Convey("AllQuotesAtTime decodes the contract of each row", func() {
			header := "root,exp,strike,right," + quoteHeader
			server.ResponseBody = []string{csvBody(header,
				"SPXW,20240315,6000000,C,36000000,1,1,325.3600,0,2,1,326.2800,0,20250219")}

			quotes, err := AllQuotesAtTime(ctx, "SPXW", expiration,
				theta.NewDate(2024, 2, 20), theta.NewDate(2024, 2, 21),
				record.NewTimeOfDay(10, 0, 0, 0))
			So(err, ShouldBeNil)
			all, err := theta.All(quotes)
			So(err, ShouldBeNil)
			So(len(all), ShouldEqual, 1)
			So(all[0].Option.Symbol, ShouldEqual, "SPXW")
			So(all[0].Option.Right, ShouldEqual, record.Call)
			So(all[0].Option.Strike.Equal(price("6000")), ShouldBeTrue)
			So(all[0].Quote.BidSize, ShouldEqual, 1)
			So(server.RequestPath, ShouldEqual, "/v2/bulk_at_time/option/quote")
		})

		Convey("TradeAtTime", func() {
			header := "ms_of_day,sequence,ext_condition1,ext_condition2," +
				"ext_condition3,ext_condition4,condition,size,exchange,price," +
				"condition_flags,price_flags,volume_type,records_back,date"
			server.ResponseBody = []string{csvBody(header,
				"35938270,1054514035,17,255,255,255,130,1,5,4.6500,0,1,0,7,20250218")}

			at := time.Date(2025, 2, 18, 10, 0, 0, 0, record.MarketTimeZone)
			trade, err := TradeAtTime(ctx, "SPXW", expiration, strike, record.Put, at)
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/v2/at_time/option/trade")
			So(trade.Price.Equal(price("4.65")), ShouldBeTrue)
			So(trade.Conditions, ShouldResemble,
				[]record.TradeCondition{record.TradeMultiLegAutoElec, record.TradePosit})
		})

		Convey("EodReport", func() {
			header := quoteHeader + ",ms_of_day2,open,high,low,close,volume,count"
			server.ResponseBody = []string{csvBody(header,
				"36000000,169,5,5.0000,50,30,5,5.2000,50,20250217,"+
					"36061000,13.37,1337.13,9.15,100.12,1337,10")}

			report, err := EodReport(ctx, "SPXW", expiration, strike, record.Put,
				theta.NewDate(2025, 2, 17))
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/v2/hist/option/eod")
			So(server.RequestQuery["start_date"], ShouldResemble, []string{"20250217"})
			So(server.RequestQuery["end_date"], ShouldResemble, []string{"20250217"})
			So(report.Close.Equal(price("100.12")), ShouldBeTrue)
			So(report.Volume, ShouldEqual, 1337)
			So(report.LastTrade,
				ShouldResemble, time.Date(2025, 2, 17, 10, 1, 1, 0, record.MarketTimeZone))

			Convey("no rows means ErrNoData", func() {
				server.ResponseBody = []string{header + "\n"}
				_, err := EodReport(ctx, "SPXW", expiration, strike, record.Put,
					theta.NewDate(2025, 2, 18))
				So(errors.Is(err, theta.ErrNoData), ShouldBeTrue)
			})
		})

		Convey("HistoricalQuotes", func() {
			server.ResponseBody = []string{csvBody(quoteHeader,
				"36000000,1,1,325.3600,0,2,1,326.2800,0,20250219")}

			quotes, err := HistoricalQuotes(ctx, "SPXW", expiration, strike, record.Put,
				theta.NewDate(2025, 2, 19), theta.NewDate(2025, 2, 19),
				record.MarketOpen, record.MarketClose, record.FiveMinutes)
			So(err, ShouldBeNil)
			all, err := theta.All(quotes)
			So(err, ShouldBeNil)
			So(len(all), ShouldEqual, 1)
			So(server.RequestPath, ShouldEqual, "/v2/hist/option/quote")
			So(server.RequestQuery["ivl"], ShouldResemble, []string{"300000"})
			So(server.RequestQuery["start_time"], ShouldResemble, []string{"34200000"})
			So(server.RequestQuery["end_time"], ShouldResemble, []string{"57600000"})
		})
	})
}

func TestHistorySplitDays(t *testing.T) {
	t.Parallel()

	Convey("small intervals get smaller splits", t, func() {
		So(historySplitDays(record.Tick), ShouldEqual, 3)
		So(historySplitDays(record.Minute), ShouldEqual, 3)
		So(historySplitDays(2*record.Minute), ShouldEqual, 3)
		So(historySplitDays(record.FiveMinutes), ShouldEqual, 7)
	})
}
