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

package stock

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
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

func TestStock(t *testing.T) {
	Convey("Stock API works", t, func() {
		server := newTestServer()
		defer server.Close()

		ctx := fetch.UseClient(context.Background(), server.Client())
		theta.URL = server.URL()
		ctx = theta.UseClient(ctx)

		Convey("Symbols", func() {
			server.ResponseBody = []string{csvBody("root", "MSFT", "AAPL", "ZBRA")}
			symbols, err := Symbols(ctx)
			So(err, ShouldBeNil)
			So(symbols, ShouldResemble, []string{"MSFT", "AAPL", "ZBRA"})
			So(server.RequestPath, ShouldEqual, "/v2/list/roots/stock")
		})

		Convey("QuoteAtTime", func() {
			server.ResponseBody = []string{csvBody(quoteHeader,
				"36000000,1,1,325.3600,0,2,3,326.2800,1,20250219")}

			at := time.Date(2025, 2, 19, 10, 0, 0, 0, record.MarketTimeZone)
			quote, err := QuoteAtTime(ctx, "MSFT", at)
			So(err, ShouldBeNil)

			Convey("sends the full parameter set", func() {
				So(server.RequestPath, ShouldEqual, "/v2/at_time/stock/quote")
				So(server.RequestQuery, ShouldResemble, url.Values{
					"root":       []string{"MSFT"},
					"start_date": []string{"20250219"},
					"end_date":   []string{"20250219"},
					"ivl":        []string{"36000000"},
					"venue":      []string{"utp_cta"},
					"rth":        []string{"false"},
					"use_csv":    []string{"true"},
				})
			})

			Convey("decodes the quote", func() {
				So(quote.Bid.Equal(price("325.36")), ShouldBeTrue)
				So(quote.AskExchange, ShouldEqual, record.NYSE)
				So(quote.Time,
					ShouldResemble, time.Date(2025, 2, 19, 10, 0, 0, 0, record.MarketTimeZone))
			})
		})

		Convey("TradesAtTime", func() {
			header := "ms_of_day,sequence,ext_condition1,ext_condition2," +
				"ext_condition3,ext_condition4,condition,size,exchange,price," +
				"condition_flags,price_flags,volume_type,records_back,date"
			server.ResponseBody = []string{csvBody(header,
				"35938270,1054514035,17,255,255,255,130,1,5,4.6500,0,1,0,7,20250218",
				"35938270,1054514036,255,255,255,255,0,2,5,4.7000,0,1,0,3,20250219")}

			trades, err := TradesAtTime(ctx, "MSFT",
				theta.NewDate(2025, 2, 18), theta.NewDate(2025, 2, 19),
				record.NewTimeOfDay(9, 58, 58, 270))
			So(err, ShouldBeNil)
			all, err := theta.All(trades)
			So(err, ShouldBeNil)
			So(len(all), ShouldEqual, 2)
			So(server.RequestPath, ShouldEqual, "/v2/at_time/stock/trade")
			So(all[0].Condition(), ShouldEqual, record.TradeMultiLegAutoElec)
			So(all[1].Conditions, ShouldResemble,
				[]record.TradeCondition{record.TradeRegular})
			So(all[1].Size, ShouldEqual, 2)
		})

		Convey("EodReports spans a date range", func() {
			header := quoteHeader + ",ms_of_day2,open,high,low,close,volume,count"
			server.ResponseBody = []string{csvBody(header,
				"36000000,169,5,5.0000,50,30,5,5.2000,50,20250217,"+
					"36061000,13.37,1337.13,9.15,100.12,1337,10",
				"36000000,169,5,5.0000,50,30,5,5.2000,50,20250218,"+
					"36061000,100.12,103.50,99.15,101.00,1500,12")}

			reports, err := EodReports(ctx, "MSFT",
				theta.NewDate(2025, 2, 17), theta.NewDate(2025, 2, 18))
			So(err, ShouldBeNil)
			all, err := theta.All(reports)
			So(err, ShouldBeNil)
			So(len(all), ShouldEqual, 2)
			So(server.RequestPath, ShouldEqual, "/v2/hist/stock/eod")
			So(all[0].Open.Equal(price("13.37")), ShouldBeTrue)
			So(all[1].Close.Equal(price("101.00")), ShouldBeTrue)
			So(all[1].Count, ShouldEqual, 12)
		})

		Convey("EodReport returns the single day's report", func() {
			header := quoteHeader + ",ms_of_day2,open,high,low,close,volume,count"
			server.ResponseBody = []string{csvBody(header,
				"36000000,169,5,5.0000,50,30,5,5.2000,50,20250217,"+
					"36061000,13.37,1337.13,9.15,100.12,1337,10")}

			report, err := EodReport(ctx, "MSFT", theta.NewDate(2025, 2, 17))
			So(err, ShouldBeNil)
			So(server.RequestQuery["start_date"], ShouldResemble, []string{"20250217"})
			So(server.RequestQuery["end_date"], ShouldResemble, []string{"20250217"})
			So(report.Volume, ShouldEqual, 1337)
		})
	})
}
