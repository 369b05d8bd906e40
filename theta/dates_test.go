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

package theta

import (
	"testing"
	"time"

	"github.com/stockparfait/errors"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDates(t *testing.T) {
	t.Parallel()

	Convey("Date methods work", t, func() {
		d := NewDate(2024, 2, 28)

		Convey("String is the wire format", func() {
			So(d.String(), ShouldEqual, "20240228")
		})

		Convey("NewDateFromString round-trips", func() {
			d2, err := NewDateFromString("20240228")
			So(err, ShouldBeNil)
			So(d2, ShouldResemble, d)
		})

		Convey("NewDateFromString rejects garbage", func() {
			_, err := NewDateFromString("2024-02-28")
			So(err, ShouldNotBeNil)
			_, err = NewDateFromString("20240230")
			So(err, ShouldNotBeNil)
		})

		Convey("AddDays crosses month boundaries", func() {
			So(d.AddDays(2), ShouldResemble, NewDate(2024, 3, 1))
		})

		Convey("Before and After", func() {
			So(d.Before(NewDate(2024, 2, 29)), ShouldBeTrue)
			So(d.Before(d), ShouldBeFalse)
			So(NewDate(2024, 3, 1).After(d), ShouldBeTrue)
		})

		Convey("NewDateFromTime", func() {
			So(NewDateFromTime(time.Date(2024, 2, 28, 15, 4, 5, 0, time.UTC)),
				ShouldResemble, d)
		})
	})

	Convey("SplitRange works", t, func() {
		Convey("splits a quarter into 30 day chunks", func() {
			chunks, err := SplitRange(NewDate(2024, 1, 1), NewDate(2024, 3, 31), 30)
			So(err, ShouldBeNil)
			So(chunks, ShouldResemble, []DateRange{
				{NewDate(2024, 1, 1), NewDate(2024, 1, 30)},
				{NewDate(2024, 1, 31), NewDate(2024, 2, 29)},
				{NewDate(2024, 3, 1), NewDate(2024, 3, 30)},
				{NewDate(2024, 3, 31), NewDate(2024, 3, 31)},
			})
		})

		Convey("a single day is a single chunk", func() {
			d := NewDate(2024, 1, 1)
			chunks, err := SplitRange(d, d, 30)
			So(err, ShouldBeNil)
			So(chunks, ShouldResemble, []DateRange{{d, d}})
		})

		Convey("a short range is not split", func() {
			chunks, err := SplitRange(NewDate(2024, 1, 1), NewDate(2024, 1, 10), 30)
			So(err, ShouldBeNil)
			So(chunks, ShouldResemble, []DateRange{
				{NewDate(2024, 1, 1), NewDate(2024, 1, 10)}})
		})

		Convey("fails for a reversed range", func() {
			_, err := SplitRange(NewDate(2024, 3, 31), NewDate(2024, 1, 1), 30)
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrInvalidRange), ShouldBeTrue)
		})

		Convey("fails for non-positive max days", func() {
			_, err := SplitRange(NewDate(2024, 1, 1), NewDate(2024, 3, 31), 0)
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrInvalidRange), ShouldBeTrue)
		})
	})
}
