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

// Package theta implements the generic request API of a ThetaData terminal.
//
// The terminal is a locally running HTTP gateway to the ThetaData historical
// market data service. Every endpoint is a GET request returning CSV with a
// header line, and a single logical result may arrive in several ways:
//
//   - the server may answer with multiple pages, chaining them with the
//     Next-Page response header;
//   - the client may split a large date range into several requests, since
//     the service limits how many days a single call may cover;
//   - each page body is itself a stream of CSV rows.
//
// This package folds all three into RowStream, a single lazy sequence of
// rows in strict request order. Pages are fetched sequentially by a single
// background goroutine one page ahead of the consumer, and closing the
// stream releases every network resource it holds, consumed or not.
//
// Queries are built with the immutable Query builder and executed with the
// Client injected into the context by UseClient. Typed record parsers and
// per-instrument convenience APIs live in the subpackages.
package theta
