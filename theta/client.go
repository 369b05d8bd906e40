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
	"context"
	"strings"
)

type contextKey int

const (
	clientContextKey contextKey = iota
)

// URL is the default base URL of a locally running ThetaData terminal. It may
// be overwritten in tests before creating a new client.
var URL = "http://127.0.0.1:25510"

// Client for querying a ThetaData terminal.
type Client struct {
	baseURL string // the base URL of the terminal
}

// newClient creates a new client.
func newClient(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

// GetClient extracts the Client from the context, if any.
func GetClient(ctx context.Context) *Client {
	c, ok := ctx.Value(clientContextKey).(*Client)
	if !ok {
		return nil
	}
	return c
}

// UseClient creates a new client for the current URL and injects it into the
// context. The HTTP connection pool itself is the one carried in the context
// by the fetch package; all requests of a single stream share it.
func UseClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, clientContextKey, newClient(URL))
}

// endpoint returns the full URL of an API path such as "hist/option/quote".
func (c *Client) endpoint(path string) string {
	return strings.TrimSuffix(c.baseURL, "/") + "/v2/" + path
}
