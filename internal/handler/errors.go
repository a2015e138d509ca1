// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CemWebDev

package handler

import "errors"

// errNoHTTPAddress is returned by NewHandlers when the server configuration
// has no HTTP address. The todo API is only reachable over HTTP, so startup
// fails.
var errNoHTTPAddress = errors.New("http address is not configured")
