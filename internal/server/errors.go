// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CemWebDev

package server

import "errors"

// errNoServersAreCreated means neither listener had both an address and a
// handler.
var errNoServersAreCreated = errors.New("no servers are created")
