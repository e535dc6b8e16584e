// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned when no handler matches a configured
// listen address.
var errNoServersAreCreated = errors.New("no servers are created: no handler matches a configured address")
