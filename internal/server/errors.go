// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoAddressConfigured = errors.New("no listen address configured")
	errNoHandlerProvided   = errors.New("no handler provided")
)
