// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run presents the form behind shareLink and blocks until exit.
	Run(ctx context.Context, shareLink string) error
}

var _ Client = (*App)(nil)
