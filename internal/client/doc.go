// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the respondent's runner application.
//
// It wires the form store adapter, the client services and the terminal UI
// into a single process lifecycle driven by one share link.
package client
