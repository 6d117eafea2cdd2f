// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package convert maps host events and interaction hints between the host
// vocabulary and the ui runtime. All functions are pure.
package convert
