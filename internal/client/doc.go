// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime of the workflow binary.
//
// It wires configuration, the PatientVault adapter, the session-aware
// services, the optional run journal and the workflow runner into a single
// awaited run.
package client
