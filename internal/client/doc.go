// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the tamer command line client.
//
// Commands are built with cobra and talk to the server through
// [adapter.ServerAdapter]. The bearer token and server address are kept in a
// YAML profile (see [config.ClientConfig]) so that a login survives between
// invocations.
package client
