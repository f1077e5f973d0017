// Package client implements the headless sync agent runtime.
//
// It wires the local replica, the server adapter, client services, and the
// background synchronization job into a single process lifecycle.
package client
