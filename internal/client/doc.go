// Package client implements the console application runtime.
//
// It wires the backend adapter, the session store, the terminal UI and the
// background notification poller into a single process lifecycle.
package client
