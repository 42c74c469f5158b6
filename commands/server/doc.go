// Package server provides the commands shared by application binaries:
// writing the app_state into a tendermint genesis file and running the
// abci server.
package server
