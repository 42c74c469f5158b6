/*
Package app contains the glue that turns a set of extensions into an abci
application: a router dispatching messages to handlers, decorator chains,
genesis initialization and the committing store.
*/
package app
