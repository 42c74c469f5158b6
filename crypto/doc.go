/*
Package crypto wraps ed25519 keys used to sign transactions.

The address of a key pair is its raw 32 byte public key. Program derived
addresses are never valid curve points, so they can not collide with a
key pair address.
*/
package crypto
