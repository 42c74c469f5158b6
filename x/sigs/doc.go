/*
Package sigs provides basic authentication
middleware to verify the signatures on the transaction,
and maintain nonces for replay protection.

Each signer is identified by the address of its ed25519 public key. The
sequence stored for each signer must be used exactly once, in increasing
order.
*/
package sigs
