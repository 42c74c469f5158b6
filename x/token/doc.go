/*
Package token implements single asset accounts and the transfer primitive
used by the swap extension.

Every account holds a balance of exactly one asset class (ticker) and is
controlled by an owner address. The owner is either a key pair address, in
which case a signature authorizes outgoing transfers, or a program derived
address, in which case the caller must present the seeds and the bump that
recreate it.

An associated account address is derived from the owner and the ticker, so
that every owner has one well known account per asset class.
*/
package token
