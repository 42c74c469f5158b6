/*
Package seahorse defines all common interfaces used to weave together
the swap chain, as well as implementations of some of the simpler
components (when interfaces would be too much overhead).

We pass context through context.Context between app, middleware, and
handlers. To do so, seahorse defines some common keys to store info,
such as block height and chain id. Each extension, such as sigs, may
add its own keys to enrich the context with specific data.

There should exist two functions for every XYZ of type T that we want
to support in Context:

	WithXYZ(Context, T) Context
	GetXYZ(Context) (val T, ok bool)

WithXYZ may panic if the value was previously set to avoid lower-level
modules overwriting the value (eg. height, chain id).

Addresses that are owned by a program rather than a key pair are
computed with FindProgramAddress. Such an address is guaranteed to not
be a valid ed25519 public key, so no signature can ever be produced for
it. The only way to move assets held by such an address is to present
the seeds and the bump that derive it.
*/
package seahorse
