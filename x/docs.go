/*
Package x contains the extensions of the swap chain.

Extensions implement common functionality (Handler, Decorator,
etc.) and are combined together to construct an application.

	sigs   verifies transaction signatures and exposes signers
	utils  logging, panic recovery and savepoints
	token  token accounts and transfers
	swap   two party conditional escrow

Note that protobuf types in exported code will be prefixed by
the package, so follow standard go naming conventions and avoid
stutter. Use eg. `swap.FundMsg` in place of `swap.SwapFundMsg`.
*/
package x
