/*
Package errors implements custom error interfaces for the swap chain.

Each error returned by a handler should wrap one of the root errors
declared here (or registered by an extension with Register). The root
error carries an ABCI code, so clients get a stable identifier while
the wrapping layers add a human readable context.

	if !auth.HasAddress(ctx, escrow.OfferingParty) {
		return errors.Wrap(errors.ErrUnauthorized, "offering party signature required")
	}

Use the Is method of a root error to test the kind of any wrapped error.
*/
package errors
