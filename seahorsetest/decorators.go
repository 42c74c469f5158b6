package seahorsetest

import seahorse "github.com/mtnPay/seahorse-swap"

// Decorator is a mock implementation of the seahorse.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then wrapped handler method is called and
// its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ seahorse.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx, next seahorse.Checker) (*seahorse.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return &seahorse.CheckResult{}, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx, next seahorse.Deliverer) (*seahorse.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return &seahorse.DeliverResult{}, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate returns a handler that calls given decorator before the handler.
func Decorate(h seahorse.Handler, d seahorse.Decorator) seahorse.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn seahorse.Handler
	dc seahorse.Decorator
}

var _ seahorse.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
