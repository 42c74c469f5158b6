package seahorsetest

import seahorse "github.com/mtnPay/seahorse-swap"

// Handler is a mock implementation of the seahorse.Handler interface.
//
// It returns configured results and counts each call.
type Handler struct {
	checkCall   int
	CheckResult seahorse.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult seahorse.DeliverResult
	DeliverErr    error

	// Write, if set, is stored under its key before returning.
	Write *seahorse.Model
}

var _ seahorse.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.CheckResult, error) {
	h.checkCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	res := h.CheckResult
	return &res, h.CheckErr
}

func (h *Handler) Deliver(ctx seahorse.Context, db seahorse.KVStore, tx seahorse.Tx) (*seahorse.DeliverResult, error) {
	h.deliverCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	res := h.DeliverResult
	return &res, h.DeliverErr
}

func (h *Handler) write(db seahorse.KVStore) error {
	if h.Write == nil {
		return nil
	}
	return db.Set(h.Write.Key, h.Write.Value)
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
