package client

import (
	"context"
	"fmt"
	"time"

	"github.com/tendermint/tendermint/abci/types"
	nm "github.com/tendermint/tendermint/node"
	rpctest "github.com/tendermint/tendermint/rpc/test"
)

// Runner is an interface that would allow us more flexibility in terms of
// types passed to the helper
type Runner interface {
	Run() int
}

// TestWithTendermint starts given application inside of an in-process
// tendermint node, waits for the first block and runs the tests. The
// callback is called with the started node before waiting.
func TestWithTendermint(app types.Application, cb func(*nm.Node), m Runner) int {
	n := rpctest.StartTendermint(app)
	cb(n)

	fmt.Println("Wait for first block...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	h, err := NewLocalClient(n).WaitForNextBlock(ctx)

	var code int
	if err == nil {
		fmt.Printf("Starting tests with block %d\n", h.Height)
		code = m.Run()
	} else {
		fmt.Printf("Failed to start tendermint: %s\n", err)
		code = 1
	}

	_ = n.Stop()
	n.Wait()
	return code
}
