package seahorse_test

import (
	"bytes"
	"testing"

	"filippo.io/edwards25519"
	seahorse "github.com/mtnPay/seahorse-swap"
	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/seahorsetest/assert"
)

func onCurve(a seahorse.Address) bool {
	_, err := new(edwards25519.Point).SetBytes(a)
	return err == nil
}

func TestFindProgramAddress(t *testing.T) {
	seeds := [][]byte{[]byte("escrow"), []byte("first"), []byte("second")}

	addr, bump, err := seahorse.FindProgramAddress("swap", seeds...)
	assert.Nil(t, err)
	assert.Nil(t, addr.Validate())
	if onCurve(addr) {
		t.Fatal("derived address is on the curve")
	}

	again, againBump, err := seahorse.FindProgramAddress("swap", seeds...)
	assert.Nil(t, err)
	assert.Equal(t, addr, again)
	assert.Equal(t, bump, againBump)

	created, err := seahorse.CreateProgramAddress("swap", bump, seeds...)
	assert.Nil(t, err)
	assert.Equal(t, addr, created)

	// every bump above the found one lands on the curve
	for b := 255; b > int(bump); b-- {
		_, err := seahorse.CreateProgramAddress("swap", uint8(b), seeds...)
		assert.IsErr(t, errors.ErrInput, err)
	}
}

func TestProgramAddressIsBoundToInputs(t *testing.T) {
	base, _, err := seahorse.FindProgramAddress("swap", []byte("a"), []byte("b"))
	assert.Nil(t, err)

	others := map[string][][]byte{
		"swapped seeds":    {[]byte("b"), []byte("a")},
		"joined seeds":     {[]byte("ab")},
		"shifted boundary": {[]byte("ab"), []byte("")},
		"additional seed":  {[]byte("a"), []byte("b"), []byte("c")},
		"missing seed":     {[]byte("a")},
	}
	for name, seeds := range others {
		t.Run(name, func(t *testing.T) {
			addr, _, err := seahorse.FindProgramAddress("swap", seeds...)
			assert.Nil(t, err)
			if bytes.Equal(base, addr) {
				t.Fatal("different seeds derived the same address")
			}
		})
	}

	t.Run("other program", func(t *testing.T) {
		addr, _, err := seahorse.FindProgramAddress("token", []byte("a"), []byte("b"))
		assert.Nil(t, err)
		if bytes.Equal(base, addr) {
			t.Fatal("different programs derived the same address")
		}
	})
}

func TestCreateProgramAddressBumps(t *testing.T) {
	seeds := [][]byte{[]byte("custody")}
	var onCurveCount, offCurveCount int
	for b := 0; b <= 255; b++ {
		addr, err := seahorse.CreateProgramAddress("swap", uint8(b), seeds...)
		if err != nil {
			assert.IsErr(t, errors.ErrInput, err)
			onCurveCount++
			continue
		}
		if onCurve(addr) {
			t.Fatalf("bump %d: derived address is on the curve", b)
		}
		offCurveCount++
	}
	// roughly half of all digests decode to a point
	if onCurveCount == 0 || offCurveCount == 0 {
		t.Fatalf("on curve: %d, off curve: %d", onCurveCount, offCurveCount)
	}
}

func TestDerivationSeedLimits(t *testing.T) {
	tooMany := make([][]byte, seahorse.MaxSeeds+1)
	for i := range tooMany {
		tooMany[i] = []byte{byte(i)}
	}
	cases := map[string]struct {
		program string
		seeds   [][]byte
		wantErr *errors.Error
	}{
		"no seeds": {
			program: "swap",
		},
		"longest seed": {
			program: "swap",
			seeds:   [][]byte{bytes.Repeat([]byte{1}, seahorse.MaxSeedLength)},
		},
		"seed too long": {
			program: "swap",
			seeds:   [][]byte{bytes.Repeat([]byte{1}, seahorse.MaxSeedLength+1)},
			wantErr: errors.ErrInput,
		},
		"too many seeds": {
			program: "swap",
			seeds:   tooMany,
			wantErr: errors.ErrInput,
		},
		"missing program": {
			seeds:   [][]byte{[]byte("a")},
			wantErr: errors.ErrEmpty,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := seahorse.FindProgramAddress(tc.program, tc.seeds...)
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}

func TestMustFindProgramAddress(t *testing.T) {
	addr, bump := seahorse.MustFindProgramAddress("swap", []byte("x"))
	found, foundBump, err := seahorse.FindProgramAddress("swap", []byte("x"))
	assert.Nil(t, err)
	assert.Equal(t, found, addr)
	assert.Equal(t, foundBump, bump)

	assert.Panics(t, func() { seahorse.MustFindProgramAddress("") })
}
