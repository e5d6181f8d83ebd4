// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package order

import (
	"math/big"

	"github.com/pkg/errors"
)

// Dyadic returns the 2-adic valuation of n, the i such that n = m⋅2ⁱ with m odd.
// The sign of n is ignored. Dyadic panics when n is zero.
func Dyadic(n *big.Int) int {
	if n.Sign() == 0 {
		panic(errors.New("Dyadic: the 2-adic valuation of 0 is undefined"))
	}
	return int(n.TrailingZeroBits())
}
