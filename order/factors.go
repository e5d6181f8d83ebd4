// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package order

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/bnb-chain/multorder/common"
)

type (
	// PrimePower is one factor pᵉ of a modulus.
	PrimePower struct {
		P *big.Int
		E int
	}

	// Factors is the factorization n = ∏ pᵉ, one entry per distinct prime.
	Factors []*PrimePower
)

// NewPrimePower returns pᵉ. p is copied.
func NewPrimePower(p *big.Int, e int) *PrimePower {
	return &PrimePower{P: new(big.Int).Set(p), E: e}
}

// FactorsFromInt64 builds a factorization from (prime, exponent) pairs.
func FactorsFromInt64(pairs ...[2]int64) Factors {
	f := make(Factors, len(pairs))
	for i, pair := range pairs {
		f[i] = NewPrimePower(big.NewInt(pair[0]), int(pair[1]))
	}
	return f
}

// Value returns pᵉ.
func (pp *PrimePower) Value() *big.Int {
	return new(big.Int).Exp(pp.P, big.NewInt(int64(pp.E)), nil)
}

// GroupOrder returns φ(pᵉ) = pᵉ⁻¹(p - 1). The order of any unit mod pᵉ divides it.
func (pp *PrimePower) GroupOrder() *big.Int {
	phi := new(big.Int).Exp(pp.P, big.NewInt(int64(pp.E-1)), nil)
	return phi.Mul(phi, new(big.Int).Sub(pp.P, one))
}

// Exponent returns λ(pᵉ), the exponent of the unit group mod pᵉ.
// It equals φ(pᵉ) except for 2ᵉ with e ≥ 3, where the group is not cyclic.
func (pp *PrimePower) Exponent() *big.Int {
	if pp.P.Cmp(two) == 0 && pp.E >= 3 {
		return new(big.Int).Lsh(one, uint(pp.E-2))
	}
	return pp.GroupOrder()
}

func (pp *PrimePower) String() string {
	if pp.E == 1 {
		return pp.P.String()
	}
	return fmt.Sprintf("%s^%d", pp.P, pp.E)
}

// N returns the product of the factors. An empty factorization is 1.
func (f Factors) N() *big.Int {
	n := big.NewInt(1)
	for _, pp := range f {
		n.Mul(n, pp.Value())
	}
	return n
}

// Totient returns φ(n).
func (f Factors) Totient() *big.Int {
	phi := big.NewInt(1)
	for _, pp := range f {
		phi.Mul(phi, pp.GroupOrder())
	}
	return phi
}

// Carmichael returns λ(n). The order of every unit mod n divides it.
func (f Factors) Carmichael() *big.Int {
	lambdas := make([]*big.Int, len(f))
	for i, pp := range f {
		lambdas[i] = pp.Exponent()
	}
	return common.LcmAll(lambdas...)
}

// Divisors returns every positive divisor of f.N() in ascending order. Passing the
// factorization of p - 1 yields the divisor set expected by Order for the prime p.
func Divisors(f Factors) []*big.Int {
	divs := []*big.Int{big.NewInt(1)}
	for _, pp := range f {
		prev := divs
		pk := big.NewInt(1)
		for k := 1; k <= pp.E; k++ {
			pk = new(big.Int).Mul(pk, pp.P)
			for _, d := range prev {
				divs = append(divs, new(big.Int).Mul(d, pk))
			}
		}
	}
	sort.Slice(divs, func(i, j int) bool {
		return divs[i].Cmp(divs[j]) < 0
	})
	return divs
}
