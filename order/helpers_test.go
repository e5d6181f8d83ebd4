// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package order

import (
	"math/big"
	"sort"

	"github.com/otiai10/primes"

	"github.com/bnb-chain/multorder/common"
)

// factorize returns the factorization of n, primes ascending.
func factorize(n int64) Factors {
	if n == 1 {
		return Factors{}
	}
	counts := make(map[int64]int64)
	var ps []int64
	for _, p := range primes.Factorize(n).All() {
		if counts[p] == 0 {
			ps = append(ps, p)
		}
		counts[p]++
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i] < ps[j] })
	pairs := make([][2]int64, len(ps))
	for i, p := range ps {
		pairs[i] = [2]int64{p, counts[p]}
	}
	return FactorsFromInt64(pairs...)
}

// divisorSets returns, for every prime of f, the ascending divisors of p - 1.
func divisorSets(f Factors) [][]*big.Int {
	sets := make([][]*big.Int, len(f))
	for i, pp := range f {
		sets[i] = Divisors(factorize(pp.P.Int64() - 1))
	}
	return sets
}

// bruteOrder walks a, a², … mod n until it reaches 1. a must be a unit mod n.
func bruteOrder(a, n int64) int64 {
	if n == 1 {
		return 1
	}
	x, o := a%n, int64(1)
	for x != 1 {
		x = x * a % n
		o++
	}
	return o
}

func coprime(a, n int64) bool {
	return common.IsCoprime(big.NewInt(a), big.NewInt(n))
}

func ints(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}
	return out
}

// isOrder reports whether o is the order of a mod n, given every prime that can
// divide o. o is minimal iff a^o ≡ 1 and a^(o/q) ≢ 1 for each prime q | o.
func isOrder(a, n, o *big.Int, candidatePrimes []*big.Int) bool {
	modN := common.ModInt(n)
	if !modN.IsOne(modN.Exp(a, o)) {
		return false
	}
	rem, quo := new(big.Int), new(big.Int)
	for _, q := range candidatePrimes {
		if quo.QuoRem(o, q, rem); rem.Sign() != 0 {
			continue
		}
		if modN.IsOne(modN.Exp(a, quo)) {
			return false
		}
	}
	return true
}
