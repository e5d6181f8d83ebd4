// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package order computes the multiplicative order of an integer a modulo
// n = p₁^e₁ ⋅ … ⋅ pₖ^eₖ when the factorization of n is already known.
//
// For every prime pᵢ the caller also supplies the divisors of pᵢ - 1 in ascending
// order. The order modulo pᵢ is the first of those divisors d with a^d ≡ 1 (mod pᵢ);
// it is then lifted to pᵢ^eᵢ, and the per-component orders are combined with an lcm.
//
// Nothing is factored here. By default the inputs are trusted; pass ModeStrict to
// have them checked first.
package order
