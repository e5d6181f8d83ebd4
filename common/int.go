// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"math/big"
)

// modInt is a *big.Int that performs all of its arithmetic with modular reduction.
type modInt big.Int

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// ModInt wraps mod so that results of Exp are reduced modulo mod.
// The modulus is not copied.
func ModInt(mod *big.Int) *modInt {
	return (*modInt)(mod)
}

// Exp returns x^y mod m using square-and-multiply. x is reduced first, so negative
// bases are accepted.
func (mi *modInt) Exp(x, y *big.Int) *big.Int {
	xm := new(big.Int).Mod(x, mi.i())
	return xm.Exp(xm, y, mi.i())
}

// IsOne reports whether x ≡ 1 (mod m).
func (mi *modInt) IsOne(x *big.Int) bool {
	xm := new(big.Int).Mod(x, mi.i())
	return xm.Cmp(one) == 0
}

func (mi *modInt) i() *big.Int {
	return (*big.Int)(mi)
}

// Gcd returns gcd(|x|, |y|).
func Gcd(x, y *big.Int) *big.Int {
	xa, ya := new(big.Int).Abs(x), new(big.Int).Abs(y)
	return new(big.Int).GCD(nil, nil, xa, ya)
}

// Lcm returns lcm(|x|, |y|), with lcm(0, y) = 0.
func Lcm(x, y *big.Int) *big.Int {
	if x.Sign() == 0 || y.Sign() == 0 {
		return new(big.Int)
	}
	l := new(big.Int).Quo(x, Gcd(x, y))
	l.Mul(l, y)
	return l.Abs(l)
}

// LcmAll folds Lcm over xs. The lcm of no values is 1.
func LcmAll(xs ...*big.Int) *big.Int {
	l := big.NewInt(1)
	for _, x := range xs {
		l = Lcm(l, x)
	}
	return l
}

// IsCoprime returns true if gcd(a,b) = 1.
func IsCoprime(a, b *big.Int) bool {
	return Gcd(a, b).Cmp(one) == 0
}
