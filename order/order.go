// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package order

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/bnb-chain/multorder/common"
)

// Mode selects how much of the caller's input is checked before computing.
type Mode int

const (
	// ModeFast trusts the factorization and divisor sets as given.
	ModeFast Mode = iota
	// ModeStrict runs Validate first and refuses inputs that fail it.
	ModeStrict
)

var (
	ErrOrderNotFound  = errors.New("no valid order found in supplied divisor set")
	ErrLengthMismatch = errors.New("factors and divisor sets differ in length")

	one = big.NewInt(1)
	two = big.NewInt(2)
)

func (m Mode) String() string {
	switch m {
	case ModeFast:
		return "fast"
	case ModeStrict:
		return "strict"
	}
	return "unknown"
}

func modeOf(optionalMode []Mode) Mode {
	if 0 < len(optionalMode) {
		if 1 < len(optionalMode) {
			panic(errors.New("order: expected 0 or 1 item in `optionalMode`"))
		}
		return optionalMode[0]
	}
	return ModeFast
}

// Order returns the multiplicative order of a modulo factors.N(): the least o > 0
// with a^o ≡ 1 (mod n). divisors[i] must hold the divisors of factors[i].P - 1 in
// ascending order; the first one that annihilates a mod p is taken as the order mod p.
//
// The order of a unit mod a product of coprime moduli is the lcm of its orders mod
// each of them, so the result is lcm over i of the order mod factors[i].P^factors[i].E.
// Any failure on a component is returned as is and no partial result is produced.
// factors and divisors must have the same length in every mode; a shorter list is
// ErrLengthMismatch rather than being zipped down to the common prefix.
func Order(a *big.Int, factors Factors, divisors [][]*big.Int, optionalMode ...Mode) (*big.Int, error) {
	if len(factors) != len(divisors) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d factors, %d divisor sets", len(factors), len(divisors))
	}
	if modeOf(optionalMode) == ModeStrict {
		if err := Validate(a, factors, divisors); err != nil {
			return nil, err
		}
	}
	o := big.NewInt(1)
	for i, pp := range factors {
		oi, err := orderPrimePower(a, pp, divisors[i])
		if err != nil {
			return nil, err
		}
		common.Logger.Debugf("order of %s mod %s is %s", a, pp, oi)
		o = common.Lcm(o, oi)
	}
	return o, nil
}

// OrderOfPrimePower returns the multiplicative order of a modulo pp.P^pp.E, with
// divisors the ascending divisors of pp.P - 1.
func OrderOfPrimePower(a *big.Int, pp *PrimePower, divisors []*big.Int, optionalMode ...Mode) (*big.Int, error) {
	return Order(a, Factors{pp}, [][]*big.Int{divisors}, optionalMode...)
}

// orderPrime returns the first d in divisors with a^d ≡ 1 (mod p). It is the order
// of a mod p only if divisors is ascending and contains that order.
func orderPrime(a, p *big.Int, divisors []*big.Int) (*big.Int, error) {
	modP := common.ModInt(p)
	for _, d := range divisors {
		if modP.IsOne(modP.Exp(a, d)) {
			return new(big.Int).Set(d), nil
		}
	}
	return nil, errors.Wrapf(ErrOrderNotFound, "a = %s, p = %s", a, p)
}

// orderPrimePower lifts the order of a mod p to p^e. Going from p^(k-1) to p^k the
// order either stays the same or gains exactly one factor of p.
func orderPrimePower(a *big.Int, pp *PrimePower, divisors []*big.Int) (*big.Int, error) {
	o, err := orderPrime(a, pp.P, divisors)
	if err != nil {
		return nil, err
	}
	pk := new(big.Int).Set(pp.P)
	for k := 1; k < pp.E; k++ {
		pk.Mul(pk, pp.P)
		modPk := common.ModInt(pk)
		if !modPk.IsOne(modPk.Exp(a, o)) {
			o.Mul(o, pp.P)
		}
	}
	return o, nil
}
