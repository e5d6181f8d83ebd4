// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package order

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/bnb-chain/multorder/common"
)

// primalityRounds is the number of Miller-Rabin rounds used by Validate.
const primalityRounds = 20

var ErrInvalidInput = errors.New("invalid order input")

// InvalidInputError lists every problem Validate found. It matches ErrInvalidInput
// under errors.Is.
type InvalidInputError struct {
	Multi *multierror.Error
}

func (e *InvalidInputError) Error() string {
	return e.Multi.Error()
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// Validate checks the inputs that Order trusts in ModeFast:
//   - every factor has a prime P and E >= 1, and no prime repeats;
//   - every divisor set is strictly ascending, divides P - 1 and ends with P - 1;
//   - a is a unit modulo the product of the factors.
func Validate(a *big.Int, factors Factors, divisors [][]*big.Int) error {
	var result *multierror.Error
	if len(factors) != len(divisors) {
		result = multierror.Append(result, errors.Wrapf(ErrLengthMismatch, "%d factors, %d divisor sets", len(factors), len(divisors)))
	}
	seen := make(map[string]struct{}, len(factors))
	for i, pp := range factors {
		if pp == nil || pp.P == nil {
			result = multierror.Append(result, fmt.Errorf("factor %d is nil", i))
			continue
		}
		if err := validatePrimePower(pp); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "factor %d", i))
			continue
		}
		key := pp.P.String()
		if _, ok := seen[key]; ok {
			result = multierror.Append(result, fmt.Errorf("factor %d: duplicate prime %s", i, key))
		}
		seen[key] = struct{}{}
		if i < len(divisors) {
			if err := validateDivisors(pp.P, divisors[i]); err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "divisor set %d", i))
			}
		}
	}
	if result == nil {
		if n := factors.N(); n.Cmp(one) != 0 && !common.IsCoprime(a, n) {
			result = multierror.Append(result, fmt.Errorf("gcd(%s, %s) != 1", a, n))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		common.Logger.Infof("rejected order input: %v", err)
		return &InvalidInputError{Multi: result}
	}
	return nil
}

func validatePrimePower(pp *PrimePower) error {
	if pp.E < 1 {
		return fmt.Errorf("exponent %d of %s is < 1", pp.E, pp.P)
	}
	if pp.P.Cmp(two) < 0 || !pp.P.ProbablyPrime(primalityRounds) {
		return fmt.Errorf("%s is not prime", pp.P)
	}
	return nil
}

func validateDivisors(p *big.Int, divisors []*big.Int) error {
	if len(divisors) == 0 {
		return errors.New("empty")
	}
	pm1 := new(big.Int).Sub(p, one)
	rem := new(big.Int)
	var prev *big.Int
	for j, d := range divisors {
		if d == nil || d.Sign() <= 0 {
			return fmt.Errorf("entry %d is not positive", j)
		}
		if prev != nil && prev.Cmp(d) >= 0 {
			return fmt.Errorf("entry %d (%s) does not exceed entry %d (%s)", j, d, j-1, prev)
		}
		if rem.Mod(pm1, d).Sign() != 0 {
			return fmt.Errorf("entry %d (%s) does not divide %s", j, d, pm1)
		}
		prev = d
	}
	if prev.Cmp(pm1) != 0 {
		return fmt.Errorf("does not contain %s", pm1)
	}
	return nil
}
