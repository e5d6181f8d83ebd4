// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomPositiveRelativelyPrimeInt(t *testing.T) {
	n := big.NewInt(15)
	for i := 0; i < 50; i++ {
		v := GetRandomPositiveRelativelyPrimeInt(n)
		assert.NotNil(t, v)
		assert.True(t, IsNumberInMultiplicativeGroup(n, v), "%s is not a unit mod 15", v)
	}
	assert.Nil(t, GetRandomPositiveRelativelyPrimeInt(big.NewInt(1)))
	assert.Nil(t, GetRandomPositiveRelativelyPrimeInt(nil))
}

func TestMustGetRandomIntPanics(t *testing.T) {
	assert.Panics(t, func() { MustGetRandomInt(0) })
	assert.Panics(t, func() { MustGetRandomInt(mustGetRandomIntMaxBits + 1) })
}

func TestIsNumberInMultiplicativeGroup(t *testing.T) {
	n := big.NewInt(15)
	assert.True(t, IsNumberInMultiplicativeGroup(n, big.NewInt(1)))
	assert.True(t, IsNumberInMultiplicativeGroup(n, big.NewInt(14)))
	assert.False(t, IsNumberInMultiplicativeGroup(n, big.NewInt(0)))
	assert.False(t, IsNumberInMultiplicativeGroup(n, big.NewInt(15)))
	assert.False(t, IsNumberInMultiplicativeGroup(n, big.NewInt(10)))
}
