package pure_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/on-the-ground/deleteless_go/pure"

	"github.com/stretchr/testify/assert"
)

func TestTableizeSingleOutput(t *testing.T) {
	count := 0

	double := pure.TableizeI1O1(func(i int) int {
		count++
		return i * 2
	}, 2)
	assert.Equal(t, 4, double(2))
	assert.Equal(t, 4, double(2)) // cached

	sum := pure.TableizeI2O1(func(a, b int) int {
		count++
		return a + b
	}, 2)
	assert.Equal(t, 5, sum(2, 3))
	assert.Equal(t, 5, sum(2, 3))
	assert.Equal(t, 6, sum(3, 3))

	product := pure.TableizeI3O1(func(a, b, c int) int {
		count++
		return a * b * c
	}, 2)
	assert.Equal(t, 24, product(2, 3, 4))
	assert.Equal(t, 24, product(2, 3, 4))

	concat := pure.TableizeI4O1(func(a string, b int, c bool, d float64) string {
		count++
		return fmt.Sprint(a, b, c, d)
	}, 2)
	assert.Equal(t, "x1 true 0.5", concat("x", 1, true, 0.5))
	assert.Equal(t, "x1 true 0.5", concat("x", 1, true, 0.5))

	assert.Equal(t, 5, count)
}

func TestTableizeDualOutput(t *testing.T) {
	count := 0

	ident := pure.TableizeI1O2(func(i int) (int, string) {
		count++
		return i, "val"
	}, 2)
	a, b := ident(10)
	assert.Equal(t, 10, a)
	assert.Equal(t, "val", b)
	a, b = ident(10)
	assert.Equal(t, 10, a)
	assert.Equal(t, "val", b)

	mul := pure.TableizeI2O2(func(a, b int) (int, string) {
		count++
		return a * b, "mul"
	}, 2)
	x, y := mul(3, 4)
	assert.Equal(t, 12, x)
	assert.Equal(t, "mul", y)
	_, _ = mul(3, 4)

	sum := pure.TableizeI3O2(func(a, b, c int) (int, string) {
		count++
		return a + b + c, "sum"
	}, 2)
	x, y = sum(1, 2, 3)
	assert.Equal(t, 6, x)
	assert.Equal(t, "sum", y)
	_, _ = sum(1, 2, 3)

	product := pure.TableizeI4O2(func(a, b, c, d int) (int, string) {
		count++
		return a * b * c * d, "product"
	}, 2)
	x, y = product(1, 2, 3, 4)
	assert.Equal(t, 24, x)
	assert.Equal(t, "product", y)
	_, _ = product(1, 2, 3, 4)

	assert.Equal(t, 4, count)
}

var errOdd = errors.New("odd")

func TestTableizeNilResultAndArgument(t *testing.T) {
	count := 0
	check := pure.TableizeI1O2(func(err error) (bool, error) {
		count++
		if err != nil {
			return false, err
		}
		return true, nil
	}, 4)

	ok, err := check(nil)
	assert.True(t, ok)
	assert.NoError(t, err)
	ok, err = check(nil)
	assert.True(t, ok)
	assert.NoError(t, err)

	ok, err = check(errOdd)
	assert.False(t, ok)
	assert.ErrorIs(t, err, errOdd)

	assert.Equal(t, 2, count)
}

func TestTableizeRecursive(t *testing.T) {
	calls := 0
	var fib func(int) int
	fib = pure.TableizeI1O1(func(n int) int {
		calls++
		if n <= 1 {
			return n
		}
		return fib(n-1) + fib(n-2)
	}, 64)

	assert.Equal(t, 6765, fib(20))
	assert.Equal(t, 21, calls)
}

type NonComparable struct {
	Field []int
}

func (n NonComparable) String() string {
	return fmt.Sprintf("NonComparable%v", n.Field)
}

func TestTableizeWithStringerFallback(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O1(func(n NonComparable) int {
		count++
		return len(n.Field)
	}, 2)

	assert.Equal(t, 3, fn(NonComparable{Field: []int{1, 2, 3}}))
	assert.Equal(t, 3, fn(NonComparable{Field: []int{1, 2, 3}}))
	assert.Equal(t, 1, count)
}

type TotallyInvalid struct {
	Field []int
}

func TestTableizeWithPanicIfNoComparableOrStringer(t *testing.T) {
	fn := pure.TableizeI1O1(func(t TotallyInvalid) int {
		return len(t.Field)
	}, 2)

	assert.Panics(t, func() {
		_ = fn(TotallyInvalid{Field: []int{1}})
	})
}
