package kernel

import (
	"strconv"

	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

const (
	// MinPackageNumber is the lowest number of a mailroom's pool.
	MinPackageNumber = 1
	// MaxPackageNumber is the highest number a pool may hold.
	MaxPackageNumber = 999
)

// ErrPackageNumberIsNotConstructed is returned when validating a zero-value PackageNumber.
var ErrPackageNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"package number must be created via NewPackageNumber")

// PackageNumber is the small reusable integer (1..999) that staff write on a
// physical package. A number is bound to at most one waiting package per
// mailroom at a time and returns to the pool once that package leaves WAITING.
//
// Example:
//
//	number, err := kernel.NewPackageNumber(47)
//	if err != nil {
//	    // out of range
//	}
//	fmt.Println(number) // 47
type PackageNumber struct {
	value int
	guard guard.ConstructorGuard
}

// NewPackageNumber validates that value lies in [MinPackageNumber, MaxPackageNumber].
func NewPackageNumber(value int) (PackageNumber, error) {
	if value < MinPackageNumber || value > MaxPackageNumber {
		return PackageNumber{}, errs.NewValueIsOutOfRangeError(
			"package number", value, MinPackageNumber, MaxPackageNumber)
	}
	return PackageNumber{value: value, guard: guard.NewConstructorGuard()}, nil
}

// MustNewPackageNumber is NewPackageNumber for values known to be in range.
// It panics otherwise.
func MustNewPackageNumber(value int) PackageNumber {
	n, err := NewPackageNumber(value)
	if err != nil {
		panic(err)
	}
	return n
}

// Validate returns ErrPackageNumberIsNotConstructed for the zero value.
func (n PackageNumber) Validate() error {
	return n.guard.Validate(ErrPackageNumberIsNotConstructed)
}

// Int returns the numeric value.
func (n PackageNumber) Int() int {
	return n.value
}

// IsEqual reports whether both numbers hold the same value.
func (n PackageNumber) IsEqual(other PackageNumber) bool {
	return n.value == other.value
}

func (n PackageNumber) String() string {
	return strconv.Itoa(n.value)
}
