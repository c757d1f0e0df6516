package car

import "strings"

type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
	SizeSUV    Size = "SUV"
)

var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge, SizeSUV}

func (s Size) String() string {
	return string(s)
}

func (s Size) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeSUV:
		return true
	default:
		return false
	}
}

func NewSize(s string) (Size, error) {
	size := Size(strings.TrimSpace(s))
	if !size.IsValid() {
		return "", ErrInvalidSize
	}
	return size, nil
}

// Price is a daily rental price in minor currency units.
type Price struct {
	amount int64
}

func NewPrice(amount int64) (Price, error) {
	if amount < 0 {
		return Price{}, ErrNegativePrice
	}
	return Price{amount: amount}, nil
}

func (p Price) Amount() int64 {
	return p.amount
}

type Image struct {
	ref string
}

func NewImage(ref string) (Image, error) {
	ref = strings.TrimSpace(ref)
	if len(ref) > MaxImageRefLength {
		return Image{}, ErrImageRefTooLong
	}
	return Image{ref: ref}, nil
}

func (i Image) String() string {
	return i.ref
}
