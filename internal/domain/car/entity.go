package car

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxNameLength     = 255
	MaxImageRefLength = 2048
)

// ValidationError is a rule violation on car fields. The exported values are sentinels, so
// callers can use errors.Is as well as errors.As.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

func (e *ValidationError) ErrorName() string {
	return "ValidationError"
}

var (
	ErrEmptyName       = &ValidationError{Field: "name", Reason: "cannot be empty"}
	ErrNameTooLong     = &ValidationError{Field: "name", Reason: "is too long (max 255 characters)"}
	ErrNegativePrice   = &ValidationError{Field: "price", Reason: "cannot be negative"}
	ErrInvalidSize     = &ValidationError{Field: "size", Reason: "must be one of Small, Medium, Large, SUV"}
	ErrImageRefTooLong = &ValidationError{Field: "image", Reason: "is too long (max 2048 characters)"}
)

type Car struct {
	id                uuid.UUID
	name              string
	price             Price
	size              Size
	image             Image
	isCurrentlyRented bool
	createdAt         time.Time
	updatedAt         time.Time
}

type Attributes struct {
	Name  string
	Price int64
	Size  string
	Image string
}

// NewCar builds a car that is never rented at creation time.
func NewCar(attrs Attributes, now time.Time) (*Car, error) {
	c := &Car{
		id:        uuid.New(),
		createdAt: now,
	}
	if err := c.Replace(attrs, now); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCar(
	id uuid.UUID,
	name string,
	price int64,
	size Size,
	image string,
	isCurrentlyRented bool,
	createdAt, updatedAt time.Time,
) *Car {
	return &Car{
		id:                id,
		name:              name,
		price:             Price{amount: price},
		size:              size,
		image:             Image{ref: image},
		isCurrentlyRented: isCurrentlyRented,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// Replace overwrites every editable field and clears the rented flag.
// On error the car is left untouched.
func (c *Car) Replace(attrs Attributes, now time.Time) error {
	name, err := validateName(attrs.Name)
	if err != nil {
		return err
	}
	price, err := NewPrice(attrs.Price)
	if err != nil {
		return err
	}
	size, err := NewSize(attrs.Size)
	if err != nil {
		return err
	}
	image, err := NewImage(attrs.Image)
	if err != nil {
		return err
	}

	c.name = name
	c.price = price
	c.size = size
	c.image = image
	c.isCurrentlyRented = false
	c.updatedAt = now
	return nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

func (c *Car) ID() uuid.UUID           { return c.id }
func (c *Car) Name() string            { return c.name }
func (c *Car) Price() Price            { return c.price }
func (c *Car) Size() Size              { return c.size }
func (c *Car) Image() Image            { return c.image }
func (c *Car) IsCurrentlyRented() bool { return c.isCurrentlyRented }
func (c *Car) CreatedAt() time.Time    { return c.createdAt }
func (c *Car) UpdatedAt() time.Time    { return c.updatedAt }
