package mailroom

import (
	"fmt"

	"mailroom/internal/pkg/errs"
)

// PickupOption is how staff identify a resident at the pickup desk.
type PickupOption string

const (
	PickupByResidentID   PickupOption = "RESIDENT_ID"
	PickupByResidentName PickupOption = "RESIDENT_NAME"
)

func ParsePickupOption(s string) (PickupOption, error) {
	o := PickupOption(s)
	if err := o.Validate(); err != nil {
		return "", err
	}
	return o, nil
}

func (o PickupOption) Validate() error {
	switch o {
	case PickupByResidentID, PickupByResidentName:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("pickup option", fmt.Errorf("%q is not a pickup option", string(o)))
}

// Status is the operational state of a mailroom.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusDefunct Status = "DEFUNCT"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusDefunct:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("mailroom status", fmt.Errorf("%q is not a mailroom status", string(s)))
}
