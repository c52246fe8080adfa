package validator

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/JensIssa/HotelBooking-Clean/pkg/logger"
	"github.com/JensIssa/HotelBooking-Clean/pkg/model"
)

func testValidator() *BookingValidator {
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Output:  io.Discard,
		Service: "test",
	})
	return NewBookingValidator(log)
}

func day(n int) time.Time {
	return model.Today().AddDate(0, 0, n)
}

func TestValidate_ValidBooking(t *testing.T) {
	v := testValidator()

	booking := &model.Booking{
		CustomerID: 1,
		StartDate:  day(1),
		EndDate:    day(3),
	}
	if err := v.Validate(booking); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_PastDatesAreStructurallyValid(t *testing.T) {
	// Historical bookings being edited keep past dates; the validator
	// only requires start before end.
	v := testValidator()

	booking := &model.Booking{
		CustomerID: 1,
		StartDate:  day(-10),
		EndDate:    day(-5),
	}
	if err := v.Validate(booking); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	v := testValidator()

	cases := []struct {
		name    string
		booking *model.Booking
		field   string
	}{
		{
			name: "missing customer",
			booking: &model.Booking{
				StartDate: day(1),
				EndDate:   day(3),
			},
			field: "CustomerID",
		},
		{
			name: "negative customer",
			booking: &model.Booking{
				CustomerID: -1,
				StartDate:  day(1),
				EndDate:    day(3),
			},
			field: "CustomerID",
		},
		{
			name: "missing dates",
			booking: &model.Booking{
				CustomerID: 1,
			},
			field: "StartDate",
		},
		{
			name: "end before start",
			booking: &model.Booking{
				CustomerID: 1,
				StartDate:  day(3),
				EndDate:    day(1),
			},
			field: "EndDate",
		},
		{
			name: "end equal to start",
			booking: &model.Booking{
				CustomerID: 1,
				StartDate:  day(1),
				EndDate:    day(1),
			},
			field: "EndDate",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.booking)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			var validationErrs ValidationErrors
			if !errors.As(err, &validationErrs) {
				t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
			}

			found := false
			for _, ve := range validationErrs {
				if ve.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an error on field %s, got %v", tc.field, validationErrs)
			}
		})
	}
}
