package validation_test

import (
	"errors"
	"testing"

	"winsbygroup.com/lunchly/internal/apperr"
	"winsbygroup.com/lunchly/internal/validation"
)

type booking struct {
	Name   string `db:"name" validate:"required"`
	Guests int    `db:"num_guests" validate:"min=1,max=20"`
}

func TestStruct(t *testing.T) {
	t.Run("valid struct passes", func(t *testing.T) {
		if err := validation.Struct(booking{Name: "Ann", Guests: 2}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("reports each failing field by db tag", func(t *testing.T) {
		err := validation.Struct(booking{Guests: 0})
		if err == nil {
			t.Fatal("expected error")
		}
		if !errors.Is(err, apperr.ErrBadRequest) {
			t.Fatalf("expected bad request, got %v", err)
		}

		var ae *apperr.Error
		if !errors.As(err, &ae) {
			t.Fatalf("expected *apperr.Error, got %T", err)
		}
		if len(ae.Fields) != 2 {
			t.Fatalf("expected 2 field errors, got %+v", ae.Fields)
		}

		got := map[string]string{}
		for _, f := range ae.Fields {
			got[f.Field] = f.Error
		}
		if got["name"] != "is required" {
			t.Errorf("name: got %q", got["name"])
		}
		if got["num_guests"] != "must be at least 1" {
			t.Errorf("num_guests: got %q", got["num_guests"])
		}
	})
}
