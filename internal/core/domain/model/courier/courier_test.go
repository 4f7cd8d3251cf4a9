package courier_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCourier(t *testing.T) *courier.Courier {
	t.Helper()

	c, err := courier.NewCourier(kernel.NewUUID(), "van", "KX-4411-M")
	require.NoError(t, err)

	return c
}

func TestNewCourier(t *testing.T) {
	t.Run("valid_courier_starts_available", func(t *testing.T) {
		c := validCourier(t)

		assert.Equal(t, courier.StatusAvailable, c.Status())
		assert.Equal(t, "van", c.VehicleType())
		assert.Equal(t, "KX-4411-M", c.LicensePlate())
		require.NoError(t, c.Validate())
	})

	t.Run("empty_vehicle_type_is_rejected", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "", "KX-4411-M")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty_license_plate_is_rejected", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "bike", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_id_is_rejected", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.UUID{}, "bike", "B-1")
		require.Error(t, err)
	})
}

func TestRestoreCourier(t *testing.T) {
	t.Run("restores_persisted_status", func(t *testing.T) {
		c, err := courier.RestoreCourier(kernel.NewUUID(), "bike", "B-1", courier.StatusOnBreak)
		require.NoError(t, err)
		assert.Equal(t, courier.StatusOnBreak, c.Status())
	})

	t.Run("invalid_status_is_rejected", func(t *testing.T) {
		_, err := courier.RestoreCourier(kernel.NewUUID(), "bike", "B-1", courier.StatusUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCourier_Validate(t *testing.T) {
	t.Run("nil_and_zero_value_fail", func(t *testing.T) {
		var c *courier.Courier
		require.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)

		var zero courier.Courier
		require.ErrorIs(t, zero.Validate(), courier.ErrCourierIsNotConstructed)
	})
}

func TestCourier_MarkAssigned(t *testing.T) {
	t.Run("available_courier_takes_assignment", func(t *testing.T) {
		c := validCourier(t)

		require.NoError(t, c.MarkAssigned())
		assert.Equal(t, courier.StatusAssigned, c.Status())
	})

	t.Run("assigned_courier_cannot_take_second_assignment", func(t *testing.T) {
		c := validCourier(t)
		require.NoError(t, c.MarkAssigned())

		require.ErrorIs(t, c.MarkAssigned(), courier.ErrCourierNotAvailable)
		assert.Equal(t, courier.StatusAssigned, c.Status())
	})

	t.Run("courier_on_break_cannot_take_assignment", func(t *testing.T) {
		c := validCourier(t)
		require.NoError(t, c.ChangeStatus(courier.StatusOnBreak))

		require.ErrorIs(t, c.MarkAssigned(), courier.ErrCourierNotAvailable)
	})
}

func TestCourier_Release(t *testing.T) {
	t.Run("assigned_courier_becomes_available", func(t *testing.T) {
		c := validCourier(t)
		require.NoError(t, c.MarkAssigned())

		c.Release()
		assert.Equal(t, courier.StatusAvailable, c.Status())
	})

	t.Run("release_is_idempotent", func(t *testing.T) {
		c := validCourier(t)
		require.NoError(t, c.MarkAssigned())

		c.Release()
		c.Release()
		assert.Equal(t, courier.StatusAvailable, c.Status())
	})

	t.Run("courier_on_break_stays_on_break", func(t *testing.T) {
		c := validCourier(t)
		require.NoError(t, c.ChangeStatus(courier.StatusOnBreak))

		c.Release()
		assert.Equal(t, courier.StatusOnBreak, c.Status())
	})
}

func TestCourier_ChangeStatus(t *testing.T) {
	t.Run("available_to_on_break_and_back", func(t *testing.T) {
		c := validCourier(t)

		require.NoError(t, c.ChangeStatus(courier.StatusOnBreak))
		assert.Equal(t, courier.StatusOnBreak, c.Status())

		require.NoError(t, c.ChangeStatus(courier.StatusAvailable))
		assert.Equal(t, courier.StatusAvailable, c.Status())
	})

	t.Run("assigned_cannot_be_set_directly", func(t *testing.T) {
		c := validCourier(t)

		require.ErrorIs(t, c.ChangeStatus(courier.StatusAssigned), courier.ErrStatusNotSettable)
		assert.Equal(t, courier.StatusAvailable, c.Status())
	})

	t.Run("courier_on_delivery_cannot_change_status", func(t *testing.T) {
		c := validCourier(t)
		require.NoError(t, c.MarkAssigned())

		require.ErrorIs(t, c.ChangeStatus(courier.StatusOnBreak), courier.ErrCourierOnDelivery)
		require.ErrorIs(t, c.ChangeStatus(courier.StatusAvailable), courier.ErrCourierOnDelivery)
		assert.Equal(t, courier.StatusAssigned, c.Status())
	})

	t.Run("invalid_status_is_rejected", func(t *testing.T) {
		c := validCourier(t)
		require.ErrorIs(t, c.ChangeStatus(courier.StatusUnknown), errs.ErrValueIsInvalid)
	})
}

func TestCourierStatus_Strings(t *testing.T) {
	cases := map[courier.Status]string{
		courier.StatusUnknown:   "unknown",
		courier.StatusAvailable: "available",
		courier.StatusAssigned:  "assigned",
		courier.StatusOnBreak:   "on_break",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}

	t.Run("from_string_round_trip", func(t *testing.T) {
		for _, status := range []courier.Status{
			courier.StatusAvailable, courier.StatusAssigned, courier.StatusOnBreak,
		} {
			parsed, err := courier.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}

		_, err := courier.StatusFromString("sleeping")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
