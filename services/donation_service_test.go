package services

import (
	"testing"

	"github.com/Ramo-11/united-masjid-help/apperrors"
	"github.com/Ramo-11/united-masjid-help/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDonationMoney(t *testing.T) {
	setupTestDB(t)
	seedPantry(t, "almumineen", 500)

	d, err := RecordDonation("almumineen", 25.50, DonationTypeMoney, nil)
	require.NoError(t, err)
	assert.Equal(t, 25.50, d.Amount)

	rows, err := ListDonations("almumineen")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, DonationTypeMoney, rows[0].Type)
	assert.Empty(t, rows[0].Items)
}

func TestRecordDonationItemsRoundTrip(t *testing.T) {
	setupTestDB(t)
	seedPantry(t, "alfajr", 300)

	items := []models.DonationItem{
		{Name: "Rice", Value: 10},
		{Name: "Oil", Value: 15.50},
	}
	_, err := RecordDonation("alfajr", 25.50, DonationTypeItems, items)
	require.NoError(t, err)

	rows, err := ListDonations("alfajr")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 25.50, rows[0].Amount)
	assert.Equal(t, items, rows[0].Items)
}

func TestRecordDonationValidation(t *testing.T) {
	setupTestDB(t)
	seedPantry(t, "almumineen", 500)

	cases := []struct {
		name   string
		pantry string
		amount float64
		kind   string
		items  []models.DonationItem
		want   error
	}{
		{"zero amount", "almumineen", 0, DonationTypeMoney, nil, apperrors.ErrValidation},
		{"negative amount", "almumineen", -5, DonationTypeMoney, nil, apperrors.ErrValidation},
		{"unknown type", "almumineen", 10, "goods", nil, apperrors.ErrValidation},
		{"money with items", "almumineen", 10, DonationTypeMoney, []models.DonationItem{{Name: "Rice", Value: 10}}, apperrors.ErrValidation},
		{"items without items", "almumineen", 10, DonationTypeItems, nil, apperrors.ErrValidation},
		{"unnamed item", "almumineen", 10, DonationTypeItems, []models.DonationItem{{Value: 10}}, apperrors.ErrValidation},
		{"zero-value item", "almumineen", 10, DonationTypeItems, []models.DonationItem{{Name: "Rice"}}, apperrors.ErrValidation},
		{"amount mismatch", "almumineen", 30, DonationTypeItems, []models.DonationItem{{Name: "Rice", Value: 10}}, apperrors.ErrValidation},
		{"unknown pantry", "nowhere", 10, DonationTypeMoney, nil, apperrors.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RecordDonation(tc.pantry, tc.amount, tc.kind, tc.items)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	rows, err := ListDonations("all")
	require.NoError(t, err)
	assert.Empty(t, rows, "rejected donations must not reach the ledger")
}

func TestClearDonations(t *testing.T) {
	setupTestDB(t)
	seedPantry(t, "almumineen", 500)
	seedPantry(t, "alfajr", 300)

	_, err := RecordDonation("almumineen", 10, DonationTypeMoney, nil)
	require.NoError(t, err)
	_, err = RecordDonation("alfajr", 20, DonationTypeMoney, nil)
	require.NoError(t, err)

	require.NoError(t, ClearDonations("almumineen"))

	rows, err := ListDonations("all")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alfajr", rows[0].Pantry)

	require.NoError(t, ClearDonations("all"))
	rows, err = ListDonations("all")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
