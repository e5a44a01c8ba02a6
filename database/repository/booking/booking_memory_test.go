package bookingRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peacelock/models"
)

func sampleRequest() models.BookingRequest {
	return models.BookingRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Phone:       "2015551234",
		ServiceType: "repair",
		Address:     "1 Main St",
		City:        "Newark",
		ZipCode:     "07102",
		Description: "Door stuck",
	}
}

func TestMemoryBookingRepo_CreateAndGet(t *testing.T) {
	repo := NewMemoryBookingRepo()

	created, err := repo.Create(sampleRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestMemoryBookingRepo_UniqueIDs(t *testing.T) {
	repo := NewMemoryBookingRepo()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		b, err := repo.Create(sampleRequest())
		require.NoError(t, err)
		assert.False(t, seen[b.ID], "identifier %s issued twice", b.ID)
		seen[b.ID] = true
	}
}

func TestMemoryBookingRepo_GetByID_NotFound(t *testing.T) {
	repo := NewMemoryBookingRepo()

	_, err := repo.GetByID("nope")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemoryBookingRepo_GetAll_InsertionOrderAndIdempotent(t *testing.T) {
	repo := NewMemoryBookingRepo()

	first, err := repo.Create(sampleRequest())
	require.NoError(t, err)
	second, err := repo.Create(sampleRequest())
	require.NoError(t, err)

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	again, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, all, again)
}

func TestMemoryBookingRepo_DropsRecaptchaToken(t *testing.T) {
	repo := NewMemoryBookingRepo()

	req := sampleRequest()
	req.RecaptchaToken = "tok-123"
	created, err := repo.Create(req)
	require.NoError(t, err)
	assert.Empty(t, created.RecaptchaToken)
}
