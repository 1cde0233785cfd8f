package booking

import (
	"testing"
	"time"

	"motorent/models"
	"motorent/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvedCar() *models.Car {
	return &models.Car{
		ID:        "car-1",
		Brand:     "Toyota",
		Model:     "Corolla",
		Year:      2023,
		Price:     1500,
		Seating:   5,
		Location:  "Mumbai",
		Status:    models.CarStatusApproved,
		Available: true,
		CreatedAt: time.Now(),
	}
}

func validIntent() models.BookingIntent {
	return models.BookingIntent{
		CarID:          "car-1",
		StartDate:      date(2025, 1, 10),
		EndDate:        date(2025, 1, 12),
		PickupLocation: "Mumbai",
		ReturnLocation: "Pune",
	}
}

func proof() models.PaymentProof {
	return models.PaymentProof{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"}
}

func newService(cars *memCarRepo) (*DefaultBookingService, *memBookingRepo) {
	repo := &memBookingRepo{}
	return &DefaultBookingService{Repo: repo, CarRepo: cars}, repo
}

func TestCreateFromPaymentRecordsBookingAndFlipsAvailability(t *testing.T) {
	cars := newMemCarRepo(approvedCar())
	svc, repo := newService(cars)

	created, err := svc.CreateFromPayment(proof(), validIntent(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, "car-1", created.CarID)
	assert.Equal(t, models.PaymentStatusPaid, created.PaymentStatus)
	assert.Equal(t, "pay_1", created.TransactionID)
	// 2 rental days at 1500/day, computed from the car's rate.
	assert.Equal(t, 3000.0, created.TotalAmount)

	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	car, err := cars.GetByID("car-1")
	require.NoError(t, err)
	assert.False(t, car.Available, "a paid booking must take the car off the market")
}

func TestCreateFromPaymentRejectsBadDateRange(t *testing.T) {
	cars := newMemCarRepo(approvedCar())
	svc, repo := newService(cars)

	intent := validIntent()
	intent.EndDate = intent.StartDate

	_, err := svc.CreateFromPayment(proof(), intent, "user-1")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, "validationError"))

	all, _ := repo.GetAll()
	assert.Empty(t, all, "nothing may be written on validation failure")
}

func TestCreateFromPaymentRejectsUnknownCar(t *testing.T) {
	svc, _ := newService(newMemCarRepo())

	_, err := svc.CreateFromPayment(proof(), validIntent(), "user-1")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, "notFound"))
}

func TestCreateFromPaymentRejectsUnapprovedCar(t *testing.T) {
	car := approvedCar()
	car.Status = models.CarStatusPending
	svc, _ := newService(newMemCarRepo(car))

	_, err := svc.CreateFromPayment(proof(), validIntent(), "user-1")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, "validationError"))
}

func TestCreateFromPaymentRejectsOverlappingBooking(t *testing.T) {
	cars := newMemCarRepo(approvedCar())
	svc, repo := newService(cars)

	_, err := svc.CreateFromPayment(proof(), validIntent(), "user-1")
	require.NoError(t, err)

	// Second renter wants a range intersecting the first reservation.
	second := validIntent()
	second.StartDate = date(2025, 1, 11)
	second.EndDate = date(2025, 1, 14)

	_, err = svc.CreateFromPayment(models.PaymentProof{OrderID: "order_2", PaymentID: "pay_2", Signature: "sig"}, second, "user-2")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, "conflict"))

	all, _ := repo.GetAll()
	assert.Len(t, all, 1, "the overlapping booking must not be recorded")
}

func TestCreateFromPaymentAllowsDisjointRanges(t *testing.T) {
	cars := newMemCarRepo(approvedCar())
	svc, _ := newService(cars)

	_, err := svc.CreateFromPayment(proof(), validIntent(), "user-1")
	require.NoError(t, err)

	// A later, non-overlapping range on the same car is fine even while the
	// car shows unavailable: availability means "any active booking exists",
	// not an inventory count.
	later := validIntent()
	later.StartDate = date(2025, 1, 12)
	later.EndDate = date(2025, 1, 15)

	_, err = svc.CreateFromPayment(models.PaymentProof{OrderID: "order_2", PaymentID: "pay_2", Signature: "sig"}, later, "user-2")
	assert.NoError(t, err)
}

func TestCreateFromPaymentSurfacesAvailabilityFlipFailure(t *testing.T) {
	cars := newMemCarRepo(approvedCar())
	cars.failUpdates = true
	svc, repo := newService(cars)

	created, err := svc.CreateFromPayment(proof(), validIntent(), "user-1")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, "dependencyError"))

	// The booking stands; only the flag write failed. The reconciler is
	// the backstop for the resulting drift.
	require.NotNil(t, created)
	all, _ := repo.GetAll()
	assert.Len(t, all, 1)
}

func TestGetBookingsByUserJoinsCarDetails(t *testing.T) {
	cars := newMemCarRepo(approvedCar())
	svc, _ := newService(cars)

	created, err := svc.CreateFromPayment(proof(), validIntent(), "user-1")
	require.NoError(t, err)

	list, err := svc.GetBookingsByUser("user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	require.NotNil(t, list[0].Car)
	assert.Equal(t, "Toyota", list[0].Car.Brand)
}

func TestGetBookingsByUserToleratesDeletedCar(t *testing.T) {
	cars := newMemCarRepo(approvedCar())
	svc, _ := newService(cars)

	_, err := svc.CreateFromPayment(proof(), validIntent(), "user-1")
	require.NoError(t, err)

	require.NoError(t, cars.Delete("car-1"))

	list, err := svc.GetBookingsByUser("user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Car, "orphaned bookings keep a nil car join")
}

func TestGetBookingByIDNotFound(t *testing.T) {
	svc, _ := newService(newMemCarRepo())

	_, err := svc.GetBookingByID("missing")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, "notFound"))
}

func TestQuoteUsesCarRate(t *testing.T) {
	svc, _ := newService(newMemCarRepo(approvedCar()))

	amount, err := svc.Quote("car-1", validIntent())
	require.NoError(t, err)
	assert.Equal(t, 3000.0, amount)
}
