package booking

import (
	"fmt"
	"sort"
	"time"

	"motorent/models"
)

// memCarRepo is an in-memory CarRepository for tests.
type memCarRepo struct {
	cars map[string]*models.Car
	// failUpdates simulates a storage fault on availability writes.
	failUpdates bool
}

func newMemCarRepo(cars ...*models.Car) *memCarRepo {
	m := &memCarRepo{cars: make(map[string]*models.Car)}
	for _, c := range cars {
		cp := *c
		m.cars[c.ID] = &cp
	}
	return m
}

func (m *memCarRepo) Create(car *models.Car) error {
	cp := *car
	m.cars[car.ID] = &cp
	return nil
}

func (m *memCarRepo) GetByID(id string) (*models.Car, error) {
	c, ok := m.cars[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCarRepo) GetAll() ([]models.Car, error) {
	var out []models.Car
	for _, c := range m.cars {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memCarRepo) SearchApproved(search string, skip, limit int64) ([]models.Car, int64, error) {
	var matched []models.Car
	for _, c := range m.cars {
		if c.Status == models.CarStatusApproved {
			matched = append(matched, *c)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	if skip >= total {
		return nil, total, nil
	}
	end := skip + limit
	if end > total {
		end = total
	}
	return matched[skip:end], total, nil
}

func (m *memCarRepo) SetStatus(id, status string, available bool) (*models.Car, error) {
	c, ok := m.cars[id]
	if !ok {
		return nil, nil
	}
	c.Status = status
	c.Available = available
	cp := *c
	return &cp, nil
}

func (m *memCarRepo) MarkUnavailable(id string) error {
	if m.failUpdates {
		return fmt.Errorf("storage unavailable")
	}
	c, ok := m.cars[id]
	if !ok {
		return fmt.Errorf("car with id %s not found", id)
	}
	c.Available = false
	return nil
}

func (m *memCarRepo) MarkAvailableAt(id, location string) error {
	if m.failUpdates {
		return fmt.Errorf("storage unavailable")
	}
	c, ok := m.cars[id]
	if !ok {
		return fmt.Errorf("car with id %s not found", id)
	}
	c.Available = true
	c.Location = location
	return nil
}

func (m *memCarRepo) Delete(id string) error {
	if _, ok := m.cars[id]; !ok {
		return fmt.Errorf("car with id %s not found", id)
	}
	delete(m.cars, id)
	return nil
}

func (m *memCarRepo) CountAvailable() (int64, error) {
	var n int64
	for _, c := range m.cars {
		if c.Status == models.CarStatusApproved && c.Available {
			n++
		}
	}
	return n, nil
}

// memBookingRepo is an in-memory BookingRepository for tests.
type memBookingRepo struct {
	bookings []models.Booking
}

func (m *memBookingRepo) Create(b *models.Booking) error {
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memBookingRepo) GetByID(id string) (*models.Booking, error) {
	for _, b := range m.bookings {
		if b.ID == id {
			cp := b
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memBookingRepo) GetAll() ([]models.Booking, error) {
	out := make([]models.Booking, len(m.bookings))
	copy(out, m.bookings)
	return out, nil
}

func (m *memBookingRepo) CountOverlapping(carID string, start, end time.Time) (int64, error) {
	var n int64
	for _, b := range m.bookings {
		if b.CarID != carID || b.PaymentStatus != models.PaymentStatusPaid {
			continue
		}
		if b.StartDate.Before(end) && b.EndDate.After(start) {
			n++
		}
	}
	return n, nil
}

func (m *memBookingRepo) FindExpired(today time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.PaymentStatus == models.PaymentStatusPaid && b.EndDate.Before(today) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) CountActiveForCar(carID string, today time.Time) (int64, error) {
	var n int64
	for _, b := range m.bookings {
		if b.CarID == carID && b.PaymentStatus == models.PaymentStatusPaid && !b.EndDate.Before(today) {
			n++
		}
	}
	return n, nil
}

func (m *memBookingRepo) CountActive(now time.Time) (int64, error) {
	var n int64
	for _, b := range m.bookings {
		if b.PaymentStatus == models.PaymentStatusPaid && !b.EndDate.Before(now) {
			n++
		}
	}
	return n, nil
}

func (m *memBookingRepo) TotalRevenue() (float64, error) {
	var total float64
	for _, b := range m.bookings {
		total += b.TotalAmount
	}
	return total, nil
}
