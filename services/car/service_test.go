package car

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"motorent/models"
	"motorent/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCarRepo is an in-memory CarRepository for tests.
type memCarRepo struct {
	cars map[string]*models.Car
}

func newMemCarRepo() *memCarRepo {
	return &memCarRepo{cars: make(map[string]*models.Car)}
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
	c, ok := m.cars[id]
	if !ok {
		return fmt.Errorf("car with id %s not found", id)
	}
	c.Available = false
	return nil
}

func (m *memCarRepo) MarkAvailableAt(id, location string) error {
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

func validSubmission() models.CarSubmission {
	return models.CarSubmission{
		Brand:        "Toyota",
		Model:        "Corolla",
		Year:         2023,
		Price:        1500,
		Category:     "Sedan",
		Transmission: "Automatic",
		FuelType:     "Petrol",
		Seating:      5,
		Location:     "Mumbai",
		ImageURL:     "https://img.example/corolla.jpg",
	}
}

func TestSubmitStartsPendingAndUnavailable(t *testing.T) {
	svc := &DefaultCarService{Repo: newMemCarRepo()}

	created, err := svc.Submit(validSubmission(), "owner-1")
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.CarStatusPending, created.Status)
	assert.False(t, created.Available)
	assert.Equal(t, "owner-1", created.OwnerID)
	assert.Equal(t, 1500.0, created.Price)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CarSubmission)
	}{
		{"missing brand", func(s *models.CarSubmission) { s.Brand = "" }},
		{"missing model", func(s *models.CarSubmission) { s.Model = "  " }},
		{"missing image", func(s *models.CarSubmission) { s.ImageURL = "" }},
		{"year too old", func(s *models.CarSubmission) { s.Year = 1899 }},
		{"year in the future", func(s *models.CarSubmission) { s.Year = time.Now().Year() + 2 }},
		{"zero price", func(s *models.CarSubmission) { s.Price = 0 }},
		{"negative price", func(s *models.CarSubmission) { s.Price = -10 }},
		{"zero seating", func(s *models.CarSubmission) { s.Seating = 0 }},
		{"too many seats", func(s *models.CarSubmission) { s.Seating = 21 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &DefaultCarService{Repo: newMemCarRepo()}
			sub := validSubmission()
			tt.mutate(&sub)

			_, err := svc.Submit(sub, "owner-1")
			require.Error(t, err)
			assert.True(t, utils.IsCode(err, "validationError"))
		})
	}
}

func TestSubmitAcceptsNextYearModel(t *testing.T) {
	svc := &DefaultCarService{Repo: newMemCarRepo()}
	sub := validSubmission()
	sub.Year = time.Now().Year() + 1

	_, err := svc.Submit(sub, "owner-1")
	assert.NoError(t, err)
}

func TestModerateApprove(t *testing.T) {
	svc := &DefaultCarService{Repo: newMemCarRepo()}
	created, err := svc.Submit(validSubmission(), "owner-1")
	require.NoError(t, err)

	updated, err := svc.Moderate(created.ID, DecisionApprove)
	require.NoError(t, err)
	assert.Equal(t, models.CarStatusApproved, updated.Status)
	assert.True(t, updated.Available)

	// It now shows up for renters.
	result, err := svc.SearchApproved("", 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Cars, 1)
	assert.Equal(t, created.ID, result.Cars[0].ID)
}

func TestModerateReject(t *testing.T) {
	svc := &DefaultCarService{Repo: newMemCarRepo()}
	created, err := svc.Submit(validSubmission(), "owner-1")
	require.NoError(t, err)

	updated, err := svc.Moderate(created.ID, DecisionReject)
	require.NoError(t, err)
	assert.Equal(t, models.CarStatusRejected, updated.Status)
	assert.False(t, updated.Available)

	result, err := svc.SearchApproved("", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, result.Cars)
}

func TestModerateUnknownCar(t *testing.T) {
	svc := &DefaultCarService{Repo: newMemCarRepo()}

	_, err := svc.Moderate("missing", DecisionApprove)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, "notFound"))
}

func TestPendingCarsAreNeverOffered(t *testing.T) {
	svc := &DefaultCarService{Repo: newMemCarRepo()}
	_, err := svc.Submit(validSubmission(), "owner-1")
	require.NoError(t, err)

	result, err := svc.SearchApproved("", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, result.Cars, "pending listings are invisible to renters")
}

func TestSearchApprovedPagination(t *testing.T) {
	repo := newMemCarRepo()
	svc := &DefaultCarService{Repo: repo}
	for i := 0; i < 5; i++ {
		created, err := svc.Submit(validSubmission(), "owner-1")
		require.NoError(t, err)
		_, err = svc.Moderate(created.ID, DecisionApprove)
		require.NoError(t, err)
	}

	result, err := svc.SearchApproved("", 1, 2)
	require.NoError(t, err)
	assert.Len(t, result.Cars, 2)
	assert.Equal(t, int64(5), result.Total)
	assert.Equal(t, int64(3), result.TotalPages)
}

func TestRemove(t *testing.T) {
	svc := &DefaultCarService{Repo: newMemCarRepo()}
	created, err := svc.Submit(validSubmission(), "owner-1")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(created.ID))

	_, err = svc.GetCarByID(created.ID)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, "notFound"))

	err = svc.Remove(created.ID)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, "notFound"))
}
