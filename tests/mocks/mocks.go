package mocks

import (
	"errors"

	"eventapi/models"
)

type MockUserRepo struct {
	Users map[string]models.User // keyed by username
}

func NewMockUserRepo() *MockUserRepo {
	return &MockUserRepo{Users: map[string]models.User{}}
}

func (m *MockUserRepo) GetByUsername(username string) (models.User, error) {
	u, ok := m.Users[username]
	if !ok {
		return models.User{}, models.ErrNotFound
	}
	return u, nil
}

func (m *MockUserRepo) SaveToken(userID int64, token string) error {
	for name, u := range m.Users {
		if u.ID == userID {
			u.JwtToken = token
			m.Users[name] = u
			return nil
		}
	}
	return nil // unknown user: no-op, like the SQL repo
}

func (m *MockUserRepo) Create(u *models.User) error {
	if _, ok := m.Users[u.Username]; ok {
		return errors.New("duplicate username")
	}
	u.ID = int64(len(m.Users) + 1)
	m.Users[u.Username] = *u
	return nil
}

type MockEventRepo struct {
	Items  map[int64]models.Event
	Regs   map[int64][]models.Registration
	nextID int64
}

func NewMockEventRepo() *MockEventRepo {
	return &MockEventRepo{
		Items: map[int64]models.Event{},
		Regs:  map[int64][]models.Registration{},
	}
}

func (m *MockEventRepo) GetAll() ([]models.Event, error) {
	out := make([]models.Event, 0, len(m.Items))
	for _, e := range m.Items {
		out = append(out, e)
	}
	return out, nil
}

func (m *MockEventRepo) GetByID(id int64) (models.Event, error) {
	e, ok := m.Items[id]
	if !ok {
		return models.Event{}, models.ErrNotFound
	}
	e.Registrations = m.Regs[id]
	return e, nil
}

func (m *MockEventRepo) Create(e *models.Event) error {
	m.nextID++
	e.ID = m.nextID
	m.Items[e.ID] = *e
	return nil
}

func (m *MockEventRepo) GetRegistrations(eventID int64) ([]models.Registration, error) {
	regs := m.Regs[eventID]
	if regs == nil {
		regs = []models.Registration{}
	}
	return regs, nil
}

func (m *MockEventRepo) Delete(id int64) (bool, error) {
	if _, ok := m.Items[id]; !ok {
		return false, nil
	}
	delete(m.Items, id)
	delete(m.Regs, id)
	return true, nil
}

// MockRegRepo writes into the event repo's registration map so both sides
// observe the same state, like the shared tables in the real store.
type MockRegRepo struct {
	Events *MockEventRepo
	nextID int64
}

func NewMockRegRepo(events *MockEventRepo) *MockRegRepo {
	return &MockRegRepo{Events: events}
}

func (m *MockRegRepo) Register(eventID int64, name, phone, email string) (models.Registration, error) {
	if _, ok := m.Events.Items[eventID]; !ok {
		return models.Registration{}, models.ErrNotFound
	}
	m.nextID++
	reg := models.Registration{
		ID:          m.nextID,
		Name:        name,
		PhoneNumber: phone,
		Email:       email,
		EventID:     eventID,
	}
	m.Events.Regs[eventID] = append(m.Events.Regs[eventID], reg)
	return reg, nil
}
