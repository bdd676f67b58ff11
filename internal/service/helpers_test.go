package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/store"
	"github.com/MKhiriev/go-social-api/models"
)

const testSignKey = "test-access-sign-key-0123456789"

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:              testSignKey,
		TokenIssuer:               "go-social-api-test",
		AccessTokenDuration:       time.Hour,
		ConfirmationTokenDuration: 15 * time.Minute,
		PasswordHashCost:          4,
		PublicURL:                 "http://localhost:8080/",
		Version:                   "test",
	}
}

// fakeMailQueue records queued mails.
type fakeMailQueue struct {
	mu    sync.Mutex
	mails []models.Mail
	err   error
}

func (f *fakeMailQueue) Enqueue(mail models.Mail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.mails = append(f.mails, mail)
	return nil
}

func (f *fakeMailQueue) queued() []models.Mail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Mail(nil), f.mails...)
}

// memoryUserRepository is a store.UserRepository that enforces email
// uniqueness atomically, like the database constraint does.
type memoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]models.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]models.User)}
}

func (m *memoryUserRepository) CreateUser(ctx context.Context, email, passwordHash string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[email]; ok {
		return models.User{}, store.ErrEmailAlreadyExists
	}
	m.nextID++
	user := models.User{ID: m.nextID, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	m.users[email] = user
	return user, nil
}

func (m *memoryUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[email]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func (m *memoryUserRepository) SetConfirmed(ctx context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[email]
	if !ok {
		return store.ErrNoUserWasFound
	}
	user.Confirmed = true
	m.users[email] = user
	return nil
}

func (m *memoryUserRepository) delete(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, email)
}

var storesForTest = store.Storages{UserRepository: newMemoryUserRepository()}
