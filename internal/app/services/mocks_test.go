package services

import (
	"context"
	"time"

	"github.com/internhub/internhub/internal/app/models"
	"github.com/internhub/internhub/internal/pkg/apperrors"
)

// mockUserStore is an in-memory user repository for tests
type mockUserStore struct {
	users      map[string]*models.User
	nextID     int64
	createErr  error
	getAllErr  error
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[string]*models.User), nextID: 1}
}

func (m *mockUserStore) Create(_ context.Context, user *models.User) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	if _, taken := m.users[user.Email]; taken {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	m.users[user.Email] = user
	return user.ID, nil
}

func (m *mockUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserStore) GetAll(_ context.Context) ([]*models.User, error) {
	if m.getAllErr != nil {
		return nil, m.getAllErr
	}
	users := make([]*models.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	return users, nil
}

// mockTokenStore records refresh token lifecycle calls
type mockTokenStore struct {
	tokens    map[string]int64
	revoked   map[string]bool
	createErr error
}

func newMockTokenStore() *mockTokenStore {
	return &mockTokenStore{tokens: make(map[string]int64), revoked: make(map[string]bool)}
}

func (m *mockTokenStore) CreateToken(_ context.Context, token string, userID int64, _ time.Time) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.tokens[token] = userID
	return nil
}

func (m *mockTokenStore) GetTokenByValue(_ context.Context, token string) (int64, time.Time, error) {
	userID, ok := m.tokens[token]
	if !ok {
		return 0, time.Time{}, apperrors.ErrTokenNotFound
	}
	if m.revoked[token] {
		return 0, time.Time{}, apperrors.ErrTokenRevoked
	}
	return userID, time.Now().Add(time.Hour), nil
}

func (m *mockTokenStore) RevokeToken(_ context.Context, token string) error {
	if _, ok := m.tokens[token]; !ok {
		return apperrors.ErrTokenNotFound
	}
	m.revoked[token] = true
	return nil
}

func (m *mockTokenStore) RevokeAllUserTokens(_ context.Context, userID int64) error {
	for token, owner := range m.tokens {
		if owner == userID {
			m.revoked[token] = true
		}
	}
	return nil
}

// mockApplicationStore covers both the application and mentor service views
type mockApplicationStore struct {
	applications    []*models.Application
	studentRows     []*models.StudentApplication
	mentorRows      []*models.MentorStudent
	distinctCount   int64
	pendingCount    int64
	nextID          int64
	createErr       error
	existingPairs   map[[2]int64]bool
}

func newMockApplicationStore() *mockApplicationStore {
	return &mockApplicationStore{nextID: 1, existingPairs: make(map[[2]int64]bool)}
}

func (m *mockApplicationStore) Create(_ context.Context, application *models.Application) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	pair := [2]int64{application.StudentID, application.InternshipID}
	if m.existingPairs[pair] {
		return 0, apperrors.ErrDuplicateApplication
	}
	m.existingPairs[pair] = true
	application.ID = m.nextID
	m.nextID++
	m.applications = append(m.applications, application)
	return application.ID, nil
}

func (m *mockApplicationStore) ListByStudent(_ context.Context, _ int64) ([]*models.StudentApplication, error) {
	return m.studentRows, nil
}

func (m *mockApplicationStore) StudentsByMentor(_ context.Context, _ int64) ([]*models.MentorStudent, error) {
	return m.mentorRows, nil
}

func (m *mockApplicationStore) CountDistinctStudentsByMentor(_ context.Context, _ int64) (int64, error) {
	return m.distinctCount, nil
}

func (m *mockApplicationStore) CountPendingByMentor(_ context.Context, _ int64) (int64, error) {
	return m.pendingCount, nil
}

// mockInternshipStore backs internship listing, existence and counting
type mockInternshipStore struct {
	internships []*models.Internship
	existingIDs map[int64]bool
	mentorCount int64
	getAllCalls int
}

func newMockInternshipStore() *mockInternshipStore {
	return &mockInternshipStore{existingIDs: make(map[int64]bool)}
}

func (m *mockInternshipStore) GetAll(_ context.Context) ([]*models.Internship, error) {
	m.getAllCalls++
	return m.internships, nil
}

func (m *mockInternshipStore) Exists(_ context.Context, id int64) (bool, error) {
	return m.existingIDs[id], nil
}

func (m *mockInternshipStore) CountByMentor(_ context.Context, _ int64) (int64, error) {
	return m.mentorCount, nil
}
