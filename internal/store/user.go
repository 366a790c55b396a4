package store

import (
	"strings"

	"github.com/singhalaadi/taskly-capstone-project/internal/apperr"
	"github.com/singhalaadi/taskly-capstone-project/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

// loginFailedMsg is deliberately identical for "no such user" and "wrong
// password" so the response never leaks which one happened.
const loginFailedMsg = "Invalid email or password"

// UserStore is the CRUD surface over user records, including credential
// verification.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Avatar   string
}

// Register validates input, hashes the password and persists the new user.
func (s *UserStore) Register(in RegisterInput) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, apperr.BadRequest("Username, email, and password are required")
	}
	if len(in.Password) < 6 {
		return nil, apperr.BadRequest("Password must be at least 6 characters long")
	}

	var count int64
	if err := s.db.Model(&models.User{}).
		Where("email = ? OR username = ?", in.Email, in.Username).
		Count(&count).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	if count > 0 {
		return nil, apperr.Conflict("Email or Username is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := models.User{
		ID:       uuid.New().String(),
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
		Avatar:   in.Avatar,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// two racing registrations can both pass the pre-check
		if isUniqueViolation(err) {
			return nil, apperr.Conflict("Email or Username is already registered")
		}
		return nil, apperr.Internal(err)
	}

	return &user, nil
}

// Authenticate verifies the credentials and returns the matching user.
// Seeded demo accounts still store plain-text passwords; the "$2" bcrypt
// marker decides which comparison runs.
func (s *UserStore) Authenticate(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperr.BadRequest("Email and password are required")
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.Unauthorized(loginFailedMsg)
		}
		return nil, apperr.Internal(err)
	}

	if strings.HasPrefix(user.Password, "$2") {
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			return nil, apperr.Unauthorized(loginFailedMsg)
		}
	} else if password != user.Password {
		return nil, apperr.Unauthorized(loginFailedMsg)
	}

	return &user, nil
}

// GetByID returns a single user.
func (s *UserStore) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}
	return &user, nil
}

// All returns every user. Callers strip passwords before responding.
func (s *UserStore) All() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return users, nil
}

// UpdateInput carries the updatable profile fields. Nil pointers mean
// "leave unchanged"; an empty password also means "no change".
type UpdateInput struct {
	Username *string
	Email    *string
	Password *string
	Avatar   *string
}

// Update applies a partial profile update. A supplied non-empty password is
// rehashed before storage.
func (s *UserStore) Update(id string, in UpdateInput) error {
	updates := map[string]interface{}{}
	if in.Username != nil {
		updates["username"] = strings.TrimSpace(*in.Username)
	}
	if in.Email != nil {
		updates["email"] = strings.TrimSpace(*in.Email)
	}
	if in.Avatar != nil {
		updates["avatar"] = *in.Avatar
	}
	if in.Password != nil && strings.TrimSpace(*in.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return apperr.Internal(err)
		}
		updates["password"] = string(hash)
	}

	if len(updates) == 0 {
		return apperr.BadRequest("No data provided for update")
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return apperr.NotFound("User not found")
		}
		return apperr.Internal(err)
	}

	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("Email or Username is already registered")
		}
		return apperr.Internal(err)
	}
	return nil
}

// Delete removes a user. Their tasks are deliberately left in place.
func (s *UserStore) Delete(id string) error {
	res := s.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("User not found")
	}
	return nil
}
