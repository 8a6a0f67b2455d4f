package services

import (
	"errors"
	"fmt"

	"github.com/rohits-web03/usefulutilities/internal/mailer"
	"github.com/rohits-web03/usefulutilities/internal/models"
	"github.com/rohits-web03/usefulutilities/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const codeLength = 6

// AccountService owns the signup/confirm/login/recover lifecycle. It
// writes to the store and dispatches codes through the mailer; it keeps
// no state of its own between calls.
type AccountService struct {
	db   *gorm.DB
	mail mailer.Mailer
}

func NewAccountService(db *gorm.DB, mail mailer.Mailer) *AccountService {
	return &AccountService{db: db, mail: mail}
}

// Signup creates an unconfirmed account and mails a confirmation code to
// the address. The code is returned to the caller as well as mailed, and
// it is not persisted server-side; Confirm never sees it. If the mail
// dispatch fails the account row stays created and ErrDelivery is
// returned — there is no rollback and no retry.
func (s *AccountService) Signup(username, email, password string) (uint, string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, "", fmt.Errorf("hash password: %w", err)
	}

	code := utils.GenerateCode(codeLength)

	user := models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, "", ErrDuplicateEmail
		}
		return 0, "", err
	}

	err = s.mail.Send(email,
		"Confirm your UsefulUtilities account",
		fmt.Sprintf("Your confirmation code is: %s", code))
	if err != nil {
		return user.ID, code, fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	return user.ID, code, nil
}

// Confirm marks the account confirmed. It does not check any code, and
// an id that matches no row is still reported as success; both quirks
// match the behavior clients already depend on.
func (s *AccountService) Confirm(id uint) error {
	return s.db.Model(&models.User{}).
		Where("id = ?", id).
		Update("confirmed", true).Error
}

// Login verifies the password for a confirmed account. No session or
// token is issued; callers get the id and display name back and handle
// any session layer themselves.
func (s *AccountService) Login(email, password string) (uint, string, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return 0, "", ErrUserNotFound
	case err != nil:
		return 0, "", err
	}

	if !user.Confirmed {
		return 0, "", ErrNotConfirmed
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return 0, "", ErrInvalidPassword
	}

	return user.ID, user.Username, nil
}

// Recover mails a fresh recovery code to the address. The address is not
// checked against the accounts table and nothing is written to the
// store; the code only lives in the mail and the response.
func (s *AccountService) Recover(email string) (string, error) {
	code := utils.GenerateCode(codeLength)

	err := s.mail.Send(email,
		"Password Recovery - UsefulUtilities",
		fmt.Sprintf("Your password recovery code is: %s", code))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	return code, nil
}
