package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rohits-web03/usefulutilities/internal/services"
	"github.com/rohits-web03/usefulutilities/internal/utils"
)

// AccountHandler exposes the account lifecycle over HTTP.
type AccountHandler struct {
	accounts *services.AccountService
}

func NewAccountHandler(accounts *services.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ConfirmRequest struct {
	UserID uint `json:"userId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RecoverRequest struct {
	Email string `json:"email"`
}

// Signup godoc
// @Summary Register a new account
// @Description Creates an unconfirmed account and emails a confirmation code. The code is also returned in the response.
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body SignupRequest true "Signup input"
// @Success 200 {object} map[string]any "success, code, userId"
// @Failure 400 {object} map[string]string "Duplicate email or invalid input"
// @Failure 500 {object} map[string]string "Mail delivery or store failure"
// @Router /api/signup [post]
func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input SignupRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Username == "" || input.Email == "" || input.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	userID, code, err := h.accounts.Signup(input.Username, input.Email, input.Password)
	switch {
	case err == nil:
		// created and notified
	case errors.Is(err, services.ErrDuplicateEmail):
		utils.JSONError(w, http.StatusBadRequest, "User already exists with this email")
		return
	case errors.Is(err, services.ErrDelivery):
		// The account row is already created at this point; only the
		// notification failed. Reported once, never retried.
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	default:
		utils.JSONError(w, http.StatusInternalServerError, "Database insert failed")
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"code":    code,
		"userId":  userID,
	})
}

// Confirm godoc
// @Summary Confirm an account
// @Description Marks the account confirmed so it can log in.
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body ConfirmRequest true "Account id"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]string
// @Router /api/confirm [post]
func (h *AccountHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var input ConfirmRequest

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := h.accounts.Confirm(input.UserID); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]any{"success": true})
}

// Login godoc
// @Summary Log in
// @Description Verifies the password for a confirmed account and returns its id and username.
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body LoginRequest true "Login input"
// @Success 200 {object} map[string]any "success, userId, username"
// @Failure 400 {object} map[string]string "Unknown user, unconfirmed account, or bad password"
// @Router /api/login [post]
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input LoginRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Email == "" || input.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	userID, username, err := h.accounts.Login(input.Email, input.Password)
	switch {
	case err == nil:
		// verified
	case errors.Is(err, services.ErrUserNotFound):
		utils.JSONError(w, http.StatusBadRequest, "User not found")
		return
	case errors.Is(err, services.ErrNotConfirmed):
		utils.JSONError(w, http.StatusBadRequest, "Account not confirmed")
		return
	case errors.Is(err, services.ErrInvalidPassword):
		utils.JSONError(w, http.StatusBadRequest, "Invalid password")
		return
	default:
		utils.JSONError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]any{
		"success":  true,
		"userId":   userID,
		"username": username,
	})
}

// Recover godoc
// @Summary Request a password recovery code
// @Description Emails a recovery code to the address and returns it in the response. The address is not checked against existing accounts.
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body RecoverRequest true "Account email"
// @Success 200 {object} map[string]any "success, code"
// @Failure 500 {object} map[string]string "Mail delivery failure"
// @Router /api/recover [post]
func (h *AccountHandler) Recover(w http.ResponseWriter, r *http.Request) {
	var input RecoverRequest

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	code, err := h.accounts.Recover(input.Email)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"code":    code,
	})
}
