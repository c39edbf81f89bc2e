package user

import (
	"time"

	"github.com/easyhr/backend/internal"
	"github.com/easyhr/backend/internal/auth"
)

type SignupDTO struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (dto SignupDTO) Validate() error {
	if dto.FirstName == "" {
		return internal.NewRequiredFieldError("First name")
	}
	if dto.LastName == "" {
		return internal.NewRequiredFieldError("Last name")
	}
	if dto.Email == "" {
		return internal.NewRequiredFieldError("Email")
	}
	if dto.Password == "" {
		return internal.NewRequiredFieldError("Password")
	}
	if dto.ConfirmPassword == "" {
		return internal.NewRequiredFieldError("Confirm password")
	}
	if dto.Password != dto.ConfirmPassword {
		return internal.NewValidationError("Passwords do not match.", internal.ErrCodePasswordMismatch)
	}
	return nil
}

type SigninDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (dto SigninDTO) Validate() error {
	if dto.Email == "" {
		return internal.NewRequiredFieldError("Email")
	}
	if dto.Password == "" {
		return internal.NewRequiredFieldError("Password")
	}
	return nil
}

// ProfileDTO carries the full editable profile. Every field is required;
// manager is required only when the role is EMPLOYEE.
type ProfileDTO struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Dob         string    `json:"dob"`
	Department  string    `json:"department"`
	Designation string    `json:"designation"`
	JoiningDate time.Time `json:"joiningDate"`
	HourlyRate  float64   `json:"hourlyRate"`
	Role        auth.Role `json:"role"`
	Manager     *int64    `json:"manager,omitempty"`
}

func (dto ProfileDTO) Validate() error {
	if dto.FirstName == "" {
		return internal.NewRequiredFieldError("firstName")
	}
	if dto.LastName == "" {
		return internal.NewRequiredFieldError("lastName")
	}
	if dto.Email == "" {
		return internal.NewRequiredFieldError("email")
	}
	if dto.Dob == "" {
		return internal.NewRequiredFieldError("dob")
	}
	if dto.Department == "" {
		return internal.NewRequiredFieldError("department")
	}
	if dto.Designation == "" {
		return internal.NewRequiredFieldError("designation")
	}
	if dto.JoiningDate.IsZero() {
		return internal.NewRequiredFieldError("joiningDate")
	}
	if dto.HourlyRate == 0 {
		return internal.NewRequiredFieldError("Hourly rate")
	}
	if dto.Role == "" {
		return internal.NewRequiredFieldError("Role")
	}
	if !dto.Role.Valid() {
		return internal.NewValidationError("Invalid role.", internal.ErrCodeValidationFailed)
	}
	if dto.Role == auth.RoleEmployee && dto.Manager == nil {
		return internal.NewValidationError("Manager is required.", internal.ErrCodeManagerRequired)
	}
	return nil
}

type AcceptInviteDTO struct {
	EmailToken string `json:"emailToken"`
}

type SignupResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type SigninResult struct {
	User      *User  `json:"user"`
	Token     string `json:"token"`
	Subdomain string `json:"subdomain"`
}

type AcceptInviteResult struct {
	Token string `json:"token"`
}
