package worklog

import "github.com/easyhr/backend/internal"

type CreateWorklogDTO struct {
	ServiceDate string  `json:"serviceDate"`
	Hours       float64 `json:"hours"`
	Notes       string  `json:"notes"`
}

func (dto CreateWorklogDTO) Validate() error {
	if dto.ServiceDate == "" {
		return internal.NewRequiredFieldError("Service date")
	}
	if dto.Hours == 0 {
		return internal.NewRequiredFieldError("Hours")
	}
	if dto.Notes == "" {
		return internal.NewRequiredFieldError("Notes")
	}
	return nil
}

type UpdateWorklogDTO struct {
	ID int64 `json:"id"`
	CreateWorklogDTO
}

func (dto UpdateWorklogDTO) Validate() error {
	if dto.ID == 0 {
		return internal.NewRequiredFieldError("ID")
	}
	return dto.CreateWorklogDTO.Validate()
}

type DeleteWorklogDTO struct {
	ID int64 `json:"id"`
}

func (dto DeleteWorklogDTO) Validate() error {
	if dto.ID == 0 {
		return internal.NewRequiredFieldError("ID")
	}
	return nil
}
