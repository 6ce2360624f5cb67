package model

type ServiceStatus string

const (
	ServiceAvailable   ServiceStatus = "Available"
	ServiceUnavailable ServiceStatus = "Unavailable"
)

type Service struct {
	ID           ServiceID     `json:"id"`
	Title        string        `json:"title"`
	Amount       float64       `json:"amount"`
	Image        string        `json:"image,omitempty"`
	Description  string        `json:"description,omitempty"`
	Instructions []string      `json:"instructions,omitempty"`
	Status       ServiceStatus `json:"status"`
}

type CreateServiceRequest struct {
	Title        string        `json:"title" validate:"required"`
	Amount       float64       `json:"amount" validate:"required,gt=0"`
	Image        string        `json:"image"`
	Description  string        `json:"description"`
	Instructions []string      `json:"instructions"`
	Status       ServiceStatus `json:"status" validate:"omitempty,oneof=Available Unavailable"`
}

func (r *CreateServiceRequest) Service() Service {
	return Service{
		Title:        r.Title,
		Amount:       r.Amount,
		Image:        r.Image,
		Description:  r.Description,
		Instructions: r.Instructions,
		Status:       r.Status,
	}
}

// ServicePatch is a partial update; nil fields are left untouched.
type ServicePatch struct {
	Title        *string        `json:"title" validate:"omitempty,min=1"`
	Amount       *float64       `json:"amount" validate:"omitempty,gt=0"`
	Image        *string        `json:"image"`
	Description  *string        `json:"description"`
	Instructions *[]string      `json:"instructions"`
	Status       *ServiceStatus `json:"status" validate:"omitempty,oneof=Available Unavailable"`
}

// Apply merges the patch into the service.
func (p *ServicePatch) Apply(s *Service) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Amount != nil {
		s.Amount = *p.Amount
	}
	if p.Image != nil {
		s.Image = *p.Image
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Instructions != nil {
		s.Instructions = *p.Instructions
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
}
