package model

type DoctorStatus string

const (
	DoctorAvailable    DoctorStatus = "Available"
	DoctorNotAvailable DoctorStatus = "Not Available"
)

type Doctor struct {
	ID              DoctorID     `json:"id"`
	Name            string       `json:"name"`
	Specialty       string       `json:"specialty"`
	Location        string       `json:"location,omitempty"`
	Experience      string       `json:"experience,omitempty"`
	Qualifications  string       `json:"qualifications,omitempty"`
	ConsultationFee float64      `json:"consultation_fee"`
	Rating          string       `json:"rating,omitempty"`
	Patients        string       `json:"patients,omitempty"`
	SuccessRate     string       `json:"success_rate,omitempty"`
	Email           string       `json:"email,omitempty"`
	About           string       `json:"about,omitempty"`
	Status          DoctorStatus `json:"status"`
	Image           string       `json:"image,omitempty"`
}

type CreateDoctorRequest struct {
	Name            string       `json:"name" validate:"required"`
	Specialty       string       `json:"specialty" validate:"required"`
	Location        string       `json:"location"`
	Experience      string       `json:"experience"`
	Qualifications  string       `json:"qualifications"`
	ConsultationFee float64      `json:"consultation_fee" validate:"required,gt=0"`
	Rating          string       `json:"rating"`
	Patients        string       `json:"patients"`
	SuccessRate     string       `json:"success_rate"`
	Email           string       `json:"email" validate:"omitempty,email"`
	About           string       `json:"about"`
	Status          DoctorStatus `json:"status" validate:"omitempty,oneof='Available' 'Not Available'"`
	Image           string       `json:"image"`
}

// Doctor builds the record to append; the directory assigns the id.
func (r *CreateDoctorRequest) Doctor() Doctor {
	status := r.Status
	if status == "" {
		status = DoctorAvailable
	}
	return Doctor{
		Name:            r.Name,
		Specialty:       r.Specialty,
		Location:        r.Location,
		Experience:      r.Experience,
		Qualifications:  r.Qualifications,
		ConsultationFee: r.ConsultationFee,
		Rating:          r.Rating,
		Patients:        r.Patients,
		SuccessRate:     r.SuccessRate,
		Email:           r.Email,
		About:           r.About,
		Status:          status,
		Image:           r.Image,
	}
}
