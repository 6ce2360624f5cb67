// Package seed carries the bundled datasets used to populate an empty
// deployment: a doctor roster shipped as JSON and an in-code service
// catalog.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/dmehra/clinicdesk/internal/model"
)

//go:embed doctors.json
var doctorsJSON []byte

// NextServiceID is the first id handed out after the static catalog below.
const NextServiceID model.ServiceID = 12

// Doctors returns the bundled doctor roster.
func Doctors() ([]model.Doctor, error) {
	var doc struct {
		Doctors []model.Doctor `json:"doctors"`
	}
	if err := json.Unmarshal(doctorsJSON, &doc); err != nil {
		return nil, fmt.Errorf("decode bundled doctors: %w", err)
	}
	return doc.Doctors, nil
}

// Services returns the static diagnostic service catalog.
func Services() []model.Service {
	return []model.Service{
		{ID: 1, Title: "Eye Check-Up", Amount: 250, Image: "/images/services/eye-checkup.png", Status: model.ServiceAvailable},
		{ID: 2, Title: "X-Ray Scan", Amount: 300, Image: "/images/services/x-ray.png", Status: model.ServiceAvailable},
		{ID: 3, Title: "Blood Pressure Check", Amount: 100, Image: "/images/services/blood-pressure.png", Status: model.ServiceAvailable},
		{ID: 4, Title: "Full Blood Count", Amount: 200, Image: "/images/services/blood-count.png", Status: model.ServiceAvailable},
		{ID: 5, Title: "Blood Sugar Test", Amount: 150, Image: "/images/services/blood-sugar.png", Status: model.ServiceAvailable},
		{ID: 6, Title: "MRI Scan", Amount: 550, Image: "/images/services/mri.png", Status: model.ServiceAvailable},
		{ID: 7, Title: "ECG / EKG", Amount: 650, Image: "/images/services/ecg.png", Status: model.ServiceAvailable},
		{ID: 8, Title: "Dental Checkup", Amount: 400, Image: "/images/services/dental.png", Status: model.ServiceAvailable},
		{ID: 9, Title: "Ultrasound", Amount: 200, Image: "/images/services/ultrasound.png", Status: model.ServiceAvailable},
		{ID: 10, Title: "Covid-19 Testing", Amount: 100, Image: "/images/services/covid.png", Status: model.ServiceAvailable},
		{ID: 11, Title: "Urinalysis", Amount: 250, Image: "/images/services/urinalysis.png", Status: model.ServiceAvailable},
	}
}
