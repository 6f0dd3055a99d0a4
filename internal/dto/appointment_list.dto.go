package dto

type AppointmentListDTO struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	StartsAt    int    `json:"starts_at"`
	EndsAt      int    `json:"ends_at"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
	DoctorID    uint   `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	PatientID   uint   `json:"patient_id"`
	PatientName string `json:"patient_name"`
	ServiceID   uint   `json:"service_id"`
	ServiceName string `json:"service_name"`
}
