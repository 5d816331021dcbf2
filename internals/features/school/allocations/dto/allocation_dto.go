package dto

type GrantSlotRequest struct {
	StudentID   string `json:"student_id" validate:"required,uuid"`
	FeeOverride *int   `json:"fee_override" validate:"omitempty,gte=0"`
}

type CreateBusRequest struct {
	BusNumber  string  `json:"bus_number" validate:"required,max=20"`
	BusRoute   string  `json:"bus_route" validate:"required,max=200"`
	BusDriver  *string `json:"bus_driver" validate:"omitempty,max=120"`
	MaxSeats   int     `json:"max_seats" validate:"required,gt=0"`
	FeeIDR     int     `json:"fee_idr" validate:"gte=0"`
	PaymentDue *string `json:"payment_due"` // YYYY-MM-DD
}

type CreateHostelRoomRequest struct {
	HostelName string  `json:"hostel_name" validate:"required,max=120"`
	RoomNumber string  `json:"room_number" validate:"required,max=20"`
	Floor      *int    `json:"floor" validate:"omitempty,gte=0"`
	MaxBeds    int     `json:"max_beds" validate:"required,gt=0"`
	FeeIDR     int     `json:"fee_idr" validate:"gte=0"`
	PaymentDue *string `json:"payment_due"`
}

type CreateHostelMessRequest struct {
	MessName   string  `json:"mess_name" validate:"required,max=120"`
	MealPlan   *string `json:"meal_plan" validate:"omitempty,max=120"`
	MaxSlots   int     `json:"max_slots" validate:"required,gt=0"`
	FeeIDR     int     `json:"fee_idr" validate:"gte=0"`
	PaymentDue *string `json:"payment_due"`
}

type CreateExtracurricularRequest struct {
	Name       string  `json:"name" validate:"required,max=120"`
	Schedule   *string `json:"schedule" validate:"omitempty,max=200"`
	Coach      *string `json:"coach" validate:"omitempty,max=120"`
	MaxSlots   int     `json:"max_slots" validate:"required,gt=0"`
	FeeIDR     int     `json:"fee_idr" validate:"gte=0"`
	PaymentDue *string `json:"payment_due"`
}

// GrantSlotResponse menggabungkan resource hasil grant dan Payment ikutannya.
// Payment nil berarti partial failure (grant sukses, tagihan gagal tercatat).
type GrantSlotResponse struct {
	Resource any `json:"resource"`
	Payment  any `json:"payment,omitempty"`
}
