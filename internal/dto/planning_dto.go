package dto

// WeekInfoResponse describes one selectable production week, anchored to
// its Monday. Label example: "Semaine 35 (25 août - 31 août)".
type WeekInfoResponse struct {
	WeekNumber int    `json:"weekNumber"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Label      string `json:"label"`
}

// DeliveryDateQuery resolves a delivery day within a chosen week to a
// concrete calendar date.
type DeliveryDateQuery struct {
	WeekStart string `form:"week_start" validate:"required,datetime=2006-01-02"`
	Day       string `form:"day"        validate:"required,oneof=mercredi jeudi vendredi samedi"`
}

type DeliveryDateResponse struct {
	DeliveryDate string `json:"deliveryDate"`
	DeliveryDay  string `json:"deliveryDay"`
}
