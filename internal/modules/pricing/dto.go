package pricing

type CreateRouteRequest struct {
	Pickup      string `json:"pickup" binding:"required"`
	Dropoff     string `json:"dropoff" binding:"required"`
	VehicleType string `json:"vehicle_type" binding:"required"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	Currency    string `json:"currency"`
}
