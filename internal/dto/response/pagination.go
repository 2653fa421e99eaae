package response

// TotalPages is ceil(total / perPage), zero when perPage is not positive
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

type VehicleListResponse struct {
	Vehicles      []VehicleResponse `json:"vehicles"`
	TotalPages    int               `json:"totalPages"`
	CurrentPage   int               `json:"currentPage"`
	TotalVehicles int64             `json:"totalVehicles"`
}

func NewVehicleListResponse(vehicles []VehicleResponse, page, perPage int, total int64) *VehicleListResponse {
	if vehicles == nil {
		vehicles = []VehicleResponse{}
	}
	return &VehicleListResponse{
		Vehicles:      vehicles,
		TotalPages:    TotalPages(total, perPage),
		CurrentPage:   page,
		TotalVehicles: total,
	}
}
