package dto

// DashboardKPIResponse KPIs simples del tablero.
type DashboardKPIResponse struct {
	TotalProducts int            `json:"total_products"`
	Operations    map[string]int `json:"operations"` // estado -> cantidad
}
