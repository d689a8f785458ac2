package dto

// Métricas do painel inicial
type DashboardStats struct {
	TodayAppointments int64   `json:"today_appointments"`
	ActiveClients     int64   `json:"active_clients"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	OccupancyRate     int     `json:"occupancy_rate"`
}

// Totais de contas a receber por status de parcela
type ReceivablesSummary struct {
	PendingAmount float64 `json:"pending_amount"`
	PendingCount  int64   `json:"pending_count"`
	OverdueAmount float64 `json:"overdue_amount"`
	OverdueCount  int64   `json:"overdue_count"`
	PaidAmount    float64 `json:"paid_amount"`
	PaidCount     int64   `json:"paid_count"`
}
