package domain

import "time"

// OfferScopeAll indica agregação sobre todas as ofertas. Qualquer outro
// valor restringe a visão aos anúncios de uma única oferta, excluindo
// gastos manuais e recorrentes (custos compartilhados não são atribuíveis
// a uma oferta).
const OfferScopeAll = "all"

// DashboardMetrics é o resultado derivado exibido no dashboard. Nunca é
// persistido diretamente; sempre recalculado a partir dos registros.
type DashboardMetrics struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalSpend   float64 `json:"total_spend"`
	TotalExtras  float64 `json:"total_extras"`
	NetProfit    float64 `json:"net_profit"`
	ROAS         float64 `json:"roas"`
	ROI          float64 `json:"roi"`
}

// SeriesPoint é o agregado de um dia de calendário, na ordem em que
// alimenta o gráfico.
type SeriesPoint struct {
	Date    string  `json:"date"` // formato 2006-01-02
	Revenue float64 `json:"revenue"`
	Spend   float64 `json:"spend"`
	Extras  float64 `json:"extras"`
	Profit  float64 `json:"profit"`
}

// DashboardReport combina as métricas do período selecionado com as do
// período imediatamente anterior de mesma duração, para comparação.
type DashboardReport struct {
	Period   Period            `json:"period"`
	Metrics  *DashboardMetrics `json:"metrics"`
	Previous *DashboardMetrics `json:"previous"`
}

// DashboardSnapshot é a fotografia diária das métricas gerais, gravada
// pelo agendador para consulta histórica barata.
type DashboardSnapshot struct {
	ID        int64             `json:"id"`
	Date      time.Time         `json:"date"`
	Metrics   *DashboardMetrics `json:"metrics"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
