package reporting

import (
	"time"

	"github.com/vfg2006/adtracker-api/internal/domain"
)

// ReportQuery parametriza uma consulta de dashboard. Today é injetável
// para testes; o valor zero significa o relógio de parede.
type ReportQuery struct {
	Range      domain.DateRangeType
	OfferScope string
	Custom     *domain.CustomBounds
	Today      time.Time
}

// Reporter expõe os agregados consumidos pela camada de apresentação
type Reporter interface {
	// GetDashboard resolve o período e calcula as métricas do período
	// atual e do imediatamente anterior de mesma duração
	GetDashboard(query ReportQuery) (*domain.DashboardReport, error)

	// GetDailySeries produz a sequência diária que alimenta o gráfico
	GetDailySeries(query ReportQuery) ([]*domain.SeriesPoint, error)

	// GetOfferStats calcula a economia consolidada de cada oferta
	GetOfferStats() ([]*domain.OfferStats, error)

	// AnalyzePerformance entrega métricas e amostras recentes ao analista
	// de IA e devolve o texto livre sem interpretá-lo
	AnalyzePerformance(query ReportQuery) (string, error)
}
