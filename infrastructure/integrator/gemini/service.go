package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vfg2006/adtracker-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/adtracker-api/internal/config"
	"github.com/vfg2006/adtracker-api/internal/domain"
)

type GeminiIntegrator interface {
	AnalyzePerformance(ctx context.Context, metrics *domain.DashboardMetrics, recentAds []*domain.AdEntry, recentExtras []*domain.ExtraExpense) (string, error)
}

type GeminiService struct {
	cfg    *config.Config
	Client geminiclient.Client
}

func New(cfg *config.Config, client geminiclient.Client) GeminiIntegrator {
	return &GeminiService{
		cfg:    cfg,
		Client: client,
	}
}

// AnalyzePerformance monta o prompt de analista financeiro com as métricas do
// período e uma amostra dos lançamentos recentes e delega ao Gemini.
func (s *GeminiService) AnalyzePerformance(ctx context.Context, metrics *domain.DashboardMetrics, recentAds []*domain.AdEntry, recentExtras []*domain.ExtraExpense) (string, error) {
	prompt, err := buildPrompt(metrics, recentAds, recentExtras)
	if err != nil {
		return "", err
	}

	analysis, err := s.Client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("erro ao chamar o Gemini: %w", err)
	}

	return analysis, nil
}

func buildPrompt(metrics *domain.DashboardMetrics, recentAds []*domain.AdEntry, recentExtras []*domain.ExtraExpense) (string, error) {
	if len(recentAds) > 5 {
		recentAds = recentAds[:5]
	}
	if len(recentExtras) > 3 {
		recentExtras = recentExtras[:3]
	}

	adsJSON, err := json.Marshal(recentAds)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar anúncios recentes: %w", err)
	}
	extrasJSON, err := json.Marshal(recentExtras)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar gastos recentes: %w", err)
	}

	var b strings.Builder
	b.WriteString("Atue como um analista financeiro sênior especializado em Marketing Digital e Tráfego Pago (Dropshipping/Infoprodutos).\n")
	b.WriteString("Analise os dados financeiros abaixo e forneça um resumo executivo em Português do Brasil.\n\n")
	b.WriteString("Métricas Gerais:\n")
	fmt.Fprintf(&b, "- Faturamento Total: R$ %.2f\n", metrics.TotalRevenue)
	fmt.Fprintf(&b, "- Gasto com Anúncios (Tráfego): R$ %.2f\n", metrics.TotalSpend)
	fmt.Fprintf(&b, "- Gastos Extras (Contingência, Domínios, etc): R$ %.2f\n", metrics.TotalExtras)
	fmt.Fprintf(&b, "- Lucro Líquido: R$ %.2f\n", metrics.NetProfit)
	fmt.Fprintf(&b, "- ROAS (Retorno sobre Ad Spend): %.2fx\n", metrics.ROAS)
	fmt.Fprintf(&b, "- ROI (Retorno sobre Investimento Total): %.2f%%\n\n", metrics.ROI)
	fmt.Fprintf(&b, "Contexto Recente (Amostra):\n%s\n\n", adsJSON)
	fmt.Fprintf(&b, "Gastos Extras Recentes:\n%s\n\n", extrasJSON)
	b.WriteString("Instruções:\n")
	b.WriteString("1. Use formatação Markdown.\n")
	b.WriteString("2. Seja direto e objetivo.\n")
	b.WriteString("3. Identifique se o ROAS está saudável (acima de 2.0 é bom, abaixo de 1.5 é alerta).\n")
	b.WriteString("4. Comente sobre o impacto dos gastos extras (BMs, Chargebacks) no lucro final.\n")
	b.WriteString("5. Dê uma dica tática baseada nos números.\n")
	b.WriteString("6. Use emojis para deixar a leitura agradável.\n")

	return b.String(), nil
}
