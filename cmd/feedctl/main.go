// feedctl executa as operações do feed de opinião pela linha de comando.
package main

import (
	"fmt"
	"os"

	"github.com/prefeitura-rio/app-opinion-feed/internal/config"
	"github.com/prefeitura-rio/app-opinion-feed/internal/models"
	"github.com/prefeitura-rio/app-opinion-feed/internal/observability"
	"github.com/prefeitura-rio/app-opinion-feed/internal/opinion"
	"github.com/prefeitura-rio/app-opinion-feed/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputFormat string
	category     string
	limit        int
	sampleLimit  int

	cfg    *config.Config
	logger *zap.Logger
	svc    *opinion.Service
)

var rootCmd = &cobra.Command{
	Use:           "feedctl",
	Short:         "Consulta o feed de opinião com a mesma configuração da API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if outputFormat != formatJSON && outputFormat != formatYAML {
			return fmt.Errorf("formato de saída inválido %q (use json ou yaml)", outputFormat)
		}

		cfg = config.LoadConfig()
		var err error
		logger, err = observability.NewLogger(cfg)
		if err != nil {
			return err
		}
		svc, _ = opinion.NewFromConfig(cfg, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Lista as categorias do catálogo",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeOutput(cmd.OutOrStdout(), outputFormat, map[string]interface{}{
			"categories": svc.GetCategories(),
		})
	},
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Monta o feed (arquivo primeiro, demonstração como fallback)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n := clampLimit(limit, cfg.FeedDefaultLimit, cfg.FeedMaxLimit)
		items := svc.GetFeed(cmd.Context(), resolveCategory(category), n)
		return writeOutput(cmd.OutOrStdout(), outputFormat, map[string]interface{}{
			"items": items,
			"count": len(items),
		})
	},
}

var marketsCmd = &cobra.Command{
	Use:   "markets",
	Short: "Lista os cards de mercado com atividade recente",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n := clampLimit(sampleLimit, cfg.MarketsSampleLimit, max(cfg.FeedMaxLimit, cfg.MarketsSampleLimit))
		cards := svc.ListMarkets(cmd.Context(), resolveCategory(category), n)
		return writeOutput(cmd.OutOrStdout(), outputFormat, map[string]interface{}{
			"markets": cards,
			"count":   len(cards),
		})
	},
}

var topicCmd = &cobra.Command{
	Use:   "topic [topic_id]",
	Short: "Mostra um tópico e sua linha do tempo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := clampLimit(limit, cfg.FeedDefaultLimit, cfg.FeedMaxLimit)
		topic, items := svc.GetTopicFeed(cmd.Context(), args[0], n)

		var out interface{} = topic
		if topic.TopicID == "" {
			out = map[string]interface{}{}
		}
		return writeOutput(cmd.OutOrStdout(), outputFormat, map[string]interface{}{
			"topic": out,
			"items": items,
		})
	},
}

// clampLimit usa o default quando value não é positivo e limita ao máximo da API
func clampLimit(value, defaultValue, maxValue int) int {
	if value <= 0 {
		return defaultValue
	}
	if value > maxValue {
		return maxValue
	}
	return value
}

func resolveCategory(input string) string {
	if input == "" {
		return models.AllCategories
	}
	return utils.ResolveCategory(input, svc.GetCategories())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", formatJSON, "Formato de saída: json ou yaml")

	feedCmd.Flags().StringVarP(&category, "category", "c", "", "Categoria (default: All)")
	feedCmd.Flags().IntVarP(&limit, "limit", "n", 0, "Quantidade máxima de itens (default: OPINION_FEED_DEFAULT_LIMIT, máximo: OPINION_FEED_MAX_LIMIT)")

	marketsCmd.Flags().StringVarP(&category, "category", "c", "", "Categoria (default: All)")
	marketsCmd.Flags().IntVar(&sampleLimit, "sample-limit", 0, "Tamanho da amostra do feed (default: OPINION_MARKETS_SAMPLE_LIMIT)")

	topicCmd.Flags().IntVarP(&limit, "limit", "n", 0, "Quantidade máxima de itens (default: OPINION_FEED_DEFAULT_LIMIT, máximo: OPINION_FEED_MAX_LIMIT)")

	rootCmd.AddCommand(categoriesCmd, feedCmd, marketsCmd, topicCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Erro:", err)
		os.Exit(1)
	}
}
