package metrics

import (
	"gaming-directory/packages/directory/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gaming_directory_http_requests_total",
		Help: "The total number of HTTP requests handled, by method, route and status",
	}, []string{"method", "route", "status"})
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gaming_directory_http_request_duration_seconds",
		Help:    "Latency of HTTP requests by method and route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// Directory Metrics
	GamersTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gaming_directory_gamers_total",
		Help: "The number of registered gamers at the last stats refresh",
	})
	GamesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gaming_directory_games_total",
		Help: "The number of registered games at the last stats refresh",
	})
	SkillsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gaming_directory_skills_total",
		Help: "The number of gamer skills at the last stats refresh",
	})
	SkillsByLevel = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gaming_directory_skills_by_level",
		Help: "The number of gamer skills per level at the last stats refresh",
	}, []string{"level"})
	StatsRefreshErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gaming_directory_stats_refresh_errors_total",
		Help: "The total number of failed stats refreshes",
	})
)

// RecordStats publishes a stats snapshot on the directory gauges.
func RecordStats(stats *models.Stats) {
	GamersTotal.Set(float64(stats.TotalGamers))
	GamesTotal.Set(float64(stats.TotalGames))
	SkillsTotal.Set(float64(stats.TotalSkills))
	for _, level := range models.AllLevels() {
		SkillsByLevel.WithLabelValues(string(level)).Set(float64(stats.SkillsByLevel[level]))
	}
}
