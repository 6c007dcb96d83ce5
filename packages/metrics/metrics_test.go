package metrics

import (
	"testing"

	"gaming-directory/packages/directory/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordStats(t *testing.T) {
	RecordStats(&models.Stats{
		TotalGamers: 20,
		TotalGames:  4,
		TotalSkills: 40,
		SkillsByLevel: map[models.Level]int64{
			models.LevelNoob: 13,
			models.LevelPro:  14,
		},
	})

	assert.Equal(t, 20.0, testutil.ToFloat64(GamersTotal))
	assert.Equal(t, 4.0, testutil.ToFloat64(GamesTotal))
	assert.Equal(t, 40.0, testutil.ToFloat64(SkillsTotal))
	assert.Equal(t, 14.0, testutil.ToFloat64(SkillsByLevel.WithLabelValues("PRO")))
	assert.Equal(t, 0.0, testutil.ToFloat64(SkillsByLevel.WithLabelValues("INVINCIBLE")))
}
