package directory

import (
	"gaming-directory/packages/directory/cron"
	"gaming-directory/packages/directory/handlers"
	"gaming-directory/packages/directory/repositories"
	"gaming-directory/packages/directory/services"
	"gaming-directory/packages/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Repositories is the storage the module runs on.
type Repositories struct {
	Gamers      repositories.GamerRepository
	Games       repositories.GameRepository
	GamerSkills repositories.GamerSkillRepository
}

func NewGormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Gamers:      repositories.NewGormGamerRepository(db),
		Games:       repositories.NewGormGameRepository(db),
		GamerSkills: repositories.NewGormGamerSkillRepository(db),
	}
}

func NewMemoryRepositories(store *repositories.MemoryStore) Repositories {
	return Repositories{
		Gamers:      store.Gamers(),
		Games:       store.Games(),
		GamerSkills: store.GamerSkills(),
	}
}

type Module struct {
	GamerHandler      *handlers.GamerHandler
	GamerService      *services.GamerService
	GameHandler       *handlers.GameHandler
	GameService       *services.GameService
	GamerSkillHandler *handlers.GamerSkillHandler
	GamerSkillService *services.GamerSkillService
	StatsHandler      *handlers.StatsHandler
	StatsService      *services.StatsService
	Scheduler         *cron.Scheduler
	log               *logger.Logger
}

func NewModule(repos Repositories, log *logger.Logger) *Module {
	gamerService := services.NewGamerService(repos.Gamers)
	gamerHandler := handlers.NewGamerHandler(gamerService)

	gameService := services.NewGameService(repos.Games)
	gameHandler := handlers.NewGameHandler(gameService)

	gamerSkillService := services.NewGamerSkillService(repos.GamerSkills, gamerService, gameService)
	gamerSkillHandler := handlers.NewGamerSkillHandler(gamerSkillService)

	statsService := services.NewStatsService(repos.Gamers, repos.Games, repos.GamerSkills)
	statsHandler := handlers.NewStatsHandler(statsService)

	scheduler := cron.NewScheduler(statsService, log)

	return &Module{
		GamerHandler:      gamerHandler,
		GamerService:      gamerService,
		GameHandler:       gameHandler,
		GameService:       gameService,
		GamerSkillHandler: gamerSkillHandler,
		GamerSkillService: gamerSkillService,
		StatsHandler:      statsHandler,
		StatsService:      statsService,
		Scheduler:         scheduler,
		log:               log,
	}
}

func (m *Module) SetupRoutes(r gin.IRouter) {
	gamers := r.Group("/gamers")
	{
		gamers.GET("", m.GamerHandler.GetAllGamers)
		gamers.GET("/:id", m.GamerHandler.GetGamer)
		gamers.POST("", m.GamerHandler.CreateGamer)
	}

	games := r.Group("/games")
	{
		games.GET("", m.GameHandler.GetAllGames)
		games.GET("/:id", m.GameHandler.GetGame)
		games.POST("", m.GameHandler.CreateGame)
	}

	gamerSkills := r.Group("/gamer-skills")
	{
		gamerSkills.GET("", m.GamerSkillHandler.GetAllGamerSkills)
		gamerSkills.POST("", m.GamerSkillHandler.LinkGamerToGame)
		gamerSkills.GET("/by-level", m.GamerSkillHandler.GetGamersByLevelAndGame)
		gamerSkills.GET("/search", m.GamerSkillHandler.SearchGamers)
		gamerSkills.GET("/:id", m.GamerSkillHandler.GetGamerSkill)
	}

	r.GET("/stats", m.StatsHandler.GetStats)
}

// StartScheduler starts the periodic stats refresh
func (m *Module) StartScheduler(spec string) error {
	m.log.Info("starting directory scheduler")
	return m.Scheduler.Start(spec)
}

func (m *Module) StopScheduler() {
	m.log.Info("stopping directory scheduler")
	m.Scheduler.Stop()
}
