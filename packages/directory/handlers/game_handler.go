package handlers

import (
	"net/http"
	"strconv"

	"gaming-directory/packages/directory/models"
	"gaming-directory/packages/directory/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// GetAllGames lists every game
// @Summary Get all games
// @Description Retrieve a list of all registered games
// @Tags games
// @Produce json
// @Success 200 {array} models.Game
// @Failure 500 {object} ErrorResponse
// @Router /games [get]
func (h *GameHandler) GetAllGames(c *gin.Context) {
	games, err := h.gameService.ListGames(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

// GetGame retrieves a game by ID
// @Summary Get game by ID
// @Description Retrieve a specific game by its ID
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} models.Game
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid game ID"})
		return
	}

	game, err := h.gameService.GetGame(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// CreateGame registers a new game
// @Summary Create a new game
// @Description Register a new game title
// @Tags games
// @Accept json
// @Produce json
// @Param game body models.CreateGameRequest true "Game data"
// @Success 201 {object} models.Game
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req models.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	game, err := h.gameService.CreateGame(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}
