package handlers

import (
	"net/http"
	"strconv"

	"gaming-directory/packages/directory/models"
	"gaming-directory/packages/directory/services"

	"github.com/gin-gonic/gin"
)

type GamerHandler struct {
	gamerService *services.GamerService
}

func NewGamerHandler(gamerService *services.GamerService) *GamerHandler {
	return &GamerHandler{
		gamerService: gamerService,
	}
}

// GetAllGamers lists every registered gamer
// @Summary Get all gamers
// @Description Retrieve a list of all registered gamers
// @Tags gamers
// @Produce json
// @Success 200 {array} models.Gamer
// @Failure 500 {object} ErrorResponse
// @Router /gamers [get]
func (h *GamerHandler) GetAllGamers(c *gin.Context) {
	gamers, err := h.gamerService.ListGamers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gamers)
}

// GetGamer retrieves a gamer by ID
// @Summary Get gamer by ID
// @Description Retrieve a specific gamer by their ID
// @Tags gamers
// @Produce json
// @Param id path int true "Gamer ID"
// @Success 200 {object} models.Gamer
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /gamers/{id} [get]
func (h *GamerHandler) GetGamer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid gamer ID"})
		return
	}

	gamer, err := h.gamerService.GetGamer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gamer)
}

// CreateGamer registers a new gamer
// @Summary Create a new gamer
// @Description Register a new gamer in the directory
// @Tags gamers
// @Accept json
// @Produce json
// @Param gamer body models.CreateGamerRequest true "Gamer data"
// @Success 201 {object} models.Gamer
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /gamers [post]
func (h *GamerHandler) CreateGamer(c *gin.Context) {
	var req models.CreateGamerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	gamer, err := h.gamerService.CreateGamer(c.Request.Context(), req.Username, req.Country)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gamer)
}
