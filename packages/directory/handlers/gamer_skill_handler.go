package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gaming-directory/packages/directory/models"
	"gaming-directory/packages/directory/services"

	"github.com/gin-gonic/gin"
)

type GamerSkillHandler struct {
	skillService *services.GamerSkillService
}

func NewGamerSkillHandler(skillService *services.GamerSkillService) *GamerSkillHandler {
	return &GamerSkillHandler{
		skillService: skillService,
	}
}

// LinkGamerToGame creates or updates a gamer's level for a game
// @Summary Link gamer to game
// @Description Create or update a gamer's skill level for a specific game
// @Tags gamer-skills
// @Accept json
// @Produce json
// @Param skill body models.LinkGamerSkillRequest true "Gamer, game and level (NOOB, PRO, INVINCIBLE)"
// @Success 201 {object} models.LinkGamerSkillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /gamer-skills [post]
func (h *GamerSkillHandler) LinkGamerToGame(c *gin.Context) {
	var req models.LinkGamerSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	skill, created, err := h.skillService.LinkGamerToGame(c.Request.Context(), req.Username, req.GameName, req.Level)
	if err != nil {
		respondError(c, err)
		return
	}

	action := "updated"
	if created {
		action = "created"
	}

	c.JSON(http.StatusCreated, models.LinkGamerSkillResponse{
		GamerSkillResponse: models.NewGamerSkillResponse(*skill),
		Message:            fmt.Sprintf("Gamer skill %s successfully", action),
	})
}

// GetAllGamerSkills lists every skill
// @Summary Get all gamer skills
// @Description Retrieve every gamer/game/level link
// @Tags gamer-skills
// @Produce json
// @Success 200 {array} models.GamerSkillResponse
// @Failure 500 {object} ErrorResponse
// @Router /gamer-skills [get]
func (h *GamerSkillHandler) GetAllGamerSkills(c *gin.Context) {
	skills, err := h.skillService.ListGamerSkills(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewGamerSkillResponses(skills))
}

// GetGamerSkill retrieves a skill by ID
// @Summary Get gamer skill by ID
// @Description Retrieve a specific gamer skill by its ID
// @Tags gamer-skills
// @Produce json
// @Param id path int true "Gamer skill ID"
// @Success 200 {object} models.GamerSkillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /gamer-skills/{id} [get]
func (h *GamerSkillHandler) GetGamerSkill(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid gamer skill ID"})
		return
	}

	skill, err := h.skillService.GetGamerSkill(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewGamerSkillResponse(*skill))
}

// GetGamersByLevelAndGame finds gamers at one level in one game
// @Summary Get gamers by level and game
// @Description Retrieve gamers at a specific level for a specific game (by game name)
// @Tags gamer-skills
// @Produce json
// @Param gameName query string true "Game name (e.g. 'Counter-Strike')"
// @Param level query string true "Skill level (NOOB, PRO, INVINCIBLE)"
// @Success 200 {array} models.GamerSkillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /gamer-skills/by-level [get]
func (h *GamerSkillHandler) GetGamersByLevelAndGame(c *gin.Context) {
	gameName := c.Query("gameName")
	level := c.Query("level")

	skills, err := h.skillService.GetGamersByLevelAndGame(c.Request.Context(), gameName, level)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(skills) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: fmt.Sprintf("No gamers found with %s level in %s", strings.ToUpper(strings.TrimSpace(level)), strings.TrimSpace(gameName)),
		})
		return
	}

	c.JSON(http.StatusOK, models.NewGamerSkillResponses(skills))
}

// SearchGamers searches skills by optional level, game and country
// @Summary Search gamers for matching
// @Description Search gamers by level, game name and country; omitted filters match everything
// @Tags gamer-skills
// @Produce json
// @Param level query string false "Skill level (NOOB, PRO, INVINCIBLE)"
// @Param gameName query string false "Game name"
// @Param country query string false "Country"
// @Success 200 {array} models.GamerSkillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /gamer-skills/search [get]
func (h *GamerSkillHandler) SearchGamers(c *gin.Context) {
	level := optionalQuery(c, "level")
	gameName := optionalQuery(c, "gameName")
	country := optionalQuery(c, "country")

	skills, err := h.skillService.SearchGamers(c.Request.Context(), level, gameName, country)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(skills) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: noMatchMessage(level, gameName, country)})
		return
	}

	c.JSON(http.StatusOK, models.NewGamerSkillResponses(skills))
}

func optionalQuery(c *gin.Context, key string) *string {
	value, ok := c.GetQuery(key)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

func noMatchMessage(level, gameName, country *string) string {
	var criteria []string
	if level != nil {
		criteria = append(criteria, "level="+strings.ToUpper(strings.TrimSpace(*level)))
	}
	if gameName != nil {
		criteria = append(criteria, "game="+strings.TrimSpace(*gameName))
	}
	if country != nil {
		criteria = append(criteria, "country="+strings.TrimSpace(*country))
	}

	if len(criteria) == 0 {
		return "No gamers found"
	}
	return "No gamers found matching criteria: " + strings.Join(criteria, " ")
}
