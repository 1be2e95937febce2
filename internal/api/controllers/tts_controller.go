package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourline/internal/services"
	"tourline/pkg/utils"
)

type TTSController struct {
	ttsService services.TTSServiceInterface
}

func NewTTSController(ttsService services.TTSServiceInterface) *TTSController {
	return &TTSController{
		ttsService: ttsService,
	}
}

// Speak godoc
// @Summary Synthesize speech for an announcement
// @Description Streams audio straight through; nothing is stored server-side.
// @Tags TTS
// @Produce audio/mpeg
// @Param text query string true "Text to read aloud"
// @Param lang query string false "Language tag, defaults to zh-TW"
// @Router /tts [get]
func (t *TTSController) Speak(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		utils.RespondError(c, http.StatusBadRequest, "text is required")
		return
	}

	body, contentType, err := t.ttsService.Synthesize(c.Request.Context(), text, c.Query("lang"))
	if err != nil {
		utils.RespondError(c, http.StatusBadGateway, "Speech synthesis failed")
		return
	}
	defer body.Close()

	c.DataFromReader(http.StatusOK, -1, contentType, body, nil)
}
