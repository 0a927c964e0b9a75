package dashboard

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sahil8669/airaware/internal/aqi"
	"github.com/sahil8669/airaware/internal/chatbot"
)

const msgFeedbackSaved = "Feedback submitted successfully"

type predictionResult struct {
	AQI   float64
	Label string
}

type healthResult struct {
	AQI      int
	Category aqi.Category
}

type feedbackForm struct {
	Name    string `form:"name" binding:"required"`
	Message string `form:"message" binding:"required"`
}

func (h *handlers) predictionForm(c *gin.Context) {
	h.render(c, http.StatusOK, "prediction", nil)
}

// prediction estimates an AQI from the pm25 and pm10 fields. Missing or
// unparseable values count as zero.
func (h *handlers) prediction(c *gin.Context) {
	pm25 := lenientFloat(c.PostForm("pm25"))
	pm10 := lenientFloat(c.PostForm("pm10"))
	value := aqi.Estimate(pm25, pm10)

	h.render(c, http.StatusOK, "prediction", gin.H{
		"result": predictionResult{AQI: value, Label: aqi.Classify(value).Label},
	})
}

// lenientFloat parses s as a finite float, returning 0 for anything else.
func lenientFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (h *handlers) healthForm(c *gin.Context) {
	h.render(c, http.StatusOK, "health", nil)
}

// health classifies a submitted integer AQI. Unlike prediction, a missing or
// malformed value is rejected.
func (h *handlers) health(c *gin.Context) {
	raw, ok := c.GetPostForm("aqi")
	if !ok {
		h.render(c, http.StatusBadRequest, "health", gin.H{"error": "AQI is required."})
		return
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		h.render(c, http.StatusBadRequest, "health", gin.H{"error": "AQI must be a whole number."})
		return
	}

	h.render(c, http.StatusOK, "health", gin.H{
		"result": healthResult{AQI: value, Category: aqi.Classify(float64(value))},
	})
}

func (h *handlers) feedbackForm(c *gin.Context) {
	h.render(c, http.StatusOK, "feedback", nil)
}

func (h *handlers) feedback(c *gin.Context) {
	var form feedbackForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "feedback", gin.H{"error": "Name and message are required."})
		return
	}
	if err := InsertFeedback(h.db, form.Name, form.Message); err != nil {
		h.serverError(c, "insert feedback", err)
		return
	}
	h.render(c, http.StatusOK, "feedback", gin.H{"msg": msgFeedbackSaved})
}

func (h *handlers) chatbot(c *gin.Context) {
	h.render(c, http.StatusOK, "chatbot", gin.H{"chat": currentSession(c).Chat})
}

func (h *handlers) chatbotAsk(c *gin.Context) {
	sess := currentSession(c)
	question, ok := c.GetPostForm("question")
	if !ok {
		h.render(c, http.StatusBadRequest, "chatbot", gin.H{
			"chat":  sess.Chat,
			"error": "Question is required.",
		})
		return
	}

	sess.AppendExchange(question, chatbot.Reply(question), h.chatLimit)
	keepSession(c)
	h.render(c, http.StatusOK, "chatbot", gin.H{"chat": sess.Chat})
}
