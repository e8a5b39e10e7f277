package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gautham-here/hackathon-centre/database"
	"github.com/gautham-here/hackathon-centre/dto"
	"github.com/gautham-here/hackathon-centre/mappers"
	"github.com/gautham-here/hackathon-centre/middlewares"
	"github.com/gautham-here/hackathon-centre/models"
	"github.com/gautham-here/hackathon-centre/services"
	"github.com/gautham-here/hackathon-centre/utils"
)

func querySpecFromRequest(c *gin.Context) services.QuerySpec {
	return services.QuerySpec{
		Q:            strings.TrimSpace(c.Query("q")),
		Mode:         c.Query("mode"),
		Intercollege: c.Query("intercollege"),
		Domains:      c.QueryArray("domain"),
		Eligibility:  strings.TrimSpace(c.Query("eligibility")),
		RegStatus:    c.Query("reg_status"),
		From:         c.Query("from"),
		To:           c.Query("to"),
		Sort:         c.Query("sort"),
	}
}

func listByStatus(status models.EventStatus) ([]models.Event, error) {
	var events []models.Event
	err := database.DB.
		Where("status = ?", status).
		Order("created_at DESC, id DESC").
		Find(&events).Error
	return events, err
}

// Home lists approved events through the filter/sort engine.
func Home(c *gin.Context) {
	spec := querySpecFromRequest(c)

	events, err := listByStatus(models.StatusApproved)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load events")
		return
	}
	filtered := services.FilterEvents(events, spec, time.Now().UTC())

	sess := middlewares.CurrentSession(c)
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Events":  mappers.MapEventsToResp(filtered),
		"Query":   spec,
		"Domains": models.AllDomains,
		"Flashes": sess.ConsumeFlashes(),
		"Admin":   sess.Admin,
	})
}

// APIEvents is the JSON twin of Home. The same filter params apply;
// page/limit are optional and everything is returned when absent.
func APIEvents(c *gin.Context) {
	spec := querySpecFromRequest(c)

	events, err := listByStatus(models.StatusApproved)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load events")
		return
	}
	filtered := services.FilterEvents(events, spec, time.Now().UTC())

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, _ := strconv.Atoi(limitStr)
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if limit > 0 {
			if page < 1 {
				page = 1
			}
			offset := (page - 1) * limit
			if offset > len(filtered) {
				offset = len(filtered)
			}
			end := offset + limit
			if end > len(filtered) {
				end = len(filtered)
			}
			filtered = filtered[offset:end]
		}
	}

	c.JSON(http.StatusOK, mappers.MapEventsToResp(filtered))
}

// APIDomains returns the domain reference list for the submission form.
func APIDomains(c *gin.Context) {
	c.JSON(http.StatusOK, models.AllDomains)
}

func SubmitForm(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	blank := dto.EventForm{}
	blank.Normalize()
	c.HTML(http.StatusOK, "submit.html", gin.H{
		"Form":    blank,
		"Domains": models.AllDomains,
		"Flashes": sess.ConsumeFlashes(),
	})
}

// Submit accepts a public submission into the moderation queue.
func Submit(c *gin.Context) {
	var form dto.EventForm
	_ = c.ShouldBind(&form) // all fields are strings; decoding is total
	form.Normalize()

	sess := middlewares.CurrentSession(c)
	if form.Title == "" {
		sess.Flash("Please give your event a title.", "danger")
		c.Redirect(http.StatusFound, "/submit")
		return
	}

	ev := mappers.MapFormToEvent(form)
	ev.Status = models.StatusPending
	ev.SubmittedBy = models.SubmittedByUser
	if err := database.DB.Create(&ev).Error; err != nil {
		c.String(http.StatusInternalServerError, "failed to save submission")
		return
	}

	sess.Flash("Thanks! Your event was submitted for review.", "success")
	c.Redirect(http.StatusFound, "/")
}

// Vote increments an event's upvotes once per browsing session. The
// dedup set lives in the session, so a returning browser session may
// vote again; global uniqueness is explicitly not promised.
func Vote(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid event id")
		return
	}
	eventID := uint(id64)

	sess := middlewares.CurrentSession(c)
	if sess.HasVoted(eventID) {
		utils.Fail(c, http.StatusBadRequest, "Already voted")
		return
	}

	var upvotes int
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var ev models.Event
		if err := tx.First(&ev, eventID).Error; err != nil {
			return err
		}
		// Expression update keeps the increment race-free; the
		// transaction makes read-then-write one atomic unit.
		if err := tx.Model(&ev).
			UpdateColumn("upvotes", gorm.Expr("upvotes + ?", 1)).Error; err != nil {
			return err
		}
		upvotes = ev.Upvotes + 1
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Fail(c, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Vote failed")
		return
	}

	sess.MarkVoted(eventID)
	utils.OK(c, gin.H{"upvotes": upvotes})
}
