package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gautham-here/hackathon-centre/config"
	"github.com/gautham-here/hackathon-centre/database"
	"github.com/gautham-here/hackathon-centre/dto"
	"github.com/gautham-here/hackathon-centre/mappers"
	"github.com/gautham-here/hackathon-centre/middlewares"
	"github.com/gautham-here/hackathon-centre/models"
)

func LoginForm(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Next":    c.Query("next"),
		"Flashes": sess.ConsumeFlashes(),
	})
}

// Login checks the single admin credential. bcrypt's comparison is
// constant-time, and the username check reuses the same failure notice
// so the response does not reveal which part was wrong.
func Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	sess := middlewares.CurrentSession(c)
	if username != config.C.AdminUsername ||
		bcrypt.CompareHashAndPassword([]byte(config.C.AdminPasswordHash), []byte(password)) != nil {
		sess.Flash("Invalid credentials.", "danger")
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Next":    c.Query("next"),
			"Flashes": sess.ConsumeFlashes(),
		})
		return
	}

	sess.SetAdmin(username)
	sess.Flash("Welcome, admin.", "success")
	c.Redirect(http.StatusFound, safeNext(c.Query("next")))
}

// safeNext keeps the post-login redirect on this site.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/admin/add"
}

func Logout(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	sess.Clear()
	sess.Flash("Logged out.", "info")
	c.Redirect(http.StatusFound, "/")
}

func AdminAddForm(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	blank := dto.EventForm{}
	blank.Normalize()
	c.HTML(http.StatusOK, "admin_add.html", gin.H{
		"Form":    blank,
		"Domains": models.AllDomains,
		"Flashes": sess.ConsumeFlashes(),
	})
}

// AdminAdd creates an event directly in the approved state.
func AdminAdd(c *gin.Context) {
	var form dto.EventForm
	_ = c.ShouldBind(&form)
	form.Normalize()

	sess := middlewares.CurrentSession(c)
	if form.Title == "" {
		sess.Flash("Title is required.", "danger")
		c.Redirect(http.StatusFound, "/admin/add")
		return
	}

	ev := mappers.MapFormToEvent(form)
	ev.Status = models.StatusApproved
	ev.SubmittedBy = models.SubmittedByAdmin
	if err := database.DB.Create(&ev).Error; err != nil {
		c.String(http.StatusInternalServerError, "failed to save event")
		return
	}

	sess.Flash("Event added.", "success")
	c.Redirect(http.StatusFound, "/")
}

func AdminEditForm(c *gin.Context) {
	ev, ok := eventByParam(c)
	if !ok {
		return
	}
	sess := middlewares.CurrentSession(c)
	c.HTML(http.StatusOK, "admin_edit.html", gin.H{
		"Event":   mappers.MapEventToResp(ev),
		"Form":    mappers.MapEventToForm(ev),
		"Domains": models.AllDomains,
		"Flashes": sess.ConsumeFlashes(),
	})
}

// AdminEdit overwrites every form-backed field of an existing event.
// Status, upvotes and provenance are not part of the form and survive
// the overwrite.
func AdminEdit(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var form dto.EventForm
	_ = c.ShouldBind(&form)
	form.Normalize()

	sess := middlewares.CurrentSession(c)
	if form.Title == "" {
		sess.Flash("Title is required.", "danger")
		c.Redirect(http.StatusFound, "/admin/edit/"+strconv.FormatUint(uint64(id), 10))
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var ev models.Event
		if err := tx.First(&ev, id).Error; err != nil {
			return err
		}
		mappers.ApplyFormToEvent(form, &ev)
		return tx.Save(&ev).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.String(http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to update event")
		return
	}

	sess.Flash("Event updated.", "success")
	c.Redirect(http.StatusFound, "/admin/review")
}

// Review lists the pending moderation queue, newest first.
func Review(c *gin.Context) {
	pending, err := listByStatus(models.StatusPending)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load pending events")
		return
	}
	sess := middlewares.CurrentSession(c)
	c.HTML(http.StatusOK, "review.html", gin.H{
		"Pendings": mappers.MapEventsToResp(pending),
		"Flashes":  sess.ConsumeFlashes(),
	})
}

// Approve transitions pending -> approved. Approving an already
// approved event is a no-op, not an error.
func Approve(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var ev models.Event
		if err := tx.First(&ev, id).Error; err != nil {
			return err
		}
		if ev.Status == models.StatusApproved {
			return nil
		}
		return tx.Model(&ev).Update("status", models.StatusApproved).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.String(http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to approve event")
		return
	}

	sess := middlewares.CurrentSession(c)
	sess.Flash("Event approved.", "success")
	c.Redirect(http.StatusFound, "/admin/review")
}

// Reject permanently deletes the event; rejection is terminal, not a
// stored state.
func Reject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var ev models.Event
		if err := tx.First(&ev, id).Error; err != nil {
			return err
		}
		return tx.Delete(&ev).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.String(http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to reject event")
		return
	}

	sess := middlewares.CurrentSession(c)
	sess.Flash("Event rejected & removed.", "warning")
	c.Redirect(http.StatusFound, "/admin/review")
}

func idParam(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid event id")
		return 0, false
	}
	return uint(id64), true
}

func eventByParam(c *gin.Context) (models.Event, bool) {
	id, ok := idParam(c)
	if !ok {
		return models.Event{}, false
	}
	var ev models.Event
	if err := database.DB.First(&ev, id).Error; err != nil {
		c.String(http.StatusNotFound, "Event not found")
		return models.Event{}, false
	}
	return ev, true
}
