package routes

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/gautham-here/hackathon-centre/controllers"
	"github.com/gautham-here/hackathon-centre/middlewares"
	"github.com/gautham-here/hackathon-centre/sessions"
	"github.com/gautham-here/hackathon-centre/templates"
)

func SetupRouter(m *sessions.Manager) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.ParseFS(templates.FS, "*.html")))
	r.Use(middlewares.SessionMiddleware(m))

	// Public
	r.GET("/", controllers.Home)
	r.GET("/api/events", controllers.APIEvents)
	r.GET("/api/domains", controllers.APIDomains)
	r.GET("/submit", controllers.SubmitForm)
	r.POST("/submit", controllers.Submit)
	r.POST("/vote/:id", controllers.Vote)

	// Auth
	r.GET("/login", controllers.LoginForm)
	r.POST("/login", controllers.Login)
	r.GET("/logout", controllers.Logout)

	// Moderation and direct-add, admin only
	admin := r.Group("/admin")
	admin.Use(middlewares.AdminRequired())
	{
		admin.GET("/add", controllers.AdminAddForm)
		admin.POST("/add", controllers.AdminAdd)
		admin.GET("/edit/:id", controllers.AdminEditForm)
		admin.POST("/edit/:id", controllers.AdminEdit)
		admin.GET("/review", controllers.Review)
		admin.POST("/approve/:id", controllers.Approve)
		admin.POST("/reject/:id", controllers.Reject)
	}

	return r
}
