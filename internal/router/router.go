package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/cache"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/handler"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/handler/courses"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/handler/enrollments"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/handler/sections"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/handler/tags"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/handler/users"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/middleware"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/service"
)

// Setup registers all routes and their middleware.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, revoked service.RevocationStore) {
	api := e.Group("/api")

	// Health check (login required)
	api.GET("/ping", handler.PingHandler(db, rdb), middleware.RequireAuth(revoked))

	// Accounts and sessions
	api.POST("/users/login", users.LoginHandler(db))
	api.POST("/users/logout", users.LogoutHandler(revoked), middleware.RequireAuth(revoked))
	api.GET("/users/info", users.UserInfoHandler(db), middleware.RequireAuth(revoked))
	api.POST("/users/teachers", users.RegisterTeacherHandler(db))
	api.POST("/users/students", users.RegisterStudentHandler(db))

	// Profiles
	apiTeachers := api.Group("/teachers", middleware.RequireTeacher(db, revoked))
	apiTeachers.GET("/info", users.GetTeacherInfoHandler(db))
	apiTeachers.PUT("/info", users.UpdateTeacherInfoHandler(db))

	apiStudents := api.Group("/students", middleware.RequireStudent(db, revoked))
	apiStudents.GET("/info", users.GetStudentInfoHandler(db))
	apiStudents.PUT("/info", users.UpdateStudentInfoHandler(db))

	// Courses and sections
	apiCourses := api.Group("/courses")
	apiCourses.POST("", courses.CreateCourseHandler(db), middleware.RequireTeacher(db, revoked))
	apiCourses.GET("", courses.ListCoursesHandler(db), middleware.RequireAuth(revoked))
	apiCourses.GET("/:course_id", courses.GetCourseHandler(db), middleware.RequireAuth(revoked))
	apiCourses.PUT("/:course_id", courses.UpdateCourseHandler(db), middleware.RequireTeacher(db, revoked))
	apiCourses.DELETE("/:course_id", courses.DeleteCourseHandler(db), middleware.RequireTeacher(db, revoked))

	api.POST("/sections", sections.CreateSectionHandler(db), middleware.RequireTeacher(db, revoked))
	api.PUT("/sections/:section_id", sections.UpdateSectionHandler(db), middleware.RequireTeacher(db, revoked))
	api.DELETE("/sections/:section_id", sections.DeleteSectionHandler(db), middleware.RequireTeacher(db, revoked))

	// Enrollments
	apiCourses.POST("/:course_id/subscription", enrollments.SubscribeHandler(db), middleware.RequireStudent(db, revoked))
	apiCourses.DELETE("/:course_id/subscription", enrollments.UnsubscribeHandler(db), middleware.RequireStudent(db, revoked))
	api.GET("/reports/students", enrollments.StudentsReportHandler(db), middleware.RequireTeacher(db, revoked))

	// Tags
	api.POST("/tags", tags.CreateTagHandler(db), middleware.RequireTeacher(db, revoked))
	api.DELETE("/tags/:tag_id", tags.DeleteTagHandler(db), middleware.RequireTeacher(db, revoked))
	apiCourses.GET("/:course_id/tags", tags.CourseTagsHandler(db), middleware.RequireAuth(revoked))
	apiCourses.POST("/:course_id/tags/:tag_id", tags.AttachTagHandler(db), middleware.RequireTeacher(db, revoked))
	apiCourses.DELETE("/:course_id/tags/:tag_id", tags.DetachTagHandler(db), middleware.RequireTeacher(db, revoked))
}
