package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizmakerhq/quizmaker/internal/dto"
	"github.com/quizmakerhq/quizmaker/internal/middleware"
)

// CreateCourseHandler godoc
// @Summary Create a course
// @Description Instructors only. The course gets a unique slug derived from its name.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body dto.CourseCreateRequest true "Course data"
// @Success 201 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /courses [post]
func (ctrl *Controller) CreateCourseHandler(c *gin.Context) {
	var req dto.CourseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.courseSvc.Create(middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListCoursesHandler godoc
// @Summary List all courses
// @Description Approved instructors only.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /courses [get]
func (ctrl *Controller) ListCoursesHandler(c *gin.Context) {
	resp, err := ctrl.courseSvc.List(middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListOwnedCoursesHandler godoc
// @Summary List courses owned by the authenticated instructor
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /courses/owned [get]
func (ctrl *Controller) ListOwnedCoursesHandler(c *gin.Context) {
	resp, err := ctrl.courseSvc.ListOwned(middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListEnrolledCoursesHandler godoc
// @Summary List courses the authenticated student is enrolled in
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CourseResponse
// @Router /courses/enrolled [get]
func (ctrl *Controller) ListEnrolledCoursesHandler(c *gin.Context) {
	resp, err := ctrl.courseSvc.ListEnrolled(middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCourseHandler godoc
// @Summary Get a course with its roster
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [get]
func (ctrl *Controller) GetCourseHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.courseSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateCourseHandler godoc
// @Summary Rename a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param course body dto.CourseUpdateRequest true "New course data"
// @Success 200 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [put]
func (ctrl *Controller) UpdateCourseHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CourseUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.courseSvc.Update(middleware.CurrentUser(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteCourseHandler godoc
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [delete]
func (ctrl *Controller) DeleteCourseHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.courseSvc.Delete(middleware.CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "The course has been deleted."})
}

// AddCourseStudentHandler godoc
// @Summary Enroll a student in a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param student body dto.CourseStudentRequest true "Student user ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id}/students/add [post]
func (ctrl *Controller) AddCourseStudentHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CourseStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.courseSvc.AddStudent(middleware.CurrentUser(c), id, req.StudentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RemoveCourseStudentHandler godoc
// @Summary Remove a student from a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param student body dto.CourseStudentRequest true "Student user ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id}/students/remove [post]
func (ctrl *Controller) RemoveCourseStudentHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CourseStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := ctrl.courseSvc.RemoveStudent(middleware.CurrentUser(c), id, req.StudentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
