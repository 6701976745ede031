package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homework-assistant/internal/analysis"
	"homework-assistant/internal/assignment"
	"homework-assistant/pkg/response"
)

// Create godoc
// @Summary     Create an assignment
// @Tags        Assignments
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Assignment data"
// @Success     200  {object} mutationResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assignments [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Infof(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OKWithNotices(c, h.newMutationResp(out), notices(out))
}

// List godoc
// @Summary     List assignments
// @Description Returns assignments ordered by due date. Every filter is optional.
// @Tags        Assignments
// @Produce     json
// @Param       class     query string false "Class name"
// @Param       priority  query string false "Low, Medium or High"
// @Param       completed query bool   false "Completion state"
// @Param       overdue   query bool   false "Only overdue assignments"
// @Param       due_from  query string false "YYYY-MM-DD or RFC3339"
// @Param       due_to    query string false "YYYY-MM-DD or RFC3339"
// @Param       limit     query int    false "Maximum results"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assignments [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	items, err := h.uc.Query(ctx, req.toFilter(h.loc, h.now()))
	if err != nil {
		h.l.Errorf(ctx, "uc.Query: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(items))
}

// Detail godoc
// @Summary     Get an assignment
// @Tags        Assignments
// @Produce     json
// @Param       id path string true "Assignment ID"
// @Success     200 {object} assignmentResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assignments/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	a, err := h.uc.Get(ctx, id)
	if err != nil {
		h.l.Infof(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAssignmentResp(a, h.now()))
}

// Update godoc
// @Summary     Update an assignment
// @Description Partial update. Omitted fields keep their value.
// @Tags        Assignments
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Assignment ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assignments/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Infof(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OKWithNotices(c, h.newMutationResp(out), notices(out))
}

// Delete godoc
// @Summary     Delete an assignment
// @Tags        Assignments
// @Produce     json
// @Param       id path string true "Assignment ID"
// @Success     200 {object} mutationResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assignments/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Delete(ctx, c.Param("id"))
	if err != nil {
		h.l.Infof(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OKWithNotices(c, h.newMutationResp(out), notices(out))
}

// Complete godoc
// @Summary     Set completion
// @Description Marks an assignment complete. Send {"completed": false} to reopen it. Completing twice is a no-op.
// @Tags        Assignments
// @Accept      json
// @Produce     json
// @Param       id   path string      true  "Assignment ID"
// @Param       body body completeReq false "Completion state"
// @Success     200 {object} mutationResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assignments/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCompleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var out assignment.MutationOutput
	if req.Completed == nil {
		out, err = h.uc.MarkComplete(ctx, req.ID)
	} else {
		out, err = h.uc.SetCompletion(ctx, req.ID, *req.Completed)
	}
	if err != nil {
		h.l.Infof(ctx, "uc.SetCompletion: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OKWithNotices(c, h.newMutationResp(out), notices(out))
}

// Classes godoc
// @Summary     List known classes
// @Tags        Assignments
// @Produce     json
// @Success     200 {object} classesResp
// @Router      /api/v1/assignments/classes [GET]
func (h *handler) Classes(c *gin.Context) {
	response.OK(c, classesResp{Classes: h.uc.KnownClasses(c.Request.Context())})
}

// Workload godoc
// @Summary     Workload statistics
// @Description Incomplete assignments due within the horizon, grouped by day then priority, with warnings and hours per class.
// @Tags        Assignments
// @Produce     json
// @Param       days  query int    false "Horizon in days (default from config)"
// @Param       class query string false "Class name"
// @Success     200 {object} workloadResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assignments/workload [GET]
func (h *handler) Workload(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWorkloadReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	days := req.Days
	if days == 0 {
		days = h.horizonDays
	}

	items, err := h.uc.Query(ctx, assignment.Filter{ClassName: req.Class, Completed: assignment.Incomplete()})
	if err != nil {
		h.l.Errorf(ctx, "uc.Query: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	report := analysis.Workload(items, h.now().In(h.loc), days)
	response.OK(c, newWorkloadResp(report, analysis.HoursByClass(items, report.From, report.To)))
}

// Events godoc
// @Summary     Assignment change events
// @Tags        Assignments
// @Produce     json
// @Success     200 {object} eventsResp
// @Router      /api/v1/assignments/events [GET]
func (h *handler) Events(c *gin.Context) {
	response.OK(c, newEventsResp(h.uc.Events(c.Request.Context())))
}

// ExportCalendar godoc
// @Summary     Export due dates to Google Calendar
// @Description Creates one event per incomplete assignment due after from. Already exported assignments are skipped.
// @Tags        Assignments
// @Accept      json
// @Produce     json
// @Param       body body exportReq false "Export window"
// @Success     200 {object} exportResp
// @Failure     503 {object} response.Resp "Calendar not configured"
// @Router      /api/v1/assignments/calendar-export [POST]
func (h *handler) ExportCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ExportToCalendar(ctx, assignment.ExportInput{From: req.From})
	if err != nil {
		h.l.Warnf(ctx, "uc.ExportToCalendar: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newExportResp(out))
}
